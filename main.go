package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dronesim/prefabs"
	"github.com/milk9111/dronesim/system"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	arenaName := flag.String("arena", "arena.yaml", "arena file in prefabs/ (disk copy wins over the embedded one)")
	prefabDir := flag.String("prefabs", prefabs.DiskDir, "directory checked for tunable overrides")
	watch := flag.Bool("watch", true, "reload tunables when files in the prefab directory change")
	headless := flag.Bool("headless", false, "run without a window")
	ticks := flag.Int("ticks", 600, "ticks to run in headless mode")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	prefabs.DiskDir = *prefabDir

	world, err := system.NewWorld(*arenaName)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		if _, err := os.Stat(*prefabDir); err == nil {
			watcher, err = prefabs.NewWatcher(*prefabDir)
			if err != nil {
				slog.Warn("watch: disabled", "dir", *prefabDir, "err", err)
			} else {
				defer watcher.Close()
			}
		}
	}

	if *headless {
		runHeadless(world, watcher, *ticks)
		return
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("dronesim")
	ebiten.SetTPS(world.Specs.Arena.TickHz)

	if err := ebiten.RunGame(NewGame(world, watcher)); err != nil {
		log.Fatal(err)
	}
}

// runHeadless steps the world with no input, applying reloads between ticks,
// then logs where every actor ended up.
func runHeadless(world *system.World, watcher *prefabs.Watcher, ticks int) {
	start := time.Now()
	for i := 0; i < ticks; i++ {
		if watcher != nil {
			open := watcher.Drain(func(name string) { _ = world.Reload(name) }, func(err error) {
				slog.Warn("watch: error", "err", err)
			})
			if !open {
				watcher = nil
			}
		}
		world.Step(world.TickRate())
	}

	slog.Info("headless: done",
		"ticks", world.Ticks,
		"elapsed", time.Since(start),
		"drone", world.Drone.Locomotion.Current(),
		"position", world.DronePosition(),
		"hits", world.Combat.Hits,
		"deaths", world.Combat.Deaths,
	)
	for i, n := range world.NPCs {
		slog.Info("headless: npc", "index", i, "state", n.States.Current(), "position", n.Body.Position())
	}
}
