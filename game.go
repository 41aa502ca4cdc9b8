package main

import (
	"fmt"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/dronesim/prefabs"
	"github.com/milk9111/dronesim/system"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game runs the simulation at the arena's tick rate and draws a top-down
// debug view of it.
type Game struct {
	frames int

	world   *system.World
	watcher *prefabs.Watcher
	input   *Input
	view    *View

	paused bool
	quit   bool
	ui     *ebitenui.UI
	status string
}

func NewGame(world *system.World, watcher *prefabs.Watcher) *Game {
	g := &Game{
		world:   world,
		watcher: watcher,
		input:   NewInput(world.Specs.Arena.TickHz),
		view:    NewView(),
	}
	g.ui = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.frames++
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.reload(g.world.ArenaName)
	}

	_, wy := ebiten.Wheel()
	g.view.ZoomBy(wy)

	g.world.Drone.Input = g.input.Poll()
	g.world.Step(g.world.TickRate())
	return nil
}

// applyReloads drains pending watcher events between ticks.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	open := g.watcher.Drain(g.reload, func(err error) {
		slog.Warn("watch: error", "err", err)
	})
	if !open {
		g.watcher = nil
	}
}

func (g *Game) reload(name string) {
	if err := g.world.Reload(name); err != nil {
		g.status = fmt.Sprintf("reload %s failed: %v", name, err)
		return
	}
	g.status = ""
	ebiten.SetTPS(g.world.Specs.Arena.TickHz)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.world)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Tick: %d", g.frames, ebiten.ActualFPS(), g.world.Ticks))
	ebitenutil.DebugPrintAt(screen, g.view.Status(g.world), 0, 16)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 0, baseHeight-20)
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
