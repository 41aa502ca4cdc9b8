package system

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/dronesim/component"
	"github.com/milk9111/dronesim/nav"
	"github.com/milk9111/dronesim/obj"
	"github.com/milk9111/dronesim/physics"
	"github.com/milk9111/dronesim/prefabs"
	"github.com/milk9111/dronesim/tween"
)

// Specs are the tunables a world is built from.
type Specs struct {
	Arena *prefabs.ArenaSpec
	Drone *prefabs.DroneSpec
	NPC   *prefabs.NPCSpec
	Dummy *prefabs.DummySpec
	Items *prefabs.ItemsSpec
}

// LoadSpecs reads every tunable file. arena names the arena file.
func LoadSpecs(arena string) (*Specs, error) {
	var s Specs
	var err error
	if s.Arena, err = prefabs.LoadArenaSpec(arena); err != nil {
		return nil, err
	}
	if s.Drone, err = prefabs.LoadDroneSpec(); err != nil {
		return nil, err
	}
	if s.NPC, err = prefabs.LoadNPCSpec(); err != nil {
		return nil, err
	}
	if s.Dummy, err = prefabs.LoadDummySpec(); err != nil {
		return nil, err
	}
	if s.Items, err = prefabs.LoadItemsSpec(); err != nil {
		return nil, err
	}
	return &s, nil
}

// NPCActor is an NPC with the collaborators it owns.
type NPCActor struct {
	*obj.NPC
	Body  *physics.CharacterBody
	Agent *nav.Agent
	Anim  *component.AnimationTree
}

// DummyActor is a training dummy and its body.
type DummyActor struct {
	*obj.Dummy
	Body *physics.CharacterBody
}

// World owns the arena, every actor in it and the fixed-step loop.
type World struct {
	ArenaName string
	Specs     *Specs

	Physics *physics.World
	Grid    *nav.Grid
	Tweens  *tween.Scheduler
	Combat  *CombatLog

	Drone     *obj.Drone
	DroneBody *physics.CharacterBody
	DroneAnim *component.AnimationTree
	NPCs      []*NPCActor
	Dummies   []*DummyActor

	Ticks int
}

// NewWorld creates a world and loads the named arena.
func NewWorld(arena string) (*World, error) {
	w := &World{ArenaName: arena}
	if err := w.Load(arena); err != nil {
		return nil, err
	}
	return w, nil
}

// Load reads every spec and rebuilds the world from them.
func (w *World) Load(arena string) error {
	if w == nil {
		return fmt.Errorf("system: world is nil")
	}
	specs, err := LoadSpecs(arena)
	if err != nil {
		return err
	}
	if err := w.Build(specs); err != nil {
		return err
	}
	w.ArenaName = arena
	return nil
}

// Build replaces the world's contents with a fresh arena built from specs.
// The world is left untouched when building fails.
func (w *World) Build(specs *Specs) error {
	if w == nil {
		return fmt.Errorf("system: world is nil")
	}
	if specs == nil || specs.Arena == nil {
		return fmt.Errorf("system: no arena spec")
	}

	next := &World{
		ArenaName: w.ArenaName,
		Specs:     specs,
		Physics:   physics.NewWorld(),
		Tweens:    tween.NewScheduler(),
		Combat:    NewCombatLog(slog.Default()),
	}
	next.buildArena()

	for i, sp := range specs.Arena.Spawns {
		var err error
		switch sp.Kind {
		case prefabs.SpawnDrone:
			err = next.spawnDrone(sp)
		case prefabs.SpawnNPC:
			err = next.spawnNPC(sp)
		case prefabs.SpawnDummy:
			err = next.spawnDummy(sp)
		default:
			err = fmt.Errorf("unknown spawn kind %q", sp.Kind)
		}
		if err != nil {
			return fmt.Errorf("system: spawn %d (%s): %w", i, sp.Kind, err)
		}
	}
	if next.Drone == nil {
		return fmt.Errorf("system: arena %s has no drone", specs.Arena.Name)
	}

	*w = *next
	slog.Info("system: arena built",
		"arena", specs.Arena.Name,
		"npcs", len(w.NPCs),
		"dummies", len(w.Dummies),
		"boxes", len(specs.Arena.Boxes),
	)
	return nil
}

func (w *World) buildArena() {
	arena := w.Specs.Arena
	if arena.Gravity != nil {
		w.Physics.SetGravity(arena.Gravity.Vec3())
	}

	min, max := arena.Bounds.Min, arena.Bounds.Max
	w.Grid = nav.NewGrid(min[0], min[2], max[0], max[2], w.Specs.NPC.Nav.CellSize, w.Specs.NPC.Collider.Radius)
	if w.Specs.NPC.Nav.MaxNodes > 0 {
		w.Grid.MaxNodes = w.Specs.NPC.Nav.MaxNodes
	}

	for _, b := range arena.Boxes {
		w.Physics.AddBox(b.Min.Vec3(), b.Max.Vec3())
		if b.Floor || b.Min[1] >= w.Specs.NPC.Collider.Height {
			continue
		}
		w.Grid.AddObstacle(b.Min.Vec3(), b.Max.Vec3())
	}
}

// TickRate is the arena's fixed step in seconds.
func (w *World) TickRate() float64 {
	if w == nil || w.Specs == nil || w.Specs.Arena.TickHz <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(w.Specs.Arena.TickHz)
}

// Step advances the simulation by one fixed tick. The drone's Input must be
// set before calling it.
func (w *World) Step(delta float64) {
	if w == nil || w.Drone == nil {
		return
	}
	w.Ticks++
	w.Physics.FlushOverlaps()
	w.Drone.PhysicsProcess(delta)
	for _, n := range w.NPCs {
		n.PhysicsProcess(delta)
	}
	for _, d := range w.Dummies {
		d.PhysicsProcess(delta)
	}
	w.Tweens.Advance(delta)
	w.DroneAnim.Advance(delta)
	for _, n := range w.NPCs {
		n.Anim.Advance(delta)
	}
}

// Reload rebuilds the world after the named tunable file changed. Files that
// do not feed the world are ignored. A failed reload keeps the running world.
func (w *World) Reload(name string) error {
	if w == nil {
		return fmt.Errorf("system: world is nil")
	}
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	switch base {
	case "drone.yaml", "npc.yaml", "dummy.yaml", "items.yaml":
	default:
		if strings.HasSuffix(base, ".tengo") {
			break
		}
		arena := w.ArenaName
		if arena == "" {
			arena = "arena.yaml"
		}
		if base != path.Base(arena) {
			slog.Debug("system: ignoring change", "file", base)
			return nil
		}
	}

	if err := w.Load(w.ArenaName); err != nil {
		slog.Error("system: reload failed, keeping current world", "file", base, "err", err)
		return err
	}
	slog.Info("system: reloaded", "file", base)
	return nil
}

// DronePosition is a convenience for drivers and tests.
func (w *World) DronePosition() mgl64.Vec3 {
	if w == nil || w.DroneBody == nil {
		return mgl64.Vec3{}
	}
	return w.DroneBody.Position()
}
