package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/dronesim/component"
	"github.com/milk9111/dronesim/nav"
	"github.com/milk9111/dronesim/obj"
	"github.com/milk9111/dronesim/physics"
	"github.com/milk9111/dronesim/prefabs"
)

func (w *World) addBody(kind physics.BodyKind, sp prefabs.SpawnSpec, collider prefabs.ColliderSpec) *physics.CharacterBody {
	shape := physics.Capsule{Radius: collider.Radius, Height: collider.Height}
	body := w.Physics.AddBody(kind, sp.Position.Vec3(), shape, collider.OffsetY)
	body.SetYaw(mgl64.DegToRad(sp.Yaw))
	body.MoveAndSlide(w.TickRate())
	return body
}

func (w *World) spawnDrone(sp prefabs.SpawnSpec) error {
	if w.Drone != nil {
		return fmt.Errorf("second drone")
	}
	spec, err := prefabs.Overlay(*w.Specs.Drone, sp.Overrides)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	body := w.addBody(physics.KindPlayer, sp, spec.Collider)
	anim := component.NewAnimationTree()
	drone := obj.NewDrone(&spec, body, w.Physics, w.Tweens, anim)
	drone.Emitter = w.Combat.Emitter()
	drone.Hurtboxes = obj.BuildHurtboxes(w.Physics, body, drone, spec.Hurtboxes)
	if err := obj.EquipArmor(drone.Equipment, w.Specs.Items, spec.Armor); err != nil {
		return err
	}

	if spec.Weapon != "" {
		ws, ok := w.Specs.Items.Weapon(spec.Weapon)
		if !ok {
			return fmt.Errorf("unknown weapon %q", spec.Weapon)
		}
		scene, err := obj.BuildWeapon(w.Physics, body, ws, w.Combat.Emitter())
		if err != nil {
			return err
		}
		drone.Equip(scene, ws.AttackDuration)
	}

	w.Drone, w.DroneBody, w.DroneAnim = drone, body, anim
	return nil
}

func (w *World) spawnNPC(sp prefabs.SpawnSpec) error {
	spec, err := prefabs.Overlay(*w.Specs.NPC, sp.Overrides)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	body := w.addBody(physics.KindNPC, sp, spec.Collider)
	agent := nav.NewAgent(w.Grid, body)
	agent.PathDesiredDistance = spec.Nav.PathDesiredDistance
	agent.TargetDesiredDistance = spec.Nav.TargetDesiredDistance
	anim := component.NewAnimationTree()

	npc := obj.NewNPC(&spec, body, w.Physics, agent, anim)
	if spec.SweepScript != "" {
		src, err := prefabs.Load(spec.SweepScript)
		if err != nil {
			return fmt.Errorf("system: npc sweep script: %w", err)
		}
		if npc.Sweep, err = obj.ScriptSweep(src, spec.SweepRate, spec.SweepDegrees); err != nil {
			return err
		}
	}
	npc.Emitter = w.Combat.Emitter()
	npc.Hurtboxes = obj.BuildHurtboxes(w.Physics, body, npc, spec.Hurtboxes)
	vision := w.Physics.AddArea(physics.AreaShape{}, 0, 0)
	vision.Attach(body, mgl64.Vec3{})
	npc.AttachVision(vision)

	w.NPCs = append(w.NPCs, &NPCActor{NPC: npc, Body: body, Agent: agent, Anim: anim})
	return nil
}

func (w *World) spawnDummy(sp prefabs.SpawnSpec) error {
	spec, err := prefabs.Overlay(*w.Specs.Dummy, sp.Overrides)
	if err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	body := w.addBody(physics.KindProp, sp, spec.Collider)
	dummy := obj.NewDummy(&spec, body)
	dummy.Emitter = w.Combat.Emitter()
	dummy.Hurtboxes = obj.BuildHurtboxes(w.Physics, body, dummy, spec.Hurtboxes)
	if err := obj.EquipArmor(dummy.Equipment, w.Specs.Items, spec.Armor); err != nil {
		return err
	}

	w.Dummies = append(w.Dummies, &DummyActor{Dummy: dummy, Body: body})
	return nil
}
