package obj

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/dronesim/fsm"
	"github.com/milk9111/dronesim/tween"
)

// Locomotion axis states.
const (
	StateIdle  fsm.StateID = "idle"
	StateWalk  fsm.StateID = "walk"
	StateRun   fsm.StateID = "run"
	StateJump  fsm.StateID = "jump"
	StateFall  fsm.StateID = "fall"
	StateSneak fsm.StateID = "sneak"
	StateVault fsm.StateID = "vault"
)

func newDroneLocomotion(d *Drone) *fsm.Manager[*Drone] {
	return fsm.NewManager(d, "locomotion").
		Register(StateIdle, func() fsm.State[*Drone] { return &droneIdleState{} }).
		Register(StateWalk, func() fsm.State[*Drone] { return &droneWalkState{} }).
		Register(StateRun, func() fsm.State[*Drone] { return &droneRunState{} }).
		Register(StateJump, func() fsm.State[*Drone] { return &droneJumpState{} }).
		Register(StateFall, func() fsm.State[*Drone] { return &droneFallState{} }).
		Register(StateSneak, func() fsm.State[*Drone] { return &droneSneakState{} }).
		Register(StateVault, func() fsm.State[*Drone] { return &droneVaultState{} })
}

// groundTransitions applies the checks shared by idle, walk and run, in
// priority order. It reports whether it changed state.
func groundTransitions(d *Drone, self fsm.StateID) bool {
	if !d.Body.IsOnFloor() {
		d.Locomotion.TransitionTo(StateFall)
		return true
	}
	if d.Input.JumpPressed {
		if tryVault(d) {
			return true
		}
		d.Locomotion.TransitionTo(StateJump)
		return true
	}
	if d.Input.CrouchHeld {
		d.Locomotion.TransitionTo(StateSneak)
		return true
	}
	return moveTransitions(d, self)
}

// moveTransitions picks idle, walk or run from the move input.
func moveTransitions(d *Drone, self fsm.StateID) bool {
	target := StateIdle
	if d.HasInputDirection() {
		target = StateWalk
		if d.WantsRun() {
			target = StateRun
		}
	}
	if target == self {
		return false
	}
	d.Locomotion.TransitionTo(target)
	return true
}

// tryVault probes for a ledge along the move input and enters the vault
// state when one is climbable.
func tryVault(d *Drone) bool {
	if !d.HasInputDirection() {
		return false
	}
	if d.Tweens == nil {
		slog.Warn("drone: vault skipped, no tween scheduler", "id", d.ID)
		return false
	}
	res := d.CheckVault()
	if !res.CanVault {
		return false
	}
	d.VaultTarget = res.Target
	d.VaultShouldCrouch = res.ShouldCrouch
	d.Locomotion.TransitionTo(StateVault)
	return true
}

type droneIdleState struct {
	fsm.Base[*Drone]
}

func (droneIdleState) Enter(d *Drone) {
	d.setMovementAnim("idle")
	d.setCrouchingAnim("no")
	if !d.Body.IsOnFloor() {
		d.Locomotion.TransitionTo(StateFall)
	}
}

func (droneIdleState) PreUpdate(d *Drone) {
	groundTransitions(d, StateIdle)
}

func (droneIdleState) Update(d *Drone, delta float64) {
	d.Movement.Update(delta, mgl64.Vec3{})
}

type droneWalkState struct {
	fsm.Base[*Drone]
}

func (droneWalkState) Enter(d *Drone) {
	if !d.Body.IsOnFloor() {
		d.Locomotion.TransitionTo(StateFall)
		return
	}
	d.Movement.Speed = d.WalkSpeed
	d.setMovementAnim("walking")
}

func (droneWalkState) PreUpdate(d *Drone) {
	groundTransitions(d, StateWalk)
}

func (droneWalkState) Update(d *Drone, delta float64) {
	d.Movement.Update(delta, d.InputDirection())
}

type droneRunState struct {
	fsm.Base[*Drone]
}

func (droneRunState) Enter(d *Drone) {
	if !d.Body.IsOnFloor() {
		d.Locomotion.TransitionTo(StateFall)
		return
	}
	d.Movement.Speed = d.RunSpeed
	d.setMovementAnim("run")
}

func (droneRunState) PreUpdate(d *Drone) {
	groundTransitions(d, StateRun)
}

func (droneRunState) Update(d *Drone, delta float64) {
	d.Movement.Update(delta, d.InputDirection())
}

type droneJumpState struct {
	fsm.Base[*Drone]
}

func (droneJumpState) Enter(d *Drone) {
	d.setMovementAnim("idle")
	v := d.Body.Velocity()
	v[1] = d.JumpVelocity
	d.Body.SetVelocity(v)
}

func (droneJumpState) PreUpdate(d *Drone) {
	if d.Body.Velocity().Y() < 0 {
		d.Locomotion.TransitionTo(StateFall)
		return
	}
	if d.Input.JumpPressed {
		tryVault(d)
	}
}

func (droneJumpState) Update(d *Drone, delta float64) {
	d.Movement.Update(delta, d.InputDirection())
}

type droneFallState struct {
	fsm.Base[*Drone]
}

func (droneFallState) PreUpdate(d *Drone) {
	if d.Body.IsOnFloor() {
		moveTransitions(d, StateFall)
	}
}

func (droneFallState) Update(d *Drone, delta float64) {
	d.Movement.Update(delta, d.InputDirection())
}

type droneSneakState struct {
	fsm.Base[*Drone]
}

func (droneSneakState) Enter(d *Drone) {
	d.Crouch()
	d.setMovementAnim("sneaking")
	d.setSneakTimeScale(sneakScale(d))
}

func (droneSneakState) Exit(d *Drone) {
	d.setSneakTimeScale(1)
	d.Stand()
}

func (droneSneakState) PreUpdate(d *Drone) {
	if !d.Body.IsOnFloor() {
		d.Locomotion.TransitionTo(StateFall)
		return
	}
	if !d.Input.CrouchHeld && d.CanStand() {
		d.Locomotion.TransitionTo(StateIdle)
		return
	}
	if d.Input.JumpPressed {
		tryVault(d)
	}
}

func (droneSneakState) Update(d *Drone, delta float64) {
	d.setSneakTimeScale(sneakScale(d))
	d.Movement.Update(delta, d.InputDirection())
}

func sneakScale(d *Drone) float64 {
	if d.HasInputDirection() {
		return 1
	}
	return 0
}

// droneVaultState slides the body onto the probed ledge. The tween owns the
// position until it finishes or the state exits.
type droneVaultState struct {
	fsm.Base[*Drone]
	tween *tween.Tween
}

func (s *droneVaultState) Enter(d *Drone) {
	d.Body.SetVelocity(mgl64.Vec3{})
	d.setMovementAnim("idle")
	if d.VaultShouldCrouch {
		d.Crouch()
	}
	s.tween = d.Tweens.TweenVec3(d.Body.Position(), d.VaultTarget, d.vaultDuration(), d.Body.SetPosition).
		SetTrans(d.VaultTrans).
		SetEase(d.VaultEase)
}

func (s *droneVaultState) Update(d *Drone, delta float64) {
	d.Camera.Locked = true
	if s.tween == nil || s.tween.IsRunning() {
		return
	}
	s.tween = nil

	// Nudge down so the floor flag reflects the ledge before the next state
	// reads it.
	d.Body.SetVelocity(mgl64.Vec3{0, -0.1, 0})
	d.Body.MoveAndSlide(delta)

	if d.VaultShouldCrouch {
		d.Locomotion.TransitionTo(StateSneak)
	} else {
		d.Locomotion.TransitionTo(StateIdle)
	}
}

func (s *droneVaultState) Exit(d *Drone) {
	if s.tween != nil {
		s.tween.Kill()
		s.tween = nil
	}
	d.Camera.Locked = false
}
