package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/dronesim/common"
	"github.com/milk9111/dronesim/component"
	"github.com/milk9111/dronesim/fsm"
	"github.com/milk9111/dronesim/physics"
	"github.com/milk9111/dronesim/prefabs"
	"github.com/milk9111/dronesim/tween"
)

// Drone is the player-controlled actor. It runs two independent axes: the
// locomotion axis and the attack axis. They only talk through the exported
// fields on the drone.
type Drone struct {
	component.DamageReceiver

	Body      physics.Kinematic
	Query     physics.Query
	Tweens    *tween.Scheduler
	Anim      Animator
	Movement  *component.Movement
	Camera    *Camera
	Weapon    *component.WeaponScene
	Hurtboxes []*component.Hurtbox

	// Input is written by the driver before every PhysicsProcess.
	Input Input

	WalkSpeed       float64
	RunSpeed        float64
	JumpVelocity    float64
	CrouchScale     float64
	SneakSpeedScale float64
	VaultSpeed      float64
	VaultTrans      tween.Trans
	VaultEase       tween.Ease

	// VaultTarget and VaultShouldCrouch carry the probe result into the vault
	// state. They are only meaningful while entering it.
	VaultTarget       mgl64.Vec3
	VaultShouldCrouch bool

	IsWalkToggled bool

	Locomotion *fsm.Manager[*Drone]
	Attack     *fsm.Manager[*Drone]

	standShape   physics.Capsule
	standOffsetY float64
	crouched     bool
	preCrouch    float64
}

// NewDrone builds a drone around body and puts both axes in their initial
// states.
func NewDrone(spec *prefabs.DroneSpec, body physics.Kinematic, query physics.Query, tweens *tween.Scheduler, anim Animator) *Drone {
	d := &Drone{
		Body:            body,
		Query:           query,
		Tweens:          tweens,
		Anim:            anim,
		Movement:        component.NewMovement(body, spec.WalkSpeed),
		Camera:          NewCamera(body, spec.CameraHeight),
		WalkSpeed:       spec.WalkSpeed,
		RunSpeed:        spec.RunSpeed,
		JumpVelocity:    spec.JumpVelocity,
		CrouchScale:     spec.CrouchScale,
		SneakSpeedScale: spec.SneakSpeedScale,
		VaultSpeed:      spec.VaultSpeed,
		VaultTrans:      tween.TransSine,
		VaultEase:       tween.EaseOutIn,
		standShape:      body.Shape(),
		standOffsetY:    body.ShapeOffsetY(),
	}
	if t, ok := tween.ParseTrans(spec.VaultTransitionName()); ok {
		d.VaultTrans = t
	}
	if e, ok := tween.ParseEase(spec.VaultEaseName()); ok {
		d.VaultEase = e
	}
	d.DamageReceiver = component.DamageReceiver{
		ID:        body.ID(),
		Health:    component.NewHealth(spec.Health),
		Equipment: component.NewEquipment(),
	}

	d.Locomotion = newDroneLocomotion(d)
	d.Attack = newDroneAttack(d)
	d.Locomotion.TransitionTo(StateIdle)
	d.Attack.TransitionTo(StateIdleAttack)
	return d
}

// Equip hands the drone a weapon. The swing lasts attackDuration seconds.
func (d *Drone) Equip(weapon *component.WeaponScene, attackDuration float64) {
	d.Weapon = weapon
	weapon.InitializeWeapon(d, d.ID)
	if d.Anim != nil {
		d.Anim.DefineOneShot(animAttackOnce, attackDuration)
	}
}

// PhysicsProcess advances the drone by one physics tick.
func (d *Drone) PhysicsProcess(delta float64) {
	d.Camera.Turn(d.Input.Turn)
	if d.Input.WalkTogglePressed {
		d.IsWalkToggled = !d.IsWalkToggled
	}
	d.Locomotion.Update(delta)
	d.Attack.Update(delta)
}

// InputDirection is the world-space move direction for this tick.
func (d *Drone) InputDirection() mgl64.Vec3 {
	return d.Input.Direction(d.Body.Yaw())
}

func (d *Drone) HasInputDirection() bool {
	return !common.IsZero(d.InputDirection())
}

// WantsRun reports run intent. The walk toggle inverts the sprint key.
func (d *Drone) WantsRun() bool {
	if d.IsWalkToggled {
		return !d.Input.SprintHeld
	}
	return d.Input.SprintHeld
}

// Forward is the horizontal direction the body faces.
func (d *Drone) Forward() mgl64.Vec3 {
	return common.RotateY(common.Forward, d.Body.Yaw())
}

// IsCrouched reports whether the crouch envelope is active.
func (d *Drone) IsCrouched() bool {
	return d.crouched
}

// Crouch shrinks the envelope, slows the drone and lowers the camera.
func (d *Drone) Crouch() {
	if !d.crouched {
		d.preCrouch = d.Movement.Speed
	}
	d.crouched = true
	shape := physics.Capsule{Radius: d.standShape.Radius, Height: d.standShape.Height * d.CrouchScale}
	d.Body.SetShape(shape, d.standOffsetY*d.CrouchScale)
	d.Movement.Speed = d.WalkSpeed * d.SneakSpeedScale
	d.Camera.SetHeightScale(d.CrouchScale)
}

// Stand restores the standing envelope, the pre-crouch speed and the camera.
func (d *Drone) Stand() {
	d.Body.SetShape(d.standShape, d.standOffsetY)
	d.Camera.SetHeightScale(1)
	if d.crouched {
		d.Movement.Speed = d.preCrouch
	}
	d.crouched = false
}

// CanStand reports whether the standing envelope fits at the current position.
func (d *Drone) CanStand() bool {
	if d.Query == nil {
		return true
	}
	center := d.Body.Position().Add(mgl64.Vec3{0, d.standOffsetY, 0})
	return d.Query.IntersectShape(d.standShape, center, d.Body.ID()) == 0
}

// CheckVault runs the vault probe along the drone's facing.
func (d *Drone) CheckVault() VaultResult {
	return ProbeVault(VaultGeometry{
		Position:     d.Body.Position(),
		Forward:      d.Forward(),
		Shape:        d.standShape,
		ShapeOffsetY: d.standOffsetY,
		CrouchScale:  d.CrouchScale,
		Exclude:      d.Body.ID(),
	}, d.Query)
}

func (d *Drone) vaultDuration() float64 {
	dy := math.Abs(d.VaultTarget.Y() - d.Body.Position().Y())
	return math.Max(dy/d.VaultSpeed, 0.05)
}

func (d *Drone) setMovementAnim(state string) {
	if d.Anim == nil {
		return
	}
	d.Anim.RequestTransition(animMovement, state)
	d.Anim.RequestTransition(animAttackState, state)
}

func (d *Drone) setCrouchingAnim(state string) {
	if d.Anim != nil {
		d.Anim.RequestTransition(animIsCrouching, state)
	}
}

func (d *Drone) setSneakTimeScale(scale float64) {
	if d.Anim != nil {
		d.Anim.SetTimeScale(animSneakScale, scale)
	}
}
