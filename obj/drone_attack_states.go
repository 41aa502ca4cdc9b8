package obj

import "github.com/milk9111/dronesim/fsm"

// Attack axis states. The attack axis runs beside locomotion and only reads
// the move input from it.
const (
	StateIdleAttack   fsm.StateID = "idle_attack"
	StateAttackMoving fsm.StateID = "attack_moving"
)

func newDroneAttack(d *Drone) *fsm.Manager[*Drone] {
	return fsm.NewManager(d, "attack").
		Register(StateIdleAttack, func() fsm.State[*Drone] { return &droneIdleAttackState{} }).
		Register(StateAttackMoving, func() fsm.State[*Drone] { return &droneAttackMovingState{} })
}

type droneIdleAttackState struct {
	fsm.Base[*Drone]
}

func (droneIdleAttackState) Enter(d *Drone) {
	if d.Anim != nil {
		d.Anim.SetBlend(animAttackBlend, 0)
	}
}

func (droneIdleAttackState) PreUpdate(d *Drone) {
	if !d.Input.AttackPressed {
		return
	}
	if d.HasInputDirection() {
		d.Attack.TransitionTo(StateAttackMoving)
	}
	// TODO: stationary and sneaking swings need their own states and one-shot
	// animations before they can be wired here.
}

type droneAttackMovingState struct {
	fsm.Base[*Drone]
}

func (droneAttackMovingState) Enter(d *Drone) {
	if d.Anim != nil {
		d.Anim.SetBlend(animAttackBlend, 1)
		d.Anim.FireOneShot(animAttackOnce)
	}
	d.Weapon.EnableHitbox()
}

func (droneAttackMovingState) PreUpdate(d *Drone) {
	if d.Anim == nil || !d.Anim.OneShotActive(animAttackOnce) {
		d.Attack.TransitionTo(StateIdleAttack)
	}
}

func (droneAttackMovingState) Exit(d *Drone) {
	d.Weapon.DisableHitbox()
}
