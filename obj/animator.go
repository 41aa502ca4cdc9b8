package obj

import "github.com/milk9111/dronesim/component"

// Animator receives named animation requests. States never wait on it.
type Animator interface {
	RequestTransition(node, state string)
	SetBlend(param string, weight float64)
	SetTimeScale(param string, scale float64)
	DefineOneShot(node string, duration float64)
	FireOneShot(node string)
	OneShotActive(node string) bool
}

var _ Animator = (*component.AnimationTree)(nil)

// Drone animation parameters.
const (
	animMovement    = "movement"
	animAttackState = "attack_state"
	animIsCrouching = "is_crouching"
	animSneakScale  = "sneak_scale"
	animAttackBlend = "attack_blend"
	animAttackOnce  = "attack_moving"
)
