package obj

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/dronesim/common"
)

// Input holds the drone's control state for one tick. Pressed fields are true
// only on the tick the action started; Held fields stay true while it lasts.
type Input struct {
	// Move is the local move axis: X is -1 left / +1 right, Y is -1 forward /
	// +1 backward.
	Move mgl64.Vec2
	// Turn is the yaw change requested this tick, in radians.
	Turn float64

	JumpPressed       bool
	CrouchHeld        bool
	SprintHeld        bool
	WalkTogglePressed bool
	AttackPressed     bool
}

// Direction converts the move axis into a unit world direction for a body
// facing yaw. It is zero when there is no move input.
func (i Input) Direction(yaw float64) mgl64.Vec3 {
	if i.Move.X() == 0 && i.Move.Y() == 0 {
		return mgl64.Vec3{}
	}
	return common.Normalized(common.RotateY(mgl64.Vec3{i.Move.X(), 0, i.Move.Y()}, yaw))
}
