package obj

import "github.com/milk9111/dronesim/physics"

// Camera is the drone's first-person rig. It owns the body's yaw and the eye
// height; pitch and mouse capture belong to the viewer.
type Camera struct {
	// Locked ignores turn requests while a state has taken control.
	Locked bool

	body       physics.Kinematic
	baseHeight float64
	scale      float64
}

func NewCamera(body physics.Kinematic, height float64) *Camera {
	return &Camera{body: body, baseHeight: height, scale: 1}
}

// Turn rotates the body by delta radians unless the camera is locked.
func (c *Camera) Turn(delta float64) {
	if c == nil || c.Locked || delta == 0 || c.body == nil {
		return
	}
	c.body.SetYaw(c.body.Yaw() + delta)
}

// SetHeightScale scales the eye height, e.g. while crouched.
func (c *Camera) SetHeightScale(scale float64) {
	if c == nil {
		return
	}
	c.scale = scale
}

// Height returns the eye height above the body origin.
func (c *Camera) Height() float64 {
	if c == nil {
		return 0
	}
	return c.baseHeight * c.scale
}
