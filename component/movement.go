package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/dronesim/physics"
)

// Movement integrates a kinematic body: gravity while airborne, horizontal
// velocity from a direction, then a slide move.
type Movement struct {
	Body  physics.Kinematic
	Speed float64

	// Direction is the direction passed to the last Update.
	Direction mgl64.Vec3
}

// NewMovement creates a movement integrator for body.
func NewMovement(body physics.Kinematic, speed float64) *Movement {
	return &Movement{Body: body, Speed: speed}
}

// IsMoving reports whether the last Update had a direction.
func (m *Movement) IsMoving() bool {
	return m != nil && (m.Direction.X() != 0 || m.Direction.Z() != 0)
}

// HorizontalSpeed returns the body's speed on the XZ plane.
func (m *Movement) HorizontalSpeed() float64 {
	if m == nil || m.Body == nil {
		return 0
	}
	v := m.Body.Velocity()
	return mgl64.Vec2{v.X(), v.Z()}.Len()
}

// Update advances the body by delta seconds along dir.
func (m *Movement) Update(delta float64, dir mgl64.Vec3) {
	if m == nil || m.Body == nil {
		return
	}
	m.Direction = dir

	velocity := m.Body.Velocity()
	if !m.Body.IsOnFloor() {
		velocity = velocity.Add(m.Body.Gravity().Mul(delta))
	}
	velocity[0] = dir.X() * m.Speed
	velocity[2] = dir.Z() * m.Speed
	m.Body.SetVelocity(velocity)

	m.Body.MoveAndSlide(delta)
}
