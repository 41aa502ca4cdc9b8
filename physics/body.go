package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// floorSnapLength is how far below its feet a body that is not rising looks
// for a floor to stay attached to.
const floorSnapLength = 0.05

// CharacterBody is a kinematic capsule moved with MoveAndSlide. Its position
// is the body origin (the feet for the default shape offset).
type CharacterBody struct {
	world *World
	id    uuid.UUID
	kind  BodyKind

	position mgl64.Vec3
	velocity mgl64.Vec3
	yaw      float64

	shape        Capsule
	shapeOffsetY float64

	onFloor    bool
	collidable bool
}

func (b *CharacterBody) ID() uuid.UUID            { return b.id }
func (b *CharacterBody) Kind() BodyKind           { return b.kind }
func (b *CharacterBody) Position() mgl64.Vec3     { return b.position }
func (b *CharacterBody) SetPosition(p mgl64.Vec3) { b.position = p }
func (b *CharacterBody) Velocity() mgl64.Vec3     { return b.velocity }
func (b *CharacterBody) SetVelocity(v mgl64.Vec3) { b.velocity = v }
func (b *CharacterBody) Yaw() float64             { return b.yaw }
func (b *CharacterBody) SetYaw(yaw float64)       { b.yaw = yaw }
func (b *CharacterBody) Shape() Capsule           { return b.shape }
func (b *CharacterBody) ShapeOffsetY() float64    { return b.shapeOffsetY }
func (b *CharacterBody) IsOnFloor() bool          { return b.onFloor }

// SetShape replaces the collision envelope and its vertical offset.
func (b *CharacterBody) SetShape(shape Capsule, offsetY float64) {
	b.shape = shape
	b.shapeOffsetY = offsetY
}

// Gravity returns the gravity of the owning world.
func (b *CharacterBody) Gravity() mgl64.Vec3 {
	if b.world == nil {
		return DefaultGravity
	}
	return b.world.Gravity()
}

// SetCollisionEnabled toggles whether the body blocks rays, shapes and other
// bodies.
func (b *CharacterBody) SetCollisionEnabled(enabled bool) {
	b.collidable = enabled
}

// CollisionEnabled reports whether the body is solid.
func (b *CharacterBody) CollisionEnabled() bool {
	return b.collidable
}

// Center returns the world position of the capsule center.
func (b *CharacterBody) Center() mgl64.Vec3 {
	return b.position.Add(mgl64.Vec3{0, b.shapeOffsetY, 0})
}

// Bounds returns the capsule's bounding box in world space.
func (b *CharacterBody) Bounds() AABB {
	return b.shape.Bounds(b.Center())
}

// MoveAndSlide integrates velocity over delta, resolving the vertical axis
// first and then each horizontal axis. A blocked axis has its velocity
// component zeroed. The floor flag is recomputed on every call and only here.
func (b *CharacterBody) MoveAndSlide(delta float64) {
	motion := b.velocity.Mul(delta)
	b.onFloor = false
	if b.world == nil {
		b.position = b.position.Add(motion)
		return
	}

	for _, axis := range [3]int{1, 0, 2} {
		if motion[axis] == 0 {
			continue
		}
		before := b.Bounds()
		b.position[axis] += motion[axis]
		after := b.Bounds()

		blocked := false
		for _, solid := range b.world.solidsOverlapping(after, b.id) {
			if before.Overlaps(solid) {
				continue
			}
			if motion[axis] > 0 {
				limit := solid.Min[axis] - (after.Max[axis] - b.position[axis])
				b.position[axis] = math.Min(b.position[axis], limit)
			} else {
				limit := solid.Max[axis] - (after.Min[axis] - b.position[axis])
				b.position[axis] = math.Max(b.position[axis], limit)
			}
			blocked = true
		}
		if !blocked {
			continue
		}
		b.velocity[axis] = 0
		if axis == 1 && motion[axis] < 0 {
			b.onFloor = true
		}
	}

	if !b.onFloor && b.velocity.Y() <= 0 {
		b.snapToFloor()
	}
}

func (b *CharacterBody) snapToFloor() {
	bounds := b.Bounds()
	probe := bounds.Translate(mgl64.Vec3{0, -floorSnapLength, 0})
	top := math.Inf(-1)
	for _, solid := range b.world.solidsOverlapping(probe, b.id) {
		if bounds.Overlaps(solid) {
			continue
		}
		top = math.Max(top, solid.Max.Y())
	}
	if math.IsInf(top, -1) {
		return
	}
	b.position[1] += top - bounds.Min.Y()
	b.onFloor = true
}

var _ Kinematic = (*CharacterBody)(nil)
