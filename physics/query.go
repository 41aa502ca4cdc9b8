package physics

//go:generate go tool mockgen -destination=./mocks/query_mock.go -package=mocks . Query

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Capsule is a vertical collision envelope. Height is the full height
// including the rounded caps.
type Capsule struct {
	Radius float64
	Height float64
}

// HalfExtents returns the half size of the capsule's bounding box.
func (c Capsule) HalfExtents() mgl64.Vec3 {
	return mgl64.Vec3{c.Radius, c.Height / 2, c.Radius}
}

// Bounds returns the capsule's bounding box centered at center.
func (c Capsule) Bounds(center mgl64.Vec3) AABB {
	return AABBFromCenter(center, c.HalfExtents())
}

// RayHit describes the closest intersection found by a ray query.
type RayHit struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	Collider uuid.UUID
}

// Query is the read-only view of the physics world that states use for
// probing geometry.
type Query interface {
	// IntersectRay returns the closest solid hit along from→to, ignoring the
	// collider with id exclude and any solid containing from.
	IntersectRay(from, to mgl64.Vec3, exclude uuid.UUID) (RayHit, bool)
	// IntersectShape returns how many solids a capsule centered at center
	// overlaps, ignoring the collider with id exclude.
	IntersectShape(shape Capsule, center mgl64.Vec3, exclude uuid.UUID) int
}

// Kinematic is a character body moved by velocity and slid against the world.
type Kinematic interface {
	ID() uuid.UUID
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	Yaw() float64
	SetYaw(yaw float64)
	Shape() Capsule
	ShapeOffsetY() float64
	SetShape(shape Capsule, offsetY float64)
	// IsOnFloor reports floor contact as of the last MoveAndSlide.
	IsOnFloor() bool
	Gravity() mgl64.Vec3
	MoveAndSlide(delta float64)
}

// BodyKind tags character bodies for trigger filtering.
type BodyKind int

const (
	KindProp BodyKind = iota
	KindPlayer
	KindNPC
)

func (k BodyKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	default:
		return "prop"
	}
}

// Collision layers used by areas.
const (
	LayerBody uint32 = 1 << iota
	LayerHurtbox
	LayerHitbox
)
