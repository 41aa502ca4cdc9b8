package physics

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// DefaultGravity matches the usual 3D engine default of 9.8 m/s² downward.
var DefaultGravity = mgl64.Vec3{0, -9.8, 0}

// Box is a static solid.
type Box struct {
	id     uuid.UUID
	Bounds AABB
}

// ID returns the collider id reported by ray hits on this box.
func (b *Box) ID() uuid.UUID {
	if b == nil {
		return uuid.Nil
	}
	return b.id
}

// World owns static solids, character bodies and trigger areas.
type World struct {
	gravity mgl64.Vec3

	boxes  []*Box
	bodies []*CharacterBody
	areas  []*Area
}

// NewWorld creates an empty world with the default gravity.
func NewWorld() *World {
	return &World{gravity: DefaultGravity}
}

// SetGravity replaces the world gravity.
func (w *World) SetGravity(g mgl64.Vec3) {
	if w == nil {
		return
	}
	w.gravity = g
}

// Gravity returns the world gravity.
func (w *World) Gravity() mgl64.Vec3 {
	if w == nil {
		return DefaultGravity
	}
	return w.gravity
}

// AddBox adds a static solid spanning min..max.
func (w *World) AddBox(min, max mgl64.Vec3) *Box {
	if w == nil {
		return nil
	}
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			min[i], max[i] = max[i], min[i]
		}
	}
	b := &Box{id: uuid.New(), Bounds: AABB{Min: min, Max: max}}
	w.boxes = append(w.boxes, b)
	return b
}

// Boxes returns the static solids in insertion order.
func (w *World) Boxes() []*Box {
	if w == nil {
		return nil
	}
	return append([]*Box(nil), w.boxes...)
}

// AddBody creates a character body with its origin at position. offsetY is
// the height of the capsule center above the origin.
func (w *World) AddBody(kind BodyKind, position mgl64.Vec3, shape Capsule, offsetY float64) *CharacterBody {
	if w == nil {
		return nil
	}
	b := &CharacterBody{
		world:        w,
		id:           uuid.New(),
		kind:         kind,
		position:     position,
		shape:        shape,
		shapeOffsetY: offsetY,
		collidable:   true,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Bodies returns the character bodies in insertion order.
func (w *World) Bodies() []*CharacterBody {
	if w == nil {
		return nil
	}
	return append([]*CharacterBody(nil), w.bodies...)
}

// IntersectRay implements Query.
func (w *World) IntersectRay(from, to mgl64.Vec3, exclude uuid.UUID) (RayHit, bool) {
	if w == nil {
		return RayHit{}, false
	}
	dir := to.Sub(from)
	if dir.Len() == 0 {
		return RayHit{}, false
	}

	closest := 2.0
	var hit RayHit
	test := func(id uuid.UUID, bounds AABB) {
		if id == exclude || bounds.Contains(from) {
			return
		}
		t, normal, ok := bounds.segmentHit(from, dir)
		if !ok || t >= closest {
			return
		}
		closest = t
		hit = RayHit{Position: from.Add(dir.Mul(t)), Normal: normal, Collider: id}
	}

	for _, b := range w.boxes {
		test(b.id, b.Bounds)
	}
	for _, b := range w.bodies {
		if !b.collidable {
			continue
		}
		test(b.id, b.Bounds())
	}
	if closest > 1 {
		return RayHit{}, false
	}
	return hit, true
}

// IntersectShape implements Query.
func (w *World) IntersectShape(shape Capsule, center mgl64.Vec3, exclude uuid.UUID) int {
	if w == nil {
		return 0
	}
	if shape.Height <= 0 || shape.Radius <= 0 {
		slog.Warn("physics: shape query with empty capsule", "radius", shape.Radius, "height", shape.Height)
		return 0
	}
	bounds := shape.Bounds(center)
	count := 0
	for _, b := range w.boxes {
		if b.id != exclude && bounds.Overlaps(b.Bounds) {
			count++
		}
	}
	for _, b := range w.bodies {
		if b.id != exclude && b.collidable && bounds.Overlaps(b.Bounds()) {
			count++
		}
	}
	return count
}

// solidsOverlapping lists the bounds of every solid other than self that
// penetrates bounds.
func (w *World) solidsOverlapping(bounds AABB, self uuid.UUID) []AABB {
	var out []AABB
	for _, b := range w.boxes {
		if bounds.Overlaps(b.Bounds) {
			out = append(out, b.Bounds)
		}
	}
	for _, b := range w.bodies {
		if b.id == self || !b.collidable {
			continue
		}
		if other := b.Bounds(); bounds.Overlaps(other) {
			out = append(out, other)
		}
	}
	return out
}

var _ Query = (*World)(nil)
