package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/milk9111/dronesim/common"
)

// AreaShape is the trigger volume of an Area.
type AreaShape struct {
	// Radius > 0 makes the area a sphere.
	Radius float64
	// HalfExtents is used when Radius is zero.
	HalfExtents mgl64.Vec3
}

// Area is a trigger volume. A monitoring area reports other areas and bodies
// that start or stop overlapping it whenever the world flushes overlaps.
type Area struct {
	id uuid.UUID

	// Owner is the object the area belongs to, typically a hitbox or hurtbox.
	Owner any

	Layer      uint32
	Mask       uint32
	Monitoring bool

	shape    AreaShape
	position mgl64.Vec3
	attached *CharacterBody
	offset   mgl64.Vec3
	disabled bool

	OnAreaEntered func(other *Area)
	OnAreaExited  func(other *Area)
	OnBodyEntered func(body *CharacterBody)
	OnBodyExited  func(body *CharacterBody)

	areas  []*Area
	bodies []*CharacterBody
}

// AddArea creates an enabled trigger volume.
func (w *World) AddArea(shape AreaShape, layer, mask uint32) *Area {
	if w == nil {
		return nil
	}
	a := &Area{
		id:    uuid.New(),
		shape: shape,
		Layer: layer,
		Mask:  mask,
	}
	w.areas = append(w.areas, a)
	return a
}

// ID returns the area's instance id.
func (a *Area) ID() uuid.UUID { return a.id }

// Attach makes the area follow body. offset is expressed in the body's local
// frame and rotates with its yaw.
func (a *Area) Attach(body *CharacterBody, offset mgl64.Vec3) {
	a.attached = body
	a.offset = offset
}

// SetPosition places a detached area.
func (a *Area) SetPosition(p mgl64.Vec3) { a.position = p }

// Position returns the current world position of the area's center.
func (a *Area) Position() mgl64.Vec3 {
	if a.attached != nil {
		return a.attached.Position().Add(common.RotateY(a.offset, a.attached.Yaw()))
	}
	return a.position
}

// Shape returns the trigger volume.
func (a *Area) Shape() AreaShape { return a.shape }

// SetShape replaces the trigger volume.
func (a *Area) SetShape(shape AreaShape) { a.shape = shape }

// SetDisabled toggles the area. A disabled area neither detects nor is
// detected. Disabling ends the area's own overlaps immediately, firing exit
// callbacks; areas that were watching it see the exit on the next flush.
func (a *Area) SetDisabled(disabled bool) {
	if disabled == a.disabled {
		return
	}
	a.disabled = disabled
	if !disabled {
		return
	}
	areas, bodies := a.areas, a.bodies
	a.areas, a.bodies = nil, nil
	for _, o := range areas {
		if a.OnAreaExited != nil {
			a.OnAreaExited(o)
		}
	}
	for _, b := range bodies {
		if a.OnBodyExited != nil {
			a.OnBodyExited(b)
		}
	}
}

// Disabled reports whether the area is switched off.
func (a *Area) Disabled() bool { return a.disabled }

// OverlappingAreas returns the areas overlapping as of the last flush.
func (a *Area) OverlappingAreas() []*Area { return append([]*Area(nil), a.areas...) }

func (a *Area) bounds() AABB {
	if a.shape.Radius > 0 {
		r := a.shape.Radius
		return AABBFromCenter(a.Position(), mgl64.Vec3{r, r, r})
	}
	return AABBFromCenter(a.Position(), a.shape.HalfExtents)
}

func (a *Area) overlapsBox(box AABB) bool {
	if a.shape.Radius > 0 {
		return box.sphereOverlaps(a.Position(), a.shape.Radius)
	}
	return a.bounds().Overlaps(box)
}

func (a *Area) overlapsArea(o *Area) bool {
	if a.shape.Radius > 0 && o.shape.Radius > 0 {
		r := a.shape.Radius + o.shape.Radius - contactEpsilon
		return a.Position().Sub(o.Position()).Len() < r
	}
	if o.shape.Radius > 0 {
		return o.overlapsBox(a.bounds())
	}
	return a.overlapsBox(o.bounds())
}

// FlushOverlaps recomputes overlaps for every monitoring area and fires exit
// callbacks, then enter callbacks, in registration order.
func (w *World) FlushOverlaps() {
	if w == nil {
		return
	}
	for _, a := range w.areas {
		var areas []*Area
		var bodies []*CharacterBody
		if a.Monitoring && !a.disabled {
			for _, o := range w.areas {
				if o == a || o.disabled || o.Layer&a.Mask == 0 {
					continue
				}
				if a.overlapsArea(o) {
					areas = append(areas, o)
				}
			}
			if a.Mask&LayerBody != 0 {
				for _, b := range w.bodies {
					if b.collidable && a.overlapsBox(b.Bounds()) {
						bodies = append(bodies, b)
					}
				}
			}
		}

		prevAreas, prevBodies := a.areas, a.bodies
		a.areas, a.bodies = areas, bodies

		for _, o := range prevAreas {
			if !containsArea(areas, o) && a.OnAreaExited != nil {
				a.OnAreaExited(o)
			}
		}
		for _, b := range prevBodies {
			if !containsBody(bodies, b) && a.OnBodyExited != nil {
				a.OnBodyExited(b)
			}
		}
		for _, o := range areas {
			if !containsArea(prevAreas, o) && a.OnAreaEntered != nil {
				a.OnAreaEntered(o)
			}
		}
		for _, b := range bodies {
			if !containsBody(prevBodies, b) && a.OnBodyEntered != nil {
				a.OnBodyEntered(b)
			}
		}
	}
}

func containsArea(list []*Area, a *Area) bool {
	for _, o := range list {
		if o == a {
			return true
		}
	}
	return false
}

func containsBody(list []*CharacterBody, b *CharacterBody) bool {
	for _, o := range list {
		if o == b {
			return true
		}
	}
	return false
}
