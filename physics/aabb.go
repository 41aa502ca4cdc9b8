package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// contactEpsilon is the penetration depth below which two volumes are
// considered touching rather than overlapping.
const contactEpsilon = 1e-4

// AABB is an axis-aligned box in world space.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// AABBFromCenter builds a box from its center and half extents.
func AABBFromCenter(center, half mgl64.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Overlaps reports whether the boxes penetrate by more than contactEpsilon on
// every axis. Boxes that merely touch do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	for i := 0; i < 3; i++ {
		if b.Min[i] >= o.Max[i]-contactEpsilon || b.Max[i] <= o.Min[i]+contactEpsilon {
			return false
		}
	}
	return true
}

// Contains reports whether p lies strictly inside the box.
func (b AABB) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] <= b.Min[i] || p[i] >= b.Max[i] {
			return false
		}
	}
	return true
}

// Translate returns the box moved by d.
func (b AABB) Translate(d mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// segmentHit intersects the segment origin + dir*t, t in [0,1], with the box
// using the slab method. It returns the entry parameter and the face normal.
func (b AABB) segmentHit(origin, dir mgl64.Vec3) (float64, mgl64.Vec3, bool) {
	tmin := 0.0
	tmax := 1.0
	var normal mgl64.Vec3

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < b.Min[axis] || origin[axis] > b.Max[axis] {
				return 0, mgl64.Vec3{}, false
			}
			continue
		}
		invD := 1.0 / dir[axis]
		t1 := (b.Min[axis] - origin[axis]) * invD
		t2 := (b.Max[axis] - origin[axis]) * invD
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tmin {
			tmin = t1
			normal = mgl64.Vec3{}
			normal[axis] = sign
		}
		tmax = math.Min(tmax, t2)
		if tmax < tmin {
			return 0, mgl64.Vec3{}, false
		}
	}
	return tmin, normal, true
}

// sphereOverlaps reports whether a sphere penetrates the box.
func (b AABB) sphereOverlaps(center mgl64.Vec3, radius float64) bool {
	d2 := 0.0
	for i := 0; i < 3; i++ {
		v := center[i]
		if v < b.Min[i] {
			d2 += (b.Min[i] - v) * (b.Min[i] - v)
		} else if v > b.Max[i] {
			d2 += (v - b.Max[i]) * (v - b.Max[i])
		}
	}
	r := radius - contactEpsilon
	return r > 0 && d2 < r*r
}
