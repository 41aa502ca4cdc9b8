package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Forward is -Z, the facing axis of an unrotated drone body.
var Forward = mgl64.Vec3{0, 0, -1}

// Back is +Z, the facing axis of an unrotated NPC body.
var Back = mgl64.Vec3{0, 0, 1}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpAngle interpolates between two angles (radians) along the shortest arc.
func LerpAngle(from, to, weight float64) float64 {
	diff := math.Mod(to-from, 2*math.Pi)
	dist := math.Mod(2*diff, 2*math.Pi) - diff
	return from + dist*weight
}

// Flatten drops the vertical component.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// Normalized returns v scaled to unit length, or zero when v has no length.
func Normalized(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// IsZero reports whether v is the zero vector.
func IsZero(v mgl64.Vec3) bool {
	return v.X() == 0 && v.Y() == 0 && v.Z() == 0
}

// RotateY rotates v around the world up axis by angle radians.
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}

// AngleBetween returns the unsigned angle in radians between a and b.
func AngleBetween(a, b mgl64.Vec3) float64 {
	cross := a.Cross(b).Len()
	return math.Atan2(cross, a.Dot(b))
}

// HorizontalDistance measures the distance between two points on the XZ plane.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	return Flatten(b.Sub(a)).Len()
}
