package obj

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/milk9111/dronesim/common"
	"github.com/milk9111/dronesim/physics"
)

const (
	vaultRayHeightFrac = 0.25
	vaultReach         = 1.0
	vaultUpperFrac     = 0.60
	vaultProbeInset    = 0.1
	vaultProbeLift     = 0.1
)

// VaultGeometry is everything the vault probe needs to know about the actor.
// Shape and ShapeOffsetY describe the standing envelope.
type VaultGeometry struct {
	Position     mgl64.Vec3
	Forward      mgl64.Vec3
	Shape        physics.Capsule
	ShapeOffsetY float64
	CrouchScale  float64
	Exclude      uuid.UUID
}

// VaultResult is only valid for the tick it was computed on.
type VaultResult struct {
	CanVault     bool
	Target       mgl64.Vec3
	ShouldCrouch bool
}

// ProbeVault decides whether the actor can climb the ledge in front of it and
// where its origin should end up.
func ProbeVault(g VaultGeometry, q physics.Query) VaultResult {
	if q == nil {
		return VaultResult{}
	}
	forward := common.Normalized(common.Flatten(g.Forward))
	if common.IsZero(forward) {
		return VaultResult{}
	}

	h := g.Shape.Height
	bottom := g.Position.Y() + g.ShapeOffsetY - h/2
	top := bottom + h
	upper := top - h*vaultUpperFrac

	start := mgl64.Vec3{g.Position.X(), bottom + h*vaultRayHeightFrac, g.Position.Z()}
	wall, ok := q.IntersectRay(start, start.Add(forward.Mul(vaultReach)), g.Exclude)
	if !ok {
		return VaultResult{}
	}
	if wall.Position.Y() > upper || wall.Position.Y() < bottom {
		return VaultResult{}
	}

	probe := wall.Position.Add(forward.Mul(vaultProbeInset))
	from := mgl64.Vec3{probe.X(), top + vaultProbeLift, probe.Z()}
	to := mgl64.Vec3{probe.X(), bottom, probe.Z()}
	surface, ok := q.IntersectRay(from, to, g.Exclude)
	if !ok {
		return VaultResult{}
	}
	ledgeY := surface.Position.Y()
	if ledgeY > upper {
		return VaultResult{}
	}
	x, z := surface.Position.X(), surface.Position.Z()

	center := mgl64.Vec3{x, ledgeY + h/2, z}
	if q.IntersectShape(g.Shape, center, g.Exclude) == 0 {
		return VaultResult{
			CanVault: true,
			Target:   mgl64.Vec3{x, ledgeY + h/2 - g.ShapeOffsetY, z},
		}
	}

	crouch := physics.Capsule{Radius: g.Shape.Radius, Height: h * g.CrouchScale}
	center = mgl64.Vec3{x, ledgeY + crouch.Height/2, z}
	if q.IntersectShape(crouch, center, g.Exclude) == 0 {
		return VaultResult{
			CanVault:     true,
			Target:       mgl64.Vec3{x, ledgeY + crouch.Height/2 - g.ShapeOffsetY*g.CrouchScale, z},
			ShouldCrouch: true,
		}
	}

	return VaultResult{}
}
