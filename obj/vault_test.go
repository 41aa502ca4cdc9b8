package obj

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/dronesim/physics"
	"github.com/milk9111/dronesim/physics/mocks"
)

func standingGeometry() VaultGeometry {
	return VaultGeometry{
		Forward:      mgl64.Vec3{0, 0, -1},
		Shape:        physics.Capsule{Radius: 0.5, Height: 2},
		ShapeOffsetY: 1,
		CrouchScale:  0.6,
		Exclude:      uuid.New(),
	}
}

func wallHit(y float64) physics.RayHit {
	return physics.RayHit{Position: mgl64.Vec3{0, y, -0.5}, Normal: mgl64.Vec3{0, 0, 1}}
}

func surfaceHit(y float64) physics.RayHit {
	return physics.RayHit{Position: mgl64.Vec3{0, y, -0.6}, Normal: mgl64.Vec3{0, 1, 0}}
}

func TestProbeVaultRejects(t *testing.T) {
	cases := []struct {
		name   string
		expect func(q *mocks.MockQueryMockRecorder)
	}{
		{
			name: "no_wall",
			expect: func(q *mocks.MockQueryMockRecorder) {
				q.IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(physics.RayHit{}, false)
			},
		},
		{
			name: "wall_hit_above_upper_bound",
			expect: func(q *mocks.MockQueryMockRecorder) {
				q.IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(wallHit(0.9), true)
			},
		},
		{
			name: "wall_hit_below_bottom",
			expect: func(q *mocks.MockQueryMockRecorder) {
				q.IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(wallHit(-0.2), true)
			},
		},
		{
			name: "no_surface",
			expect: func(q *mocks.MockQueryMockRecorder) {
				gomock.InOrder(
					q.IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(wallHit(0.5), true),
					q.IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(physics.RayHit{}, false),
				)
			},
		},
		{
			name: "surface_too_high",
			expect: func(q *mocks.MockQueryMockRecorder) {
				gomock.InOrder(
					q.IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(wallHit(0.5), true),
					q.IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(surfaceHit(1.0), true),
				)
			},
		},
		{
			name: "no_room",
			expect: func(q *mocks.MockQueryMockRecorder) {
				gomock.InOrder(
					q.IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(wallHit(0.5), true),
					q.IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(surfaceHit(0.7), true),
					q.IntersectShape(gomock.Any(), gomock.Any(), gomock.Any()).Return(1),
					q.IntersectShape(gomock.Any(), gomock.Any(), gomock.Any()).Return(2),
				)
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := mocks.NewMockQuery(ctrl)
			c.expect(q.EXPECT())

			res := ProbeVault(standingGeometry(), q)
			assert.False(t, res.CanVault)
		})
	}
}

func TestProbeVaultStanding(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuery(ctrl)
	g := standingGeometry()

	var rayStart, probeStart, probeEnd, center mgl64.Vec3
	gomock.InOrder(
		q.EXPECT().IntersectRay(gomock.Any(), gomock.Any(), g.Exclude).
			DoAndReturn(func(from, to mgl64.Vec3, _ uuid.UUID) (physics.RayHit, bool) {
				rayStart = from
				return wallHit(0.5), true
			}),
		q.EXPECT().IntersectRay(gomock.Any(), gomock.Any(), g.Exclude).
			DoAndReturn(func(from, to mgl64.Vec3, _ uuid.UUID) (physics.RayHit, bool) {
				probeStart, probeEnd = from, to
				return surfaceHit(0.7), true
			}),
		q.EXPECT().IntersectShape(g.Shape, gomock.Any(), g.Exclude).
			DoAndReturn(func(_ physics.Capsule, c mgl64.Vec3, _ uuid.UUID) int {
				center = c
				return 0
			}),
	)

	res := ProbeVault(g, q)

	require.True(t, res.CanVault)
	assert.False(t, res.ShouldCrouch)
	assert.InDelta(t, 0.5, rayStart.Y(), 1e-9, "ray starts a quarter up the envelope")
	assert.InDelta(t, 2.1, probeStart.Y(), 1e-9)
	assert.InDelta(t, 0, probeEnd.Y(), 1e-9)
	assert.InDelta(t, -0.6, probeStart.Z(), 1e-9, "probe is inset past the wall")
	assert.InDelta(t, 1.7, center.Y(), 1e-9)
	assert.InDelta(t, 0.7, res.Target.Y(), 1e-9)
	assert.InDelta(t, -0.6, res.Target.Z(), 1e-9)
}

func TestProbeVaultCrouch(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuery(ctrl)
	g := standingGeometry()
	g.Position = mgl64.Vec3{0, 0.2, 0}

	gomock.InOrder(
		q.EXPECT().IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(wallHit(0.7), true),
		q.EXPECT().IntersectRay(gomock.Any(), gomock.Any(), gomock.Any()).Return(surfaceHit(0.9), true),
		q.EXPECT().IntersectShape(g.Shape, gomock.Any(), gomock.Any()).Return(1),
		q.EXPECT().IntersectShape(physics.Capsule{Radius: 0.5, Height: 1.2}, gomock.Any(), gomock.Any()).Return(0),
	)

	res := ProbeVault(g, q)

	require.True(t, res.CanVault)
	assert.True(t, res.ShouldCrouch)
	assert.InDelta(t, 0.9, res.Target.Y(), 1e-9)
}

func TestProbeVaultWithoutForward(t *testing.T) {
	g := standingGeometry()
	g.Forward = mgl64.Vec3{0, 1, 0}
	assert.False(t, ProbeVault(g, physics.NewWorld()).CanVault)
	assert.False(t, ProbeVault(standingGeometry(), nil).CanVault)
}

func TestProbeVaultAgainstWorld(t *testing.T) {
	cases := []struct {
		name     string
		ledgeTop float64
		overhang bool
		can      bool
		crouch   bool
	}{
		{"low_ledge", 0.7, false, true, false},
		{"ledge_under_overhang", 0.7, true, true, true},
		{"too_tall", 1.2, false, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := physics.NewWorld()
			w.AddBox(mgl64.Vec3{-5, -1, -5}, mgl64.Vec3{5, 0, 5})
			w.AddBox(mgl64.Vec3{-1, 0, -1.6}, mgl64.Vec3{1, c.ledgeTop, -0.6})
			if c.overhang {
				w.AddBox(mgl64.Vec3{-1, 2.2, -2}, mgl64.Vec3{1, 2.6, 0})
			}

			res := ProbeVault(standingGeometry(), w)

			require.Equal(t, c.can, res.CanVault)
			assert.Equal(t, c.crouch, res.ShouldCrouch)
			if c.can {
				assert.InDelta(t, c.ledgeTop, res.Target.Y(), 1e-9)
				assert.InDelta(t, -0.7, res.Target.Z(), 1e-9)
			}
		})
	}
}
