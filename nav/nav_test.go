package nav

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dronesim/common"
)

type point struct{ p mgl64.Vec3 }

func (p *point) Position() mgl64.Vec3 { return p.p }

// newWallGrid builds a 20x20 m arena with a wall across x=0 from z=-10 to
// z=6, leaving a gap on the +Z side.
func newWallGrid() *Grid {
	g := NewGrid(-10, -10, 10, 10, 0.5, 0.4)
	g.AddObstacle(mgl64.Vec3{-0.5, 0, -10}, mgl64.Vec3{0.5, 3, 6})
	return g
}

func TestGridBlocked(t *testing.T) {
	g := newWallGrid()

	x, z, ok := g.CellOf(mgl64.Vec3{0, 0, 0})
	require.True(t, ok)
	assert.True(t, g.Blocked(x, z))

	x, z, ok = g.CellOf(mgl64.Vec3{-5, 0, 0})
	require.True(t, ok)
	assert.False(t, g.Blocked(x, z))

	assert.True(t, g.Blocked(-1, 0), "outside the grid is blocked")
	_, _, ok = g.CellOf(mgl64.Vec3{50, 0, 0})
	assert.False(t, ok)
}

func TestGridClear(t *testing.T) {
	g := newWallGrid()
	assert.False(t, g.Clear(mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{5, 0, 0}))
	assert.True(t, g.Clear(mgl64.Vec3{-5, 0, 8}, mgl64.Vec3{5, 0, 8}))
}

func TestFindPathAroundWall(t *testing.T) {
	g := newWallGrid()
	from := mgl64.Vec3{-5, 0, 0}
	to := mgl64.Vec3{5, 0, 0}

	path := g.FindPath(from, to)

	require.NotEmpty(t, path)
	assert.Equal(t, to, path[len(path)-1])
	prev := from
	for _, p := range path {
		assert.True(t, g.Clear(prev, p), "segment %v -> %v crosses the wall", prev, p)
		prev = p
	}
	assert.Less(t, len(path), 6, "smoothing keeps only corner waypoints")
}

func TestFindPathDirect(t *testing.T) {
	g := newWallGrid()
	to := mgl64.Vec3{-2, 0, -2}
	assert.Equal(t, []mgl64.Vec3{to}, g.FindPath(mgl64.Vec3{-5, 0, 0}, to))
}

func TestFindPathUnreachable(t *testing.T) {
	g := newWallGrid()
	assert.Nil(t, g.FindPath(mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{0, 0, 0}), "target inside the wall")
	assert.Nil(t, g.FindPath(mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{40, 0, 0}), "target outside the grid")
}

func TestAgentReachesTargetAroundObstacle(t *testing.T) {
	g := newWallGrid()
	body := &point{p: mgl64.Vec3{-5, 0, 0}}
	agent := NewAgent(g, body)
	target := mgl64.Vec3{5, 0, 0}

	agent.SetTargetPosition(target)
	require.False(t, agent.IsNavigationFinished())

	const speed, delta = 4.0, 1.0 / 60
	for i := 0; i < 60*20 && !agent.IsNavigationFinished(); i++ {
		next := agent.NextPathPosition()
		dir := common.Normalized(common.Flatten(next.Sub(body.p)))
		body.p = body.p.Add(dir.Mul(speed * delta))
		agent.SetTargetPosition(target)
	}

	assert.True(t, agent.IsNavigationFinished())
	assert.LessOrEqual(t, common.HorizontalDistance(body.p, target), agent.TargetDesiredDistance)
	assert.Equal(t, body.p, agent.NextPathPosition(), "finished agents steer nowhere")
}

func TestAgentWithoutTargetIsFinished(t *testing.T) {
	agent := NewAgent(newWallGrid(), &point{})
	assert.True(t, agent.IsNavigationFinished())
	assert.Nil(t, agent.Path())
}
