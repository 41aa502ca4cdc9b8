package nav

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/dronesim/common"
)

// Positioner is anything with a world position, usually a character body.
type Positioner interface {
	Position() mgl64.Vec3
}

// Agent follows paths planned on a Grid for one body.
type Agent struct {
	grid *Grid
	body Positioner

	// PathDesiredDistance is how close the body must get to a waypoint
	// before the next one is returned.
	PathDesiredDistance float64
	// TargetDesiredDistance is how close counts as arrived.
	TargetDesiredDistance float64

	target     mgl64.Vec3
	targetCell [2]int
	hasTarget  bool

	path []mgl64.Vec3
	next int
}

// NewAgent creates an agent for body on grid.
func NewAgent(grid *Grid, body Positioner) *Agent {
	return &Agent{
		grid:                  grid,
		body:                  body,
		PathDesiredDistance:   0.5,
		TargetDesiredDistance: 0.5,
	}
}

// SetTargetPosition sets where the agent is heading. The path is replanned
// only when the target moves to another cell.
func (a *Agent) SetTargetPosition(p mgl64.Vec3) {
	if a == nil || a.body == nil {
		return
	}
	x, z, _ := a.grid.CellOf(p)
	cell := [2]int{x, z}
	a.target = p
	if a.hasTarget && cell == a.targetCell {
		if n := len(a.path); n > 0 {
			a.path[n-1] = p
		}
		return
	}
	a.hasTarget = true
	a.targetCell = cell
	a.path = a.grid.FindPath(a.body.Position(), p)
	a.next = 0
}

// TargetPosition returns the last target set.
func (a *Agent) TargetPosition() mgl64.Vec3 {
	if a == nil {
		return mgl64.Vec3{}
	}
	return a.target
}

// IsNavigationFinished reports whether the agent has arrived or has no
// usable path.
func (a *Agent) IsNavigationFinished() bool {
	if a == nil || a.body == nil || !a.hasTarget || len(a.path) == 0 {
		return true
	}
	return common.HorizontalDistance(a.body.Position(), a.target) <= a.TargetDesiredDistance
}

// NextPathPosition returns the waypoint to steer toward. When navigation is
// finished it returns the body's own position.
func (a *Agent) NextPathPosition() mgl64.Vec3 {
	if a == nil || a.body == nil {
		return mgl64.Vec3{}
	}
	pos := a.body.Position()
	if a.IsNavigationFinished() {
		return pos
	}
	for a.next < len(a.path)-1 && common.HorizontalDistance(pos, a.path[a.next]) <= a.PathDesiredDistance {
		a.next++
	}
	return a.path[a.next]
}

// Path returns the remaining waypoints.
func (a *Agent) Path() []mgl64.Vec3 {
	if a == nil || a.next >= len(a.path) {
		return nil
	}
	return append([]mgl64.Vec3(nil), a.path[a.next:]...)
}
