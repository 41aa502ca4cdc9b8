// Package nav plans paths on the ground plane. Obstacles live in a chipmunk
// space used only for queries; the grid is rasterized from it on demand.
package nav

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/dronesim/component"
)

const defaultMaxNodes = 4096

// Grid is a walkability grid over the XZ plane.
type Grid struct {
	space *cp.Space

	minX, minZ float64
	cellSize   float64
	width      int
	height     int

	// Clearance is the agent radius kept free around obstacles.
	Clearance float64
	MaxNodes  int

	blocked []bool
	dirty   bool
}

// NewGrid covers [minX,maxX]×[minZ,maxZ] with square cells.
func NewGrid(minX, minZ, maxX, maxZ, cellSize, clearance float64) *Grid {
	if cellSize <= 0 {
		cellSize = 0.5
	}
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	if maxZ < minZ {
		minZ, maxZ = maxZ, minZ
	}
	return &Grid{
		space:     cp.NewSpace(),
		minX:      minX,
		minZ:      minZ,
		cellSize:  cellSize,
		width:     int(math.Ceil((maxX - minX) / cellSize)),
		height:    int(math.Ceil((maxZ - minZ) / cellSize)),
		Clearance: clearance,
		MaxNodes:  defaultMaxNodes,
		dirty:     true,
	}
}

// AddObstacle blocks the footprint of a box.
func (g *Grid) AddObstacle(min, max mgl64.Vec3) {
	if g == nil {
		return
	}
	bb := cp.BB{
		L: math.Min(min.X(), max.X()),
		B: math.Min(min.Z(), max.Z()),
		R: math.Max(min.X(), max.X()),
		T: math.Max(min.Z(), max.Z()),
	}
	shape := cp.NewBox2(g.space.StaticBody, bb, 0)
	g.space.AddShape(shape)
	g.dirty = true
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (int, int) {
	if g == nil {
		return 0, 0
	}
	return g.width, g.height
}

// CellSize returns the edge length of a cell.
func (g *Grid) CellSize() float64 {
	if g == nil {
		return 0
	}
	return g.cellSize
}

// CellOf returns the cell containing p.
func (g *Grid) CellOf(p mgl64.Vec3) (int, int, bool) {
	if g == nil {
		return 0, 0, false
	}
	x := int(math.Floor((p.X() - g.minX) / g.cellSize))
	z := int(math.Floor((p.Z() - g.minZ) / g.cellSize))
	return x, z, x >= 0 && z >= 0 && x < g.width && z < g.height
}

// CellCenter returns the world position of a cell's center at height y.
func (g *Grid) CellCenter(x, z int, y float64) mgl64.Vec3 {
	return mgl64.Vec3{
		g.minX + (float64(x)+0.5)*g.cellSize,
		y,
		g.minZ + (float64(z)+0.5)*g.cellSize,
	}
}

// Blocked reports whether an agent cannot stand in the cell.
func (g *Grid) Blocked(x, z int) bool {
	if g == nil || x < 0 || z < 0 || x >= g.width || z >= g.height {
		return true
	}
	g.rasterize()
	return g.blocked[z*g.width+x]
}

func (g *Grid) rasterize() {
	if !g.dirty {
		return
	}
	g.blocked = make([]bool, g.width*g.height)
	for z := 0; z < g.height; z++ {
		for x := 0; x < g.width; x++ {
			c := g.CellCenter(x, z, 0)
			info := g.space.PointQueryNearest(cp.Vector{X: c.X(), Y: c.Z()}, g.Clearance, cp.SHAPE_FILTER_ALL)
			g.blocked[z*g.width+x] = info != nil && info.Shape != nil
		}
	}
	g.dirty = false
}

// Clear reports whether an agent can walk straight from a to b.
func (g *Grid) Clear(a, b mgl64.Vec3) bool {
	if g == nil {
		return false
	}
	start := cp.Vector{X: a.X(), Y: a.Z()}
	end := cp.Vector{X: b.X(), Y: b.Z()}
	info := g.space.SegmentQueryFirst(start, end, g.Clearance, cp.SHAPE_FILTER_ALL)
	return info.Shape == nil
}

// FindPath returns waypoints from from to to, excluding from and ending at
// to. It returns nil when to is unreachable.
func (g *Grid) FindPath(from, to mgl64.Vec3) []mgl64.Vec3 {
	if g == nil {
		return nil
	}
	if g.Clear(from, to) {
		return []mgl64.Vec3{to}
	}
	sx, sz, ok := g.CellOf(from)
	if !ok {
		slog.Debug("nav: path start outside grid", "from", from)
		return nil
	}
	gx, gz, ok := g.CellOf(to)
	if !ok {
		slog.Debug("nav: path target outside grid", "to", to)
		return nil
	}
	if g.Blocked(gx, gz) {
		return nil
	}

	// The start cell may sit inside the clearance margin of a wall the agent
	// is brushing against; it is never treated as blocked.
	blocked := func(x, z int) bool {
		if x == sx && z == sz {
			return false
		}
		return g.Blocked(x, z)
	}
	cells := component.AStar(sx, sz, gx, gz, g.width, g.height, blocked, g.MaxNodes)
	if len(cells) == 0 {
		return nil
	}

	points := make([]mgl64.Vec3, 0, len(cells)+1)
	points = append(points, from)
	for _, c := range cells[1:] {
		points = append(points, g.CellCenter(c.X, c.Y, from.Y()))
	}
	if len(cells) > 1 {
		points = points[:len(points)-1]
	}
	points = append(points, to)
	return g.smooth(points)[1:]
}

// smooth drops waypoints that can be skipped with a clear straight line.
func (g *Grid) smooth(points []mgl64.Vec3) []mgl64.Vec3 {
	if len(points) <= 2 {
		return points
	}
	out := []mgl64.Vec3{points[0]}
	i := 0
	for i < len(points)-1 {
		next := i + 1
		for j := len(points) - 1; j > i+1; j-- {
			if g.Clear(points[i], points[j]) {
				next = j
				break
			}
		}
		out = append(out, points[next])
		i = next
	}
	return out
}
