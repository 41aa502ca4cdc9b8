package component

import (
	"container/heap"
	"math"
)

// PathNode represents a grid cell in an A* path.
type PathNode struct {
	X int
	Y int
}

// AStar finds a path from start to goal on an 8-way grid. Diagonal steps
// are only taken when both adjacent orthogonal cells are open, so paths never
// cut a blocked corner. isBlocked should return true for cells that cannot be
// traversed. maxNodes limits the number of expanded nodes to avoid runaway
// searches.
func AStar(startX, startY, goalX, goalY, width, height int, isBlocked func(x, y int) bool, maxNodes int) []PathNode {
	if width <= 0 || height <= 0 {
		return nil
	}
	if startX == goalX && startY == goalY {
		return []PathNode{{X: startX, Y: startY}}
	}
	inside := func(x, y int) bool { return x >= 0 && y >= 0 && x < width && y < height }
	if !inside(startX, startY) || !inside(goalX, goalY) {
		return nil
	}
	open := func(x, y int) bool { return inside(x, y) && (isBlocked == nil || !isBlocked(x, y)) }
	if !open(goalX, goalY) {
		return nil
	}

	startIdx := startY*width + startX
	goalIdx := goalY*width + goalX

	frontier := &nodeQueue{}
	heap.Push(frontier, queued{idx: startIdx, f: heuristic(startX, startY, goalX, goalY)})

	cameFrom := make(map[int]int, 128)
	gScore := map[int]float64{startIdx: 0}
	closed := make(map[int]bool, 128)

	iterations := 0
	for frontier.Len() > 0 && iterations < maxNodes {
		current := heap.Pop(frontier).(queued)
		if closed[current.idx] {
			continue
		}
		closed[current.idx] = true
		iterations++

		if current.idx == goalIdx {
			return reconstructPath(cameFrom, current.idx, startIdx, width)
		}

		cx, cy := current.idx%width, current.idx/width
		for _, d := range neighbors {
			nx, ny := cx+d.dx, cy+d.dy
			if !open(nx, ny) {
				continue
			}
			if d.dx != 0 && d.dy != 0 && (!open(cx+d.dx, cy) || !open(cx, cy+d.dy)) {
				continue
			}
			neighborIdx := ny*width + nx
			if closed[neighborIdx] {
				continue
			}
			tentative := gScore[current.idx] + d.cost
			if prev, seen := gScore[neighborIdx]; seen && tentative >= prev {
				continue
			}
			cameFrom[neighborIdx] = current.idx
			gScore[neighborIdx] = tentative
			heap.Push(frontier, queued{idx: neighborIdx, f: tentative + heuristic(nx, ny, goalX, goalY)})
		}
	}

	return nil
}

type step struct {
	dx, dy int
	cost   float64
}

var neighbors = []step{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
	{1, 1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
}

func reconstructPath(cameFrom map[int]int, currentIdx, startIdx, width int) []PathNode {
	path := make([]PathNode, 0, 32)
	for {
		path = append(path, PathNode{X: currentIdx % width, Y: currentIdx / width})
		if currentIdx == startIdx {
			break
		}
		prev, ok := cameFrom[currentIdx]
		if !ok {
			return nil
		}
		currentIdx = prev
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// heuristic is the octile distance, admissible for 8-way movement.
func heuristic(x1, y1, x2, y2 int) float64 {
	dx := math.Abs(float64(x1 - x2))
	dy := math.Abs(float64(y1 - y2))
	return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
}

type queued struct {
	idx int
	f   float64
}

type nodeQueue []queued

func (q nodeQueue) Len() int           { return len(q) }
func (q nodeQueue) Less(i, j int) bool { return q[i].f < q[j].f }
func (q nodeQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)        { *q = append(*q, x.(queued)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
