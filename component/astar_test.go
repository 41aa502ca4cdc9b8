package component

import "testing"

func TestAStar(t *testing.T) {
	// 5x5 grid with a wall at x=2 for y in 0..3, open at y=4.
	wall := func(x, y int) bool { return x == 2 && y < 4 }

	cases := []struct {
		name      string
		sx, sy    int
		gx, gy    int
		blocked   func(x, y int) bool
		wantLen   int
		wantNil   bool
		mustAvoid bool
	}{
		{"same_cell", 1, 1, 1, 1, nil, 1, false, false},
		{"straight", 0, 0, 4, 0, nil, 5, false, false},
		{"diagonal", 0, 0, 3, 3, nil, 4, false, false},
		{"around_wall", 0, 0, 4, 0, wall, 0, false, true},
		{"blocked_goal", 0, 0, 2, 1, wall, 0, true, false},
		{"out_of_bounds", 0, 0, 9, 9, nil, 0, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := AStar(c.sx, c.sy, c.gx, c.gy, 5, 5, c.blocked, 1000)
			if c.wantNil {
				if path != nil {
					t.Fatalf("expected no path, got %v", path)
				}
				return
			}
			if len(path) == 0 {
				t.Fatalf("expected a path")
			}
			if c.wantLen > 0 && len(path) != c.wantLen {
				t.Fatalf("expected %d nodes, got %d: %v", c.wantLen, len(path), path)
			}
			first, last := path[0], path[len(path)-1]
			if first.X != c.sx || first.Y != c.sy || last.X != c.gx || last.Y != c.gy {
				t.Fatalf("path endpoints wrong: %v", path)
			}
			if c.mustAvoid {
				for _, n := range path {
					if wall(n.X, n.Y) {
						t.Fatalf("path crosses wall at %v", n)
					}
				}
			}
		})
	}
}

func TestAStarNoCornerCutting(t *testing.T) {
	blocked := func(x, y int) bool { return x == 1 && y == 0 }
	path := AStar(0, 0, 1, 1, 3, 3, blocked, 100)
	if len(path) != 3 {
		t.Fatalf("expected detour through (0,1), got %v", path)
	}
	if path[1].X != 0 || path[1].Y != 1 {
		t.Fatalf("expected detour through (0,1), got %v", path)
	}
}
