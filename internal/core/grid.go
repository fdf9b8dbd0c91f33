package core

// Grid is a 4-connected grid with static obstacles.
type Grid struct {
	DimX, DimY int
	Obstacles  map[Location]struct{}
}

// NewGrid builds a grid from its dimensions and blocked cells.
func NewGrid(dimx, dimy int, obstacles []Location) Grid {
	blocked := make(map[Location]struct{}, len(obstacles))
	for _, o := range obstacles {
		blocked[o] = struct{}{}
	}
	return Grid{DimX: dimx, DimY: dimy, Obstacles: blocked}
}

// Contains reports whether l lies inside the grid bounds.
func (g Grid) Contains(l Location) bool {
	return l.X >= 0 && l.X < g.DimX && l.Y >= 0 && l.Y < g.DimY
}

// Blocked reports whether l is an obstacle cell.
func (g Grid) Blocked(l Location) bool {
	_, ok := g.Obstacles[l]
	return ok
}

// Free reports whether l is inside the grid and not an obstacle.
func (g Grid) Free(l Location) bool {
	return g.Contains(l) && !g.Blocked(l)
}
