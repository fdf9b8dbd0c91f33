package algo

import "github.com/elektrokombinacija/cbsta-grid/internal/core"

// Unreachable is the distance reported for cells with no path to a
// goal. Callers treat it as a dead branch.
const Unreachable = int(1) << 30

// ShortestPathHeuristic holds true shortest-path distances from every
// reachable cell to each goal in the pool, ignoring other agents. Built
// once per instance and immutable afterwards. Admissible and consistent
// for the time-expanded search: unit moves can never beat the grid
// distance.
type ShortestPathHeuristic struct {
	dist []map[core.Location]int
}

// NewShortestPathHeuristic runs one backward breadth-first search per
// goal (unit edge costs make BFS exact).
func NewShortestPathHeuristic(grid core.Grid, goals []core.Location) *ShortestPathHeuristic {
	h := &ShortestPathHeuristic{dist: make([]map[core.Location]int, len(goals))}
	for i, goal := range goals {
		h.dist[i] = bfsFrom(grid, goal)
	}
	return h
}

func bfsFrom(grid core.Grid, root core.Location) map[core.Location]int {
	dist := map[core.Location]int{}
	if !grid.Free(root) {
		return dist
	}
	dist[root] = 0
	queue := []core.Location{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		for _, next := range [4]core.Location{
			{X: cur.X, Y: cur.Y + 1},
			{X: cur.X, Y: cur.Y - 1},
			{X: cur.X - 1, Y: cur.Y},
			{X: cur.X + 1, Y: cur.Y},
		} {
			if !grid.Free(next) {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = d + 1
			queue = append(queue, next)
		}
	}
	return dist
}

// Value returns the shortest-path distance from a cell to goal number
// task, or Unreachable.
func (h *ShortestPathHeuristic) Value(from core.Location, task int) int {
	if d, ok := h.dist[task][from]; ok {
		return d
	}
	return Unreachable
}
