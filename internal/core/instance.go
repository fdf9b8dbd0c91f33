package core

import "fmt"

// Instance is one planning problem: a grid, per-agent start states, and
// a pool of candidate goal cells.
type Instance struct {
	Grid   Grid
	Starts []State
	Goals  []Location
}

// NewInstance validates the inputs and builds an instance. Detected
// problems are construction failures; the planner never sees an invalid
// instance.
func NewInstance(grid Grid, starts []State, goals []Location) (*Instance, error) {
	if grid.DimX <= 0 || grid.DimY <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, grid.DimX, grid.DimY)
	}
	if len(goals) < len(starts) {
		return nil, fmt.Errorf("%w: %d goals for %d agents", ErrGoalPool, len(goals), len(starts))
	}
	seen := make(map[Location]int, len(starts))
	for i, s := range starts {
		loc := s.Location()
		if !grid.Contains(loc) {
			return nil, fmt.Errorf("%w: agent %d start %v", ErrOutOfBounds, i, loc)
		}
		if grid.Blocked(loc) {
			return nil, fmt.Errorf("%w: agent %d start %v", ErrBlockedCell, i, loc)
		}
		if j, dup := seen[loc]; dup {
			return nil, fmt.Errorf("%w: agents %d and %d at %v", ErrDuplicateStart, j, i, loc)
		}
		seen[loc] = i
	}
	for j, g := range goals {
		if !grid.Contains(g) {
			return nil, fmt.Errorf("%w: goal %d %v", ErrOutOfBounds, j, g)
		}
		if grid.Blocked(g) {
			return nil, fmt.Errorf("%w: goal %d %v", ErrBlockedCell, j, g)
		}
	}
	return &Instance{Grid: grid, Starts: starts, Goals: goals}, nil
}

// NumAgents returns the agent count.
func (inst *Instance) NumAgents() int { return len(inst.Starts) }
