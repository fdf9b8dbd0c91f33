// Package algo implements the CBS and CBS-TA planners: a time-expanded
// low-level A*, a best-first high-level constraint tree, and the task
// assignment driver that interleaves the two.
package algo

import (
	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

// Solver is the interface shared by the planning algorithms.
type Solver interface {
	// Solve attempts to find a solution for the instance.
	// Returns nil if no solution was found.
	Solve(inst *core.Instance) *core.Solution

	// Name returns the algorithm name.
	Name() string

	// Stats returns counters from the last Solve call.
	Stats() Stats
}

// Options bound the search effort.
type Options struct {
	// MaxTaskAssignments caps how many assignments CBS-TA may draw from
	// the enumerator, counting the first. 0 means unlimited.
	MaxTaskAssignments int
	// GroupSize partitions agents and goals into contiguous groups of
	// the given size; an agent is only eligible for goals inside its own
	// group. 0 means a single group.
	GroupSize int
	// MaxHighLevelExpansions caps constraint-tree expansions. The search
	// cannot prove infeasibility of an unsolvable instance on its own
	// (waiting is always available to the low level), so callers that
	// need termination on such inputs set this. 0 means unbounded.
	MaxHighLevelExpansions int
}

// Stats are the search counters reported alongside a solution.
type Stats struct {
	HighLevelExpanded  int
	LowLevelExpanded   int
	NumTaskAssignments int
	// LimitReached distinguishes a budget stop from true exhaustion.
	LimitReached bool
}

// environment binds the grid domain to the search operations: heuristic,
// goal test, state and transition validity for successors. It is the
// monomorphized counterpart of a generic search parameterization; the
// low-level inner loop calls these directly.
type environment struct {
	grid   core.Grid
	starts []core.State
	goals  []core.Location

	heuristic *ShortestPathHeuristic
	stats     Stats
}

func newEnvironment(inst *core.Instance) *environment {
	return &environment{
		grid:      inst.Grid,
		starts:    inst.Starts,
		goals:     inst.Goals,
		heuristic: NewShortestPathHeuristic(inst.Grid, inst.Goals),
	}
}

func (e *environment) admissibleHeuristic(s core.State, task int) int {
	return e.heuristic.Value(s.Location(), task)
}

// isSolution tests arrival at the goal strictly after the last vertex
// constraint at that cell, so a parked agent cannot violate a future
// constraint there.
func (e *environment) isSolution(s core.State, task, lastGoalConstraint int) bool {
	return s.X == e.goals[task].X && s.Y == e.goals[task].Y && s.Time > lastGoalConstraint
}

func (e *environment) stateValid(s core.State, cons core.Constraints) bool {
	return e.grid.Free(s.Location()) && !cons.ForbidsState(s)
}

func (e *environment) transitionValid(s1, s2 core.State, cons core.Constraints) bool {
	return !cons.ForbidsTransition(s1, s2)
}
