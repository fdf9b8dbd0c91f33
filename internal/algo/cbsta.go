package algo

import (
	"container/heap"

	"github.com/elektrokombinacija/cbsta-grid/internal/assign"
	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

// CBSTA implements Conflict-Based Search with Task Assignment. The
// constraint-tree search runs over roots seeded lazily from a next-best
// assignment enumerator, so the first conflict-free node popped is
// optimal jointly over the assignment and the routing.
type CBSTA struct {
	opts Options
	e    *environment
}

// NewCBSTA creates a CBS-TA solver.
func NewCBSTA(opts Options) *CBSTA {
	return &CBSTA{opts: opts}
}

func (c *CBSTA) Name() string { return "CBS-TA" }

// Stats returns counters from the last Solve call.
func (c *CBSTA) Stats() Stats {
	if c.e == nil {
		return Stats{}
	}
	return c.e.stats
}

// buildAssignmentMatrix seeds the enumerator with the heuristic
// distance of every in-group (agent, goal) pair. Out-of-group pairs are
// excluded from the matrix entirely. Unreachable pairs stay in at the
// Unreachable sentinel: the solver only picks them when the group
// structure forces it, and the root construction then discards the
// assignment because the agent has no path.
func (c *CBSTA) buildAssignmentMatrix(inst *core.Instance) *assign.NextBest {
	numAgents := len(inst.Starts)
	numGoals := len(inst.Goals)
	groupSize := c.opts.GroupSize
	if groupSize <= 0 || groupSize > numGoals {
		groupSize = numGoals
	}

	nb := assign.NewNextBest(numAgents, numGoals)
	for i, start := range inst.Starts {
		groupStart := i / groupSize * groupSize
		groupEnd := groupStart + groupSize
		for j := groupStart; j < groupEnd && j < numGoals; j++ {
			nb.SetCost(i, j, int64(c.e.heuristic.Value(start.Location(), j)))
		}
	}
	return nb
}

// drawAssignment pulls the next assignment, honoring the draw budget.
// The first assignment counts toward the budget.
func (c *CBSTA) drawAssignment(nb *assign.NextBest) (tasks []int, cost int64, ok bool) {
	if c.opts.MaxTaskAssignments > 0 && c.e.stats.NumTaskAssignments >= c.opts.MaxTaskAssignments {
		c.e.stats.LimitReached = true
		return nil, 0, false
	}
	tasks, cost, ok = nb.NextSolution()
	if ok {
		c.e.stats.NumTaskAssignments++
	}
	return tasks, cost, ok
}

// Solve runs the interleaved search. Invariant: whenever a node is
// popped, every assignment cheaper than it has already been rooted, so
// the pop order is globally cost-ordered across assignments.
func (c *CBSTA) Solve(inst *core.Instance) *core.Solution {
	c.e = newEnvironment(inst)
	cs := newCBSSearch(c.e, c.opts)
	nb := c.buildAssignmentMatrix(inst)

	nextTasks, nextCost, nextOK := c.drawAssignment(nb)
	for {
		// Admit every assignment whose lower bound is at or below the
		// cheapest open node. A fresh root's cost equals its assignment
		// cost (unconstrained routing meets the heuristic distance), so
		// this keeps the open-list minimum admissible.
		for nextOK && (cs.open.Len() == 0 || int(nextCost) <= (*cs.open)[0].cost) {
			// An unplannable agent kills the root; draw the next
			// assignment instead.
			cs.buildRoot(nextTasks)
			nextTasks, nextCost, nextOK = c.drawAssignment(nb)
		}
		if cs.open.Len() == 0 {
			return nil
		}

		p := heap.Pop(cs.open).(*highLevelNode)
		c.e.stats.HighLevelExpanded++
		if c.opts.MaxHighLevelExpansions > 0 && c.e.stats.HighLevelExpanded > c.opts.MaxHighLevelExpansions {
			c.e.stats.LimitReached = true
			return nil
		}
		conflict, found := firstConflict(p.plans)
		if !found {
			return solutionFrom(p)
		}
		cs.expand(p, conflict)
	}
}
