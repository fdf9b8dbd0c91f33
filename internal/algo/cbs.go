package algo

import (
	"container/heap"

	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

// highLevelNode is a node of the constraint tree. cost is the sum of
// per-agent plan costs, lb the sum of per-agent fmin bounds. Nodes live
// only in the open list or the current expansion.
type highLevelNode struct {
	plans       []core.PlanResult
	constraints []core.Constraints
	tasks       []int
	cost        int
	lb          int
	id          int
	index       int
}

type hlHeap []*highLevelNode

func (h hlHeap) Len() int { return len(h) }
func (h hlHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	// FIFO over equal-cost nodes via the monotonic id.
	return h[i].id < h[j].id
}
func (h hlHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *hlHeap) Push(x any) {
	n := x.(*highLevelNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *hlHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// cbsSearch is the high-level machinery shared by CBS and CBS-TA.
type cbsSearch struct {
	e      *environment
	opts   Options
	open   *hlHeap
	nextID int
}

func newCBSSearch(e *environment, opts Options) *cbsSearch {
	open := &hlHeap{}
	heap.Init(open)
	return &cbsSearch{e: e, opts: opts, open: open}
}

// buildRoot plans every agent under an empty constraint set for the
// given assignment. A single unplannable agent kills the root.
func (cs *cbsSearch) buildRoot(tasks []int) (*highLevelNode, bool) {
	n := &highLevelNode{
		plans:       make([]core.PlanResult, len(cs.e.starts)),
		constraints: make([]core.Constraints, len(cs.e.starts)),
		tasks:       tasks,
		id:          cs.nextID,
	}
	for i := range cs.e.starts {
		n.constraints[i] = core.NewConstraints()
		plan, ok := cs.e.lowLevelPlan(cs.e.starts[i], tasks[i], n.constraints[i])
		if !ok {
			return nil, false
		}
		n.plans[i] = plan
		n.cost += plan.Cost
		n.lb += plan.Fmin
	}
	cs.nextID++
	heap.Push(cs.open, n)
	return n, true
}

// expand splits p on its first conflict into two children, each with
// one extra constraint on one agent, replanning only that agent. A
// child whose agent has no path left is pruned.
func (cs *cbsSearch) expand(p *highLevelNode, conflict core.Conflict) {
	split := constraintsFromConflict(conflict)
	for _, agent := range [2]int{conflict.Agent1, conflict.Agent2} {
		added := split[agent]
		if p.constraints[agent].Overlap(added) {
			// A child may never repeat a constraint of its ancestors.
			panic("algo: conflict constraint already present in parent")
		}
		child := &highLevelNode{
			plans:       append([]core.PlanResult{}, p.plans...),
			constraints: append([]core.Constraints{}, p.constraints...),
			tasks:       p.tasks,
			id:          cs.nextID,
		}
		child.constraints[agent] = p.constraints[agent].Clone()
		child.constraints[agent].Add(added)

		plan, ok := cs.e.lowLevelPlan(cs.e.starts[agent], p.tasks[agent], child.constraints[agent])
		if !ok {
			continue
		}
		child.plans[agent] = plan
		for i := range child.plans {
			child.cost += child.plans[i].Cost
			child.lb += child.plans[i].Fmin
		}
		cs.nextID++
		heap.Push(cs.open, child)
	}
}

func solutionFrom(n *highLevelNode) *core.Solution {
	sol := &core.Solution{Plans: n.plans, Tasks: n.tasks}
	sol.ComputeCost()
	return sol
}

// CBS implements plain Conflict-Based Search with the fixed identity
// assignment: agent i routes to goal i.
type CBS struct {
	opts Options
	e    *environment
}

// NewCBS creates a CBS solver.
func NewCBS(opts Options) *CBS {
	return &CBS{opts: opts}
}

func (c *CBS) Name() string { return "CBS" }

// Stats returns counters from the last Solve call.
func (c *CBS) Stats() Stats {
	if c.e == nil {
		return Stats{}
	}
	return c.e.stats
}

// Solve runs the constraint-tree search. Returns nil if the instance
// has no solution within the expansion budget.
func (c *CBS) Solve(inst *core.Instance) *core.Solution {
	c.e = newEnvironment(inst)
	cs := newCBSSearch(c.e, c.opts)

	tasks := make([]int, len(inst.Starts))
	for i := range tasks {
		tasks[i] = i
	}
	c.e.stats.NumTaskAssignments = 1
	if _, ok := cs.buildRoot(tasks); !ok {
		return nil
	}

	for cs.open.Len() > 0 {
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
	return nil
}
