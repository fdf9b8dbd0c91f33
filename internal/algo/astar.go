package algo

import (
	"container/heap"

	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

// llNode is a low-level search node.
type llNode struct {
	state  core.State
	f      int
	g      int
	action core.Action
	parent *llNode
	index  int
}

type llHeap []*llNode

func (h llHeap) Len() int { return len(h) }
func (h llHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	// Prefer deeper nodes on equal f for faster goal expansion.
	return h[i].g > h[j].g
}
func (h llHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *llHeap) Push(x any) {
	n := x.(*llNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *llHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// step enumerates the five actions in a fixed order.
var step = [5]struct {
	action core.Action
	dx, dy int
}{
	{core.Wait, 0, 0},
	{core.Left, -1, 0},
	{core.Right, 1, 0},
	{core.Up, 0, 1},
	{core.Down, 0, -1},
}

// lowLevelPlan runs time-expanded A* for one agent toward goal number
// task under the given constraint set. Stale heap entries are discarded
// at pop time against the best known g per state, so no decrease-key is
// needed; a strictly better g re-pushes the state.
func (e *environment) lowLevelPlan(start core.State, task int, cons core.Constraints) (core.PlanResult, bool) {
	h0 := e.admissibleHeuristic(start, task)
	if h0 >= Unreachable {
		return core.PlanResult{}, false
	}
	lastGoal := cons.LastGoalConstraint(e.goals[task])

	open := &llHeap{}
	heap.Init(open)
	gScore := map[core.State]int{start: 0}
	heap.Push(open, &llNode{state: start, f: h0, g: 0})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*llNode)
		if best, ok := gScore[cur.state]; ok && cur.g > best {
			continue // stale entry
		}
		if e.isSolution(cur.state, task, lastGoal) {
			// With a consistent heuristic the goal's f is the minimum
			// over the open list, so it doubles as the fmin bound.
			return reconstruct(cur), true
		}
		e.stats.LowLevelExpanded++

		for _, st := range step {
			next := core.State{Time: cur.state.Time + 1, X: cur.state.X + st.dx, Y: cur.state.Y + st.dy}
			if !e.stateValid(next, cons) || !e.transitionValid(cur.state, next, cons) {
				continue
			}
			h := e.admissibleHeuristic(next, task)
			if h >= Unreachable {
				continue
			}
			g := cur.g + 1
			if best, seen := gScore[next]; seen && g >= best {
				continue
			}
			gScore[next] = g
			heap.Push(open, &llNode{state: next, f: g + h, g: g, action: st.action, parent: cur})
		}
	}
	return core.PlanResult{}, false
}

func reconstruct(goal *llNode) core.PlanResult {
	var states []core.PathEntry
	var actions []core.Action
	for n := goal; n != nil; n = n.parent {
		states = append(states, core.PathEntry{State: n.state, GScore: n.g})
		if n.parent != nil {
			actions = append(actions, n.action)
		}
	}
	// Reverse into start-to-goal order.
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	return core.PlanResult{States: states, Actions: actions, Cost: goal.g, Fmin: goal.f}
}
