package assign

import (
	"container/heap"
	"sort"
)

// pair is one (agent, task) edge of an assignment.
type pair struct {
	agent, task int
}

// taNode is one subproblem of the Murty partition: the cheapest
// assignment that uses every edge in include and none in exclude.
type taNode struct {
	include []pair
	exclude []pair
	tasks   []int
	cost    int64
	index   int
}

type taHeap []*taNode

func (h taHeap) Len() int { return len(h) }
func (h taHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	// Deterministic tie-break: lexicographic on the canonically ordered
	// (include, exclude) sets, so enumeration order is reproducible.
	if c := comparePairs(h[i].include, h[j].include); c != 0 {
		return c < 0
	}
	return comparePairs(h[i].exclude, h[j].exclude) < 0
}
func (h taHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taHeap) Push(x any) {
	n := x.(*taNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *taHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

func comparePairs(a, b []pair) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].agent != b[i].agent {
			return a[i].agent - b[i].agent
		}
		if a[i].task != b[i].task {
			return a[i].task - b[i].task
		}
	}
	return len(a) - len(b)
}

func sortPairs(ps []pair) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].agent != ps[j].agent {
			return ps[i].agent < ps[j].agent
		}
		return ps[i].task < ps[j].task
	})
}

// NextBest enumerates assignments of agents to tasks in non-decreasing
// cost order via Murty partitioning. Costs default to forbidden; only
// eligible edges are set. Not safe for concurrent use.
type NextBest struct {
	numAgents int
	numTasks  int
	cost      [][]int64
	open      taHeap
	started   bool
}

// NewNextBest creates an enumerator over numAgents × numTasks with all
// edges forbidden until SetCost marks them eligible.
func NewNextBest(numAgents, numTasks int) *NextBest {
	cost := make([][]int64, numAgents)
	for i := range cost {
		cost[i] = make([]int64, numTasks)
		for j := range cost[i] {
			cost[i][j] = infCost
		}
	}
	return &NextBest{numAgents: numAgents, numTasks: numTasks, cost: cost}
}

// SetCost marks the (agent, task) edge eligible with the given cost.
func (nb *NextBest) SetCost(agent, task int, c int64) {
	nb.cost[agent][task] = c
}

// solveConstrained solves the subproblem with forced and forbidden edges.
func (nb *NextBest) solveConstrained(include, exclude []pair) ([]int, int64, bool) {
	m := make([][]int64, nb.numAgents)
	for i := range m {
		m[i] = make([]int64, nb.numTasks)
		copy(m[i], nb.cost[i])
	}
	for _, p := range exclude {
		m[p.agent][p.task] = infCost
	}
	for _, p := range include {
		for j := 0; j < nb.numTasks; j++ {
			if j != p.task {
				m[p.agent][j] = infCost
			}
		}
	}
	return solveJV(m)
}

// NextSolution returns the next cheapest unseen assignment as an
// agent→task vector and its cost. ok is false when the solution space
// is exhausted. Successive calls return non-decreasing costs, and no
// assignment is ever returned twice: partition subproblems are disjoint
// by construction.
func (nb *NextBest) NextSolution() (tasks []int, cost int64, ok bool) {
	if !nb.started {
		nb.started = true
		heap.Init(&nb.open)
		if t, c, feasible := nb.solveConstrained(nil, nil); feasible {
			heap.Push(&nb.open, &taNode{tasks: t, cost: c})
		}
	}
	if nb.open.Len() == 0 {
		return nil, 0, false
	}

	n := heap.Pop(&nb.open).(*taNode)

	// Partition the remaining space around n's assignment: child k
	// forbids the k-th free edge and forces all earlier free edges.
	pinned := make(map[int]bool, len(n.include))
	for _, p := range n.include {
		pinned[p.agent] = true
	}
	var free []pair
	for agent := 0; agent < nb.numAgents; agent++ {
		if !pinned[agent] {
			free = append(free, pair{agent: agent, task: n.tasks[agent]})
		}
	}
	for k := range free {
		exclude := append(append([]pair{}, n.exclude...), free[k])
		include := append(append([]pair{}, n.include...), free[:k]...)
		sortPairs(include)
		sortPairs(exclude)
		if t, c, feasible := nb.solveConstrained(include, exclude); feasible {
			heap.Push(&nb.open, &taNode{include: include, exclude: exclude, tasks: t, cost: c})
		}
	}

	return n.tasks, n.cost, true
}
