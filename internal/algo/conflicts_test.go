package algo

import (
	"testing"

	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

func planFromCells(cells ...[2]int) core.PlanResult {
	p := core.PlanResult{Cost: len(cells) - 1}
	for t, c := range cells {
		p.States = append(p.States, core.PathEntry{
			State:  core.State{Time: t, X: c[0], Y: c[1]},
			GScore: t,
		})
	}
	return p
}

func TestFirstConflictNone(t *testing.T) {
	plans := []core.PlanResult{
		planFromCells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}),
		planFromCells([2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
	}
	if c, found := firstConflict(plans); found {
		t.Errorf("expected no conflict, got %v", c)
	}
}

func TestFirstConflictVertex(t *testing.T) {
	plans := []core.PlanResult{
		planFromCells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}),
		planFromCells([2]int{1, 1}, [2]int{1, 0}, [2]int{1, 2}), // both at (1,0) at t=1
	}
	c, found := firstConflict(plans)
	if !found {
		t.Fatal("expected a vertex conflict")
	}
	if c.Type != core.ConflictVertex || c.Time != 1 || c.X1 != 1 || c.Y1 != 0 {
		t.Errorf("got %v, want vertex conflict at t=1 (1,0)", c)
	}
	if c.Agent1 != 0 || c.Agent2 != 1 {
		t.Errorf("agents (%d,%d), want (0,1)", c.Agent1, c.Agent2)
	}
}

func TestFirstConflictEdge(t *testing.T) {
	plans := []core.PlanResult{
		planFromCells([2]int{0, 0}, [2]int{1, 0}),
		planFromCells([2]int{1, 0}, [2]int{0, 0}),
	}
	c, found := firstConflict(plans)
	if !found {
		t.Fatal("expected an edge conflict")
	}
	if c.Type != core.ConflictEdge || c.Time != 0 {
		t.Errorf("got %v, want edge conflict at t=0", c)
	}
}

func TestFirstConflictParkedAgent(t *testing.T) {
	// Agent 0 arrives and parks; agent 1 passes through the cell later.
	plans := []core.PlanResult{
		planFromCells([2]int{1, 0}, [2]int{1, 1}),
		planFromCells([2]int{3, 1}, [2]int{2, 1}, [2]int{1, 1}, [2]int{0, 1}),
	}
	c, found := firstConflict(plans)
	if !found {
		t.Fatal("expected a conflict with the parked agent")
	}
	if c.Type != core.ConflictVertex || c.Time != 2 || c.X1 != 1 || c.Y1 != 1 {
		t.Errorf("got %v, want vertex conflict at t=2 (1,1)", c)
	}
}

func TestFirstConflictPrefersVertexOnTie(t *testing.T) {
	// At t=1 agents 0/1 share a cell while agents 2/3 swap an edge
	// between t=1 and t=2. The vertex conflict wins the tie.
	plans := []core.PlanResult{
		planFromCells([2]int{0, 0}, [2]int{1, 0}),
		planFromCells([2]int{2, 0}, [2]int{1, 0}),
		planFromCells([2]int{0, 2}, [2]int{0, 2}, [2]int{1, 2}),
		planFromCells([2]int{1, 2}, [2]int{1, 2}, [2]int{0, 2}),
	}
	c, found := firstConflict(plans)
	if !found {
		t.Fatal("expected conflicts")
	}
	if c.Type != core.ConflictVertex || c.Agent1 != 0 || c.Agent2 != 1 {
		t.Errorf("got %v between %d and %d, want the vertex conflict of agents 0 and 1",
			c, c.Agent1, c.Agent2)
	}
}

func TestConstraintsFromVertexConflict(t *testing.T) {
	c := core.Conflict{Time: 3, Agent1: 0, Agent2: 2, Type: core.ConflictVertex, X1: 1, Y1: 2}
	split := constraintsFromConflict(c)
	if len(split) != 2 {
		t.Fatalf("got %d constraint sets, want 2", len(split))
	}
	want := core.VertexConstraint{Time: 3, X: 1, Y: 2}
	for _, agent := range []int{0, 2} {
		if _, ok := split[agent].Vertex[want]; !ok {
			t.Errorf("agent %d missing %v", agent, want)
		}
	}
}

func TestConstraintsFromEdgeConflict(t *testing.T) {
	c := core.Conflict{Time: 2, Agent1: 0, Agent2: 1, Type: core.ConflictEdge, X1: 0, Y1: 0, X2: 1, Y2: 0}
	split := constraintsFromConflict(c)

	fwd := core.EdgeConstraint{Time: 2, X1: 0, Y1: 0, X2: 1, Y2: 0}
	rev := core.EdgeConstraint{Time: 2, X1: 1, Y1: 0, X2: 0, Y2: 0}
	if _, ok := split[0].Edge[fwd]; !ok {
		t.Errorf("agent 0 missing forward edge %v", fwd)
	}
	if _, ok := split[1].Edge[rev]; !ok {
		t.Errorf("agent 1 missing reversed edge %v", rev)
	}
}
