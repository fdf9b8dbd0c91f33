package algo

import (
	"testing"

	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

func TestCBSTASingleAgent(t *testing.T) {
	inst := mustInstance(t, 3, 3, nil,
		[]core.State{{Time: 0, X: 0, Y: 0}},
		[]core.Location{{X: 2, Y: 2}})

	solver := NewCBSTA(Options{})
	sol := solver.Solve(inst)
	if sol == nil {
		t.Fatal("expected a solution")
	}
	checkSolution(t, inst, sol)
	if sol.Cost != 4 || sol.Makespan != 4 {
		t.Errorf("cost/makespan = %d/%d, want 4/4", sol.Cost, sol.Makespan)
	}
	if len(sol.Plans[0].States) != 5 {
		t.Errorf("path has %d states, want 5", len(sol.Plans[0].States))
	}
	if got := solver.Stats().NumTaskAssignments; got != 1 {
		t.Errorf("numTaskAssignments = %d, want 1", got)
	}
}

func TestCBSTAForcedCorridorSwapFails(t *testing.T) {
	// groupSize 1 pins each agent to its own goal, forcing the
	// head-on crossing in a corridor with no room to yield.
	inst := mustInstance(t, 3, 1, nil,
		[]core.State{{Time: 0, X: 0, Y: 0}, {Time: 0, X: 2, Y: 0}},
		[]core.Location{{X: 2, Y: 0}, {X: 0, Y: 0}})

	solver := NewCBSTA(Options{GroupSize: 1, MaxHighLevelExpansions: 300})
	if sol := solver.Solve(inst); sol != nil {
		t.Fatalf("expected failure, got solution with cost %d", sol.Cost)
	}
	if !solver.Stats().LimitReached {
		t.Error("expected the expansion cap to be reported")
	}
}

func TestCBSTAPicksCheaperAssignment(t *testing.T) {
	// Goals listed crosswise to the starts: the enumerator hands the
	// straight-line pairing to the search first, so no crossing plan
	// is ever needed.
	inst := mustInstance(t, 5, 3, nil,
		[]core.State{{Time: 0, X: 0, Y: 0}, {Time: 0, X: 0, Y: 2}},
		[]core.Location{{X: 4, Y: 2}, {X: 4, Y: 0}})

	solver := NewCBSTA(Options{})
	sol := solver.Solve(inst)
	if sol == nil {
		t.Fatal("expected a solution")
	}
	checkSolution(t, inst, sol)
	if sol.Cost != 8 {
		t.Errorf("cost = %d, want 8", sol.Cost)
	}
	if sol.Tasks[0] != 1 || sol.Tasks[1] != 0 {
		t.Errorf("tasks = %v, want the uncrossed pairing [1 0]", sol.Tasks)
	}
}

func TestCBSTAIdentityAssignmentStaysCheap(t *testing.T) {
	// Same rows as above but goals aligned with the starts: cost is
	// identical and the identity assignment wins.
	inst := mustInstance(t, 5, 3, nil,
		[]core.State{{Time: 0, X: 0, Y: 0}, {Time: 0, X: 0, Y: 2}},
		[]core.Location{{X: 4, Y: 0}, {X: 4, Y: 2}})

	solver := NewCBSTA(Options{})
	sol := solver.Solve(inst)
	if sol == nil {
		t.Fatal("expected a solution")
	}
	checkSolution(t, inst, sol)
	if sol.Cost != 8 {
		t.Errorf("cost = %d, want 8", sol.Cost)
	}
}

func TestCBSTAGroupIsolation(t *testing.T) {
	// Cross-group goals are closer, but agents 0-1 may only take
	// goals 0-1 and agents 2-3 only goals 2-3.
	inst := mustInstance(t, 5, 5, nil,
		[]core.State{
			{Time: 0, X: 0, Y: 0},
			{Time: 0, X: 0, Y: 1},
			{Time: 0, X: 0, Y: 3},
			{Time: 0, X: 0, Y: 4},
		},
		[]core.Location{
			{X: 4, Y: 3}, {X: 4, Y: 4}, // group of agents 0-1
			{X: 4, Y: 0}, {X: 4, Y: 1}, // group of agents 2-3
		})

	solver := NewCBSTA(Options{GroupSize: 2})
	sol := solver.Solve(inst)
	if sol == nil {
		t.Fatal("expected a solution")
	}
	checkSolution(t, inst, sol)
	for agent, task := range sol.Tasks {
		wantLo := agent / 2 * 2
		if task < wantLo || task >= wantLo+2 {
			t.Errorf("agent %d assigned goal %d outside its group [%d,%d)",
				agent, task, wantLo, wantLo+2)
		}
	}
}

func TestCBSTABudgetStopsDraws(t *testing.T) {
	// Goal 1 is sealed off, so every assignment of the first group is
	// discarded at root construction. The budget stops the enumeration
	// after two draws.
	obstacles := []core.Location{{X: 4, Y: 5}, {X: 5, Y: 4}}
	inst := mustInstance(t, 6, 6, obstacles,
		[]core.State{
			{Time: 0, X: 0, Y: 0},
			{Time: 0, X: 1, Y: 0},
			{Time: 0, X: 0, Y: 2},
			{Time: 0, X: 1, Y: 2},
		},
		[]core.Location{
			{X: 3, Y: 0}, {X: 5, Y: 5}, // goal 1 is unreachable
			{X: 3, Y: 2}, {X: 4, Y: 2},
		})

	solver := NewCBSTA(Options{GroupSize: 2, MaxTaskAssignments: 2})
	if sol := solver.Solve(inst); sol != nil {
		t.Fatalf("expected failure, got solution with tasks %v", sol.Tasks)
	}
	stats := solver.Stats()
	if stats.NumTaskAssignments != 2 {
		t.Errorf("numTaskAssignments = %d, want the budget of 2", stats.NumTaskAssignments)
	}
	if !stats.LimitReached {
		t.Error("expected the assignment budget to be reported")
	}
}

func TestCBSTAExhaustsInfeasibleInstance(t *testing.T) {
	// Same map without a budget: all four assignments are drawn and
	// discarded, then the enumerator reports exhaustion.
	obstacles := []core.Location{{X: 4, Y: 5}, {X: 5, Y: 4}}
	inst := mustInstance(t, 6, 6, obstacles,
		[]core.State{
			{Time: 0, X: 0, Y: 0},
			{Time: 0, X: 1, Y: 0},
			{Time: 0, X: 0, Y: 2},
			{Time: 0, X: 1, Y: 2},
		},
		[]core.Location{
			{X: 3, Y: 0}, {X: 5, Y: 5},
			{X: 3, Y: 2}, {X: 4, Y: 2},
		})

	solver := NewCBSTA(Options{GroupSize: 2})
	if sol := solver.Solve(inst); sol != nil {
		t.Fatal("expected failure")
	}
	stats := solver.Stats()
	if stats.NumTaskAssignments != 4 {
		t.Errorf("numTaskAssignments = %d, want all 4 draws", stats.NumTaskAssignments)
	}
	if stats.LimitReached {
		t.Error("exhaustion must not be reported as a budget stop")
	}
}

func TestCBSTADeterministic(t *testing.T) {
	inst := mustInstance(t, 5, 5, []core.Location{{X: 2, Y: 2}},
		[]core.State{
			{Time: 0, X: 0, Y: 0},
			{Time: 0, X: 0, Y: 4},
			{Time: 0, X: 4, Y: 0},
		},
		[]core.Location{
			{X: 4, Y: 4}, {X: 4, Y: 2}, {X: 0, Y: 2},
		})

	first := NewCBSTA(Options{})
	solA := first.Solve(inst)
	if solA == nil {
		t.Fatal("expected a solution")
	}
	checkSolution(t, inst, solA)

	second := NewCBSTA(Options{})
	solB := second.Solve(inst)
	if solB == nil {
		t.Fatal("expected a solution on the rerun")
	}

	if solA.Cost != solB.Cost || solA.Makespan != solB.Makespan {
		t.Errorf("reruns disagree: %d/%d vs %d/%d",
			solA.Cost, solA.Makespan, solB.Cost, solB.Makespan)
	}
	for i := range solA.Tasks {
		if solA.Tasks[i] != solB.Tasks[i] {
			t.Errorf("agent %d task differs across reruns: %d vs %d",
				i, solA.Tasks[i], solB.Tasks[i])
		}
	}
	if first.Stats() != second.Stats() {
		t.Errorf("rerun stats differ: %+v vs %+v", first.Stats(), second.Stats())
	}
}
