package algo

import (
	"testing"

	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

func TestHeuristicOpenGrid(t *testing.T) {
	grid := core.NewGrid(5, 5, nil)
	h := NewShortestPathHeuristic(grid, []core.Location{{X: 4, Y: 4}})

	tests := []struct {
		from core.Location
		want int
	}{
		{core.Location{X: 4, Y: 4}, 0},
		{core.Location{X: 0, Y: 0}, 8},
		{core.Location{X: 4, Y: 0}, 4},
		{core.Location{X: 2, Y: 3}, 3},
	}
	for _, tt := range tests {
		if got := h.Value(tt.from, 0); got != tt.want {
			t.Errorf("Value(%v) = %d, want %d", tt.from, got, tt.want)
		}
	}
}

func TestHeuristicRoutesAroundObstacles(t *testing.T) {
	// Wall at x=1 with a gap at y=2.
	grid := core.NewGrid(3, 3, []core.Location{{X: 1, Y: 0}, {X: 1, Y: 1}})
	h := NewShortestPathHeuristic(grid, []core.Location{{X: 2, Y: 0}})

	// (0,0) must go up through the gap: 2 up, 2 right, 2 down.
	if got := h.Value(core.Location{X: 0, Y: 0}, 0); got != 6 {
		t.Errorf("detour distance = %d, want 6", got)
	}
}

func TestHeuristicUnreachable(t *testing.T) {
	// Goal sealed into the corner.
	grid := core.NewGrid(3, 3, []core.Location{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}})
	h := NewShortestPathHeuristic(grid, []core.Location{{X: 0, Y: 0}})

	if got := h.Value(core.Location{X: 2, Y: 2}, 0); got < Unreachable {
		t.Errorf("sealed goal must be unreachable, got %d", got)
	}
	if got := h.Value(core.Location{X: 0, Y: 0}, 0); got != 0 {
		t.Errorf("goal cell distance = %d, want 0", got)
	}
}

func TestHeuristicConsistency(t *testing.T) {
	grid := core.NewGrid(4, 4, []core.Location{{X: 2, Y: 1}, {X: 2, Y: 2}})
	h := NewShortestPathHeuristic(grid, []core.Location{{X: 3, Y: 3}})

	// |h(a) - h(b)| <= 1 for free neighbors a, b.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			a := core.Location{X: x, Y: y}
			if !grid.Free(a) || h.Value(a, 0) >= Unreachable {
				continue
			}
			for _, b := range []core.Location{{X: x + 1, Y: y}, {X: x, Y: y + 1}} {
				if !grid.Free(b) || h.Value(b, 0) >= Unreachable {
					continue
				}
				d := h.Value(a, 0) - h.Value(b, 0)
				if d < -1 || d > 1 {
					t.Errorf("inconsistent at %v/%v: %d vs %d", a, b, h.Value(a, 0), h.Value(b, 0))
				}
			}
		}
	}
}
