package core

import (
	"errors"
	"testing"
)

func TestNewInstanceValid(t *testing.T) {
	grid := NewGrid(3, 3, []Location{{X: 1, Y: 1}})
	inst, err := NewInstance(grid,
		[]State{{Time: 0, X: 0, Y: 0}, {Time: 0, X: 2, Y: 2}},
		[]Location{{X: 2, Y: 0}, {X: 0, Y: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.NumAgents() != 2 {
		t.Errorf("NumAgents = %d, want 2", inst.NumAgents())
	}
}

func TestNewInstanceRejectsBadInput(t *testing.T) {
	grid := NewGrid(3, 3, []Location{{X: 1, Y: 1}})
	start := State{Time: 0, X: 0, Y: 0}
	goal := Location{X: 2, Y: 2}

	tests := []struct {
		name   string
		grid   Grid
		starts []State
		goals  []Location
		want   error
	}{
		{"zero dimensions", NewGrid(0, 3, nil), []State{start}, []Location{goal}, ErrDimensions},
		{"start out of bounds", grid, []State{{Time: 0, X: 3, Y: 0}}, []Location{goal}, ErrOutOfBounds},
		{"goal out of bounds", grid, []State{start}, []Location{{X: 0, Y: -1}}, ErrOutOfBounds},
		{"start on obstacle", grid, []State{{Time: 0, X: 1, Y: 1}}, []Location{goal}, ErrBlockedCell},
		{"goal on obstacle", grid, []State{start}, []Location{{X: 1, Y: 1}}, ErrBlockedCell},
		{"duplicate starts", grid, []State{start, {Time: 0, X: 0, Y: 0}}, []Location{goal, {X: 0, Y: 2}}, ErrDuplicateStart},
		{"too few goals", grid, []State{start, {Time: 0, X: 2, Y: 0}}, []Location{goal}, ErrGoalPool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInstance(tt.grid, tt.starts, tt.goals)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
