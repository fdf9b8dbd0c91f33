package core

import "fmt"

// VertexConstraint forbids one agent from occupying a cell at a time.
type VertexConstraint struct {
	Time int
	X, Y int
}

func (c VertexConstraint) String() string {
	return fmt.Sprintf("VC(%d,%d,%d)", c.Time, c.X, c.Y)
}

// EdgeConstraint forbids one agent from traversing a directed edge,
// leaving (X1,Y1) at Time and arriving at (X2,Y2) at Time+1.
type EdgeConstraint struct {
	Time   int
	X1, Y1 int
	X2, Y2 int
}

func (c EdgeConstraint) String() string {
	return fmt.Sprintf("EC(%d,%d,%d,%d,%d)", c.Time, c.X1, c.Y1, c.X2, c.Y2)
}

// Constraints is one agent's accumulated constraint set.
type Constraints struct {
	Vertex map[VertexConstraint]struct{}
	Edge   map[EdgeConstraint]struct{}
}

// NewConstraints returns an empty constraint set.
func NewConstraints() Constraints {
	return Constraints{
		Vertex: make(map[VertexConstraint]struct{}),
		Edge:   make(map[EdgeConstraint]struct{}),
	}
}

// Clone returns an independent copy.
func (c Constraints) Clone() Constraints {
	out := Constraints{
		Vertex: make(map[VertexConstraint]struct{}, len(c.Vertex)),
		Edge:   make(map[EdgeConstraint]struct{}, len(c.Edge)),
	}
	for vc := range c.Vertex {
		out.Vertex[vc] = struct{}{}
	}
	for ec := range c.Edge {
		out.Edge[ec] = struct{}{}
	}
	return out
}

// Add unions other into c.
func (c Constraints) Add(other Constraints) {
	for vc := range other.Vertex {
		c.Vertex[vc] = struct{}{}
	}
	for ec := range other.Edge {
		c.Edge[ec] = struct{}{}
	}
}

// AddVertex inserts a single vertex constraint.
func (c Constraints) AddVertex(vc VertexConstraint) {
	c.Vertex[vc] = struct{}{}
}

// AddEdge inserts a single edge constraint.
func (c Constraints) AddEdge(ec EdgeConstraint) {
	c.Edge[ec] = struct{}{}
}

// Overlap reports whether the two sets share any constraint.
func (c Constraints) Overlap(other Constraints) bool {
	for vc := range other.Vertex {
		if _, ok := c.Vertex[vc]; ok {
			return true
		}
	}
	for ec := range other.Edge {
		if _, ok := c.Edge[ec]; ok {
			return true
		}
	}
	return false
}

// ForbidsState reports whether s violates a vertex constraint.
func (c Constraints) ForbidsState(s State) bool {
	_, ok := c.Vertex[VertexConstraint{Time: s.Time, X: s.X, Y: s.Y}]
	return ok
}

// ForbidsTransition reports whether the move from s1 to s2 violates an
// edge constraint. s2.Time must be s1.Time+1.
func (c Constraints) ForbidsTransition(s1, s2 State) bool {
	_, ok := c.Edge[EdgeConstraint{Time: s1.Time, X1: s1.X, Y1: s1.Y, X2: s2.X, Y2: s2.Y}]
	return ok
}

// LastGoalConstraint returns the latest vertex constraint time at the
// goal cell, or -1 when none. An agent may only finish at its goal
// strictly after this time.
func (c Constraints) LastGoalConstraint(goal Location) int {
	last := -1
	for vc := range c.Vertex {
		if vc.X == goal.X && vc.Y == goal.Y && vc.Time > last {
			last = vc.Time
		}
	}
	return last
}
