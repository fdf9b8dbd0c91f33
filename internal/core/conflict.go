package core

import "fmt"

// ConflictType distinguishes vertex from edge conflicts.
type ConflictType int

const (
	ConflictVertex ConflictType = iota
	ConflictEdge
)

// Conflict is a collision between two agents: either both occupy
// (X1,Y1) at Time, or they swap across an edge between Time and Time+1.
type Conflict struct {
	Time   int
	Agent1 int
	Agent2 int
	Type   ConflictType

	X1, Y1 int
	X2, Y2 int
}

func (c Conflict) String() string {
	switch c.Type {
	case ConflictVertex:
		return fmt.Sprintf("%d: Vertex(%d,%d)", c.Time, c.X1, c.Y1)
	default:
		return fmt.Sprintf("%d: Edge(%d,%d,%d,%d)", c.Time, c.X1, c.Y1, c.X2, c.Y2)
	}
}
