package algo

import "github.com/elektrokombinacija/cbsta-grid/internal/core"

// firstConflict returns the earliest conflict in the joint plan. Agents
// parked at their final state keep occupying it. Ties at the same time
// step resolve vertex before edge, then the smaller agent pair, so the
// split is deterministic.
func firstConflict(plans []core.PlanResult) (core.Conflict, bool) {
	maxT := 0
	for i := range plans {
		if t := len(plans[i].States) - 1; t > maxT {
			maxT = t
		}
	}

	for t := 0; t <= maxT; t++ {
		// Vertex collisions.
		for i := 0; i < len(plans); i++ {
			s1 := plans[i].StateAt(t)
			for j := i + 1; j < len(plans); j++ {
				s2 := plans[j].StateAt(t)
				if s1.EqualExceptTime(s2) {
					return core.Conflict{
						Time: t, Agent1: i, Agent2: j,
						Type: core.ConflictVertex,
						X1:   s1.X, Y1: s1.Y,
					}, true
				}
			}
		}
		// Edge swaps between t and t+1.
		if t == maxT {
			break
		}
		for i := 0; i < len(plans); i++ {
			s1a := plans[i].StateAt(t)
			s1b := plans[i].StateAt(t + 1)
			for j := i + 1; j < len(plans); j++ {
				s2a := plans[j].StateAt(t)
				s2b := plans[j].StateAt(t + 1)
				if s1a.EqualExceptTime(s2b) && s1b.EqualExceptTime(s2a) {
					return core.Conflict{
						Time: t, Agent1: i, Agent2: j,
						Type: core.ConflictEdge,
						X1:   s1a.X, Y1: s1a.Y,
						X2:   s1b.X, Y2: s1b.Y,
					}, true
				}
			}
		}
	}
	return core.Conflict{}, false
}

// constraintsFromConflict derives the one-per-agent constraint split: a
// vertex conflict forbids the cell for either agent, an edge conflict
// forbids the edge for the first agent and the reversed edge for the
// second.
func constraintsFromConflict(c core.Conflict) map[int]core.Constraints {
	out := make(map[int]core.Constraints, 2)
	switch c.Type {
	case core.ConflictVertex:
		c1 := core.NewConstraints()
		c1.AddVertex(core.VertexConstraint{Time: c.Time, X: c.X1, Y: c.Y1})
		out[c.Agent1] = c1
		c2 := core.NewConstraints()
		c2.AddVertex(core.VertexConstraint{Time: c.Time, X: c.X1, Y: c.Y1})
		out[c.Agent2] = c2
	case core.ConflictEdge:
		c1 := core.NewConstraints()
		c1.AddEdge(core.EdgeConstraint{Time: c.Time, X1: c.X1, Y1: c.Y1, X2: c.X2, Y2: c.Y2})
		out[c.Agent1] = c1
		c2 := core.NewConstraints()
		c2.AddEdge(core.EdgeConstraint{Time: c.Time, X1: c.X2, Y1: c.Y2, X2: c.X1, Y2: c.Y1})
		out[c.Agent2] = c2
	}
	return out
}
