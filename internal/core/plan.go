package core

// PathEntry pairs a state with the accumulated cost of reaching it.
type PathEntry struct {
	State  State
	GScore int
}

// PlanResult is one agent's time-indexed route.
type PlanResult struct {
	// States from start to goal, one per time step.
	States []PathEntry
	// Actions taken between consecutive states; len(States)-1 entries.
	Actions []Action
	// Cost is the sum of action costs.
	Cost int
	// Fmin is the minimum f value over the open list at goal expansion.
	// With a consistent heuristic it equals Cost and is a tight lower
	// bound on the agent's optimal cost under its constraints.
	Fmin int
}

// StateAt returns the agent's state at time t. Beyond the end of the
// route the agent is parked at its final state.
func (p *PlanResult) StateAt(t int) State {
	if t < len(p.States) {
		return p.States[t].State
	}
	return p.States[len(p.States)-1].State
}

// Solution is a joint plan indexed by agent.
type Solution struct {
	Plans []PlanResult
	// Tasks maps each agent to its assigned goal index.
	Tasks []int
	// Cost is the sum of per-agent costs, Makespan the maximum.
	Cost     int
	Makespan int
}

// ComputeCost refreshes Cost and Makespan from the per-agent plans.
func (s *Solution) ComputeCost() {
	s.Cost = 0
	s.Makespan = 0
	for i := range s.Plans {
		s.Cost += s.Plans[i].Cost
		if s.Plans[i].Cost > s.Makespan {
			s.Makespan = s.Plans[i].Cost
		}
	}
}
