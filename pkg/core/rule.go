package core

// Rule computes the next state of a single cell from its current state and
// the states of its neighbours. Deterministic rules ignore src.
//
// Implementations must be safe for concurrent use: the simulator evaluates
// many cells of one timestep in parallel, each with its own Source.
type Rule[S State] interface {
	Next(cur S, obs Observation[S], src Source) S
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc[S State] func(cur S, obs Observation[S], src Source) S

// Next calls f(cur, obs, src).
func (f RuleFunc[S]) Next(cur S, obs Observation[S], src Source) S {
	return f(cur, obs, src)
}
