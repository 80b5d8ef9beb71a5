package roomba

import "roomba/internal/core"

// RandomActivation activates every agent that is live at the start of a tick
// exactly once, in a freshly shuffled order.
type RandomActivation struct {
	rng   *core.RNG
	order []core.AgentID
	steps int
}

// NewRandomActivation creates a scheduler drawing its orderings from rng.
func NewRandomActivation(rng *core.RNG) *RandomActivation {
	return &RandomActivation{rng: rng}
}

// Step snapshots the live ids, shuffles them and calls activate for each.
// Agents destroyed earlier in the same pass are still handed to activate;
// it decides what a stale id means. The first error ends the pass.
func (s *RandomActivation) Step(pop *Population, activate func(core.AgentID) error) error {
	s.order = pop.AppendIDs(s.order[:0])
	core.Shuffle(s.rng, s.order)
	for _, id := range s.order {
		if err := activate(id); err != nil {
			return err
		}
	}
	s.steps++
	return nil
}

// Steps returns the number of completed passes.
func (s *RandomActivation) Steps() int { return s.steps }

// LastOrder returns the activation order of the most recent pass.
func (s *RandomActivation) LastOrder() []core.AgentID { return s.order }
