package roomba

import (
	"fmt"

	"roomba/internal/core"
)

// behavior is the per-tick action of one agent kind.
type behavior func(m *Model, a *Agent) error

var behaviors = [numKinds]behavior{
	KindMarker:  markerStep,
	KindCleaner: cleanerStep,
}

// activate dispatches id to its kind's behavior. Ids destroyed earlier in the
// same tick are skipped.
func (m *Model) activate(id core.AgentID) error {
	a, ok := m.pop.Get(id)
	if !ok {
		return nil
	}
	return behaviors[a.Kind](m, a)
}

func markerStep(*Model, *Agent) error { return nil }

// cleanerStep removes every marker sharing the cleaner's cell. A cleaner that
// cleaned spends its turn; otherwise it attempts one random move.
func cleanerStep(m *Model, a *Agent) error {
	pos, ok := m.grid.PositionOf(a.ID)
	if !ok {
		return fmt.Errorf("cleaner %d: %w", a.ID, core.ErrNotPresent)
	}
	cleaned, err := m.clean(pos)
	if err != nil {
		return err
	}
	if cleaned > 0 {
		return nil
	}
	return m.tryMove(a, pos)
}

// clean removes all markers at c from the grid and the population.
func (m *Model) clean(c core.Coord) (int, error) {
	removed := 0
	for _, id := range m.grid.OccupantsAt(c) {
		other, ok := m.pop.Get(id)
		if !ok {
			return removed, fmt.Errorf("occupant %d at %s: %w", id, c, core.ErrNotPresent)
		}
		if other.Kind != KindMarker {
			continue
		}
		if err := m.grid.Remove(id, c); err != nil {
			return removed, err
		}
		if err := m.pop.Remove(id); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// tryMove draws one Moore neighbor. The move is vetoed when another cleaner
// already occupies it; only completed moves are counted.
func (m *Model) tryMove(a *Agent, from core.Coord) error {
	steps := m.grid.Neighborhood(from, true, false)
	if len(steps) == 0 {
		return nil
	}
	to := core.Pick(m.rng, steps)
	if m.hasCleaner(to) {
		return nil
	}
	if err := m.grid.Move(a.ID, from, to); err != nil {
		return err
	}
	a.Moves++
	return nil
}

func (m *Model) hasCleaner(c core.Coord) bool {
	for _, id := range m.grid.OccupantsAt(c) {
		if a, ok := m.pop.Get(id); ok && a.Kind == KindCleaner {
			return true
		}
	}
	return false
}
