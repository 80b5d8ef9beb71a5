package roomba

import (
	"slices"
	"time"

	"roomba/internal/core"
)

// CleanerMoves pairs a cleaner id with its completed move count.
type CleanerMoves struct {
	ID    core.AgentID
	Moves int
}

// Snapshot is the metrics record of one tick.
type Snapshot struct {
	Tick         int
	Elapsed      time.Duration
	PercentClean float64
	PercentDirty float64
	Moves        []CleanerMoves
}

// ElapsedSeconds returns Elapsed as fractional seconds.
func (s Snapshot) ElapsedSeconds() float64 { return s.Elapsed.Seconds() }

// PercentClean computes the share of cells without a marker. The result is
// not clamped; a marker count above w*h is a configuration precondition.
func PercentClean(markers, w, h int) float64 {
	return 100 - float64(markers)/float64(w*h)*100
}

// Collector keeps the ordered, append-only snapshot history of a run.
type Collector struct {
	snaps []Snapshot
}

// Collect appends s.
func (c *Collector) Collect(s Snapshot) { c.snaps = append(c.snaps, s) }

// Len returns the number of snapshots.
func (c *Collector) Len() int { return len(c.snaps) }

// Snapshots returns a copy of the history.
func (c *Collector) Snapshots() []Snapshot { return slices.Clone(c.snaps) }

// Last returns the most recent snapshot, authoritative at stop time.
func (c *Collector) Last() (Snapshot, bool) {
	if len(c.snaps) == 0 {
		return Snapshot{}, false
	}
	return c.snaps[len(c.snaps)-1], true
}

func (m *Model) snapshot() Snapshot {
	clean := PercentClean(m.pop.Count(KindMarker), m.cfg.Width, m.cfg.Height)
	moves := make([]CleanerMoves, 0, m.pop.Count(KindCleaner))
	m.pop.Each(KindCleaner, func(a *Agent) {
		moves = append(moves, CleanerMoves{ID: a.ID, Moves: a.Moves})
	})
	slices.SortFunc(moves, func(a, b CleanerMoves) int { return int(a.ID - b.ID) })
	return Snapshot{
		Tick:         m.ticks,
		Elapsed:      m.Elapsed(),
		PercentClean: clean,
		PercentDirty: 100 - clean,
		Moves:        moves,
	}
}
