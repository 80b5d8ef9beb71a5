package roomba

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the controller lifecycle.
type State uint8

const (
	StateNotStarted State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// StopReason is the terminal condition that ended a run.
type StopReason uint8

const (
	ReasonNone StopReason = iota
	ReasonTimeLimit
	ReasonAllClean
	// ReasonAborted marks a run halted by a broken grid or population invariant.
	ReasonAborted
)

func (r StopReason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonTimeLimit:
		return "TimeLimit"
	case ReasonAllClean:
		return "AllClean"
	case ReasonAborted:
		return "Aborted"
	default:
		return fmt.Sprintf("StopReason(%d)", uint8(r))
	}
}

// Summary is emitted once when a run stops.
type Summary struct {
	RunID        uuid.UUID
	Seed         int64
	Cleaners     int
	Width        int
	Height       int
	DirtyPercent int
	TimeLimit    time.Duration

	Reason     StopReason
	Ticks      int
	Elapsed    time.Duration
	FinalClean float64
	Moves      []CleanerMoves
}

// StartingClean is the clean percentage at setup.
func (s Summary) StartingClean() int { return 100 - s.DirtyPercent }

// TotalMoves sums the completed moves of every cleaner.
func (s Summary) TotalMoves() int {
	total := 0
	for _, m := range s.Moves {
		total += m.Moves
	}
	return total
}

// StopHandler receives the run summary when a model stops.
type StopHandler func(Summary)
