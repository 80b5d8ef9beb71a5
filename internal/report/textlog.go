// Package report turns finished runs into human-readable artifacts.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"roomba/internal/sims/roomba"
)

// DefaultLogPath is the shared append-only summary file.
const DefaultLogPath = "data.txt"

// WriteSummary formats one run summary block.
func WriteSummary(w io.Writer, s roomba.Summary) error {
	_, err := fmt.Fprintf(w,
		"Number of Roombas: %d, Starting Clean %%: %d, Time Limit (seconds): %s\n"+
			"Execution Time (%s): %s\n"+
			"Clean %%: %s\n"+
			"Agent Moves: %s\n\n",
		s.Cleaners, s.StartingClean(), formatFloat(s.TimeLimit.Seconds()),
		reasonLabel(s.Reason), formatFloat(s.Elapsed.Seconds()),
		formatFloat(s.FinalClean),
		formatMoves(s.Moves))
	return err
}

// AppendSummary appends one summary block to the file at path.
func AppendSummary(path string, s roomba.Summary) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open summary log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close summary log: %w", cerr)
		}
	}()
	if err := WriteSummary(f, s); err != nil {
		return fmt.Errorf("append summary: %w", err)
	}
	return nil
}

// TextLog appends summaries to a file.
type TextLog struct {
	Path string
}

// Write appends s to the log file.
func (l TextLog) Write(_ context.Context, s roomba.Summary, _ []roomba.Snapshot) error {
	path := l.Path
	if path == "" {
		path = DefaultLogPath
	}
	return AppendSummary(path, s)
}

func reasonLabel(r roomba.StopReason) string {
	switch r {
	case roomba.ReasonTimeLimit:
		return "Time limit reached"
	case roomba.ReasonAllClean:
		return "All Clean"
	default:
		return r.String()
	}
}

func formatMoves(moves []roomba.CleanerMoves) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fmt.Sprintf("(%d, %d)", m.ID, m.Moves)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
