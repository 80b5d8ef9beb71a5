// Package runner drives a simulation from a headless process.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomba/internal/core"
	"roomba/internal/monitoring"
	"roomba/internal/sims/roomba"
	"roomba/internal/timeutil"
)

// Sink receives the summary of a finished run. Sinks run after the model
// stopped, so a failing sink never touches collected metrics.
type Sink interface {
	Write(ctx context.Context, s roomba.Summary, snaps []roomba.Snapshot) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, s roomba.Summary, snaps []roomba.Snapshot) error

// Write calls f.
func (f SinkFunc) Write(ctx context.Context, s roomba.Summary, snaps []roomba.Snapshot) error {
	return f(ctx, s, snaps)
}

// Runner advances a model until it stops or the context is cancelled.
type Runner struct {
	Model *roomba.Model
	// TPS paces ticks; zero runs as fast as possible.
	TPS   int
	Clock timeutil.Clock
	Sinks []Sink
}

// Run steps the model to completion and hands the summary to every sink.
// Sink errors are joined and returned alongside the summary.
func (r *Runner) Run(ctx context.Context) (roomba.Summary, error) {
	if r.Model == nil {
		return roomba.Summary{}, errors.New("runner: nil model")
	}
	pacer := core.NewFixedStep(r.Clock, r.TPS)
	wait := pacer.Interval() / 4

	for r.Model.Running() {
		if err := ctx.Err(); err != nil {
			return roomba.Summary{}, err
		}
		if !pacer.ShouldStep() {
			sleep(ctx, wait)
			continue
		}
		if err := r.Model.Step(); err != nil {
			return roomba.Summary{}, fmt.Errorf("run aborted: %w", err)
		}
	}

	summary, _ := r.Model.Summary()
	snaps := r.Model.Metrics().Snapshots()
	var errs []error
	for _, sink := range r.Sinks {
		if err := sink.Write(ctx, summary, snaps); err != nil {
			monitoring.Logger().Error("summary sink failed", "run", summary.RunID, "err", err)
			errs = append(errs, err)
		}
	}
	return summary, errors.Join(errs...)
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
