package main

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomba/internal/monitoring"
	"roomba/internal/sims/roomba"
)

func init() {
	monitoring.SetLogger(nil)
}

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 1, 5,,10 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 10}, got)

	_, err = parseInts("1,x")
	require.Error(t, err)
	_, err = parseInts(" , ")
	require.Error(t, err)
}

func TestBuildJobs(t *testing.T) {
	base := roomba.DefaultConfig()
	jobs, err := buildJobs(base, "1,2", "50,100", 10, 3)
	require.NoError(t, err)
	require.Len(t, jobs, 12)
	assert.Equal(t, 1, jobs[0].cfg.Cleaners)
	assert.Equal(t, 50, jobs[0].cfg.DirtyPercent)
	assert.Equal(t, int64(10), jobs[0].cfg.Seed)
	assert.Equal(t, int64(12), jobs[2].cfg.Seed)
	assert.Equal(t, 2, jobs[11].cfg.Cleaners)
	assert.Equal(t, 100, jobs[11].cfg.DirtyPercent)

	_, err = buildJobs(base, "0", "50", 1, 1)
	require.ErrorIs(t, err, roomba.ErrInvalidConfig)
	_, err = buildJobs(base, "1", "50", 1, 0)
	require.Error(t, err)
}

func TestAggregate(t *testing.T) {
	cfgA := roomba.Config{Cleaners: 2, DirtyPercent: 50}
	cfgB := roomba.Config{Cleaners: 1, DirtyPercent: 100}
	moves := func(n int) []roomba.CleanerMoves { return []roomba.CleanerMoves{{ID: 1000, Moves: n}} }

	rows := aggregate([]result{
		{cfg: cfgA, summary: roomba.Summary{Reason: roomba.ReasonAllClean, Ticks: 10, FinalClean: 100, Moves: moves(4)}},
		{cfg: cfgA, summary: roomba.Summary{Reason: roomba.ReasonTimeLimit, Ticks: 20, FinalClean: 90, Moves: moves(8)}},
		{cfg: cfgA, err: errors.New("boom")},
		{cfg: cfgB, summary: roomba.Summary{Reason: roomba.ReasonAllClean, Ticks: 7, FinalClean: 100, Moves: moves(3)}},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, row{Cleaners: 1, Dirty: 100, Runs: 1, AllClean: 1, MeanClean: 100, MeanTicks: 7, MeanMoves: 3}, rows[0])

	a := rows[1]
	assert.Equal(t, 3, a.Runs)
	assert.Equal(t, 1, a.Failed)
	assert.Equal(t, 1, a.AllClean)
	assert.InDelta(t, 95, a.MeanClean, 1e-9)
	assert.InDelta(t, 15, a.MeanTicks, 1e-9)
	assert.InDelta(t, math.Sqrt(50), a.StdTicks, 1e-9)
	assert.InDelta(t, 6, a.MeanMoves, 1e-9)
}

func TestSweepRunsEveryJob(t *testing.T) {
	base := roomba.Config{Width: 4, Height: 4, TimeLimit: time.Minute}
	jobs, err := buildJobs(base, "1,3", "0,50", 1, 2)
	require.NoError(t, err)

	results := sweep(context.Background(), jobs, 3, nil)
	require.Len(t, results, len(jobs))
	for _, r := range results {
		require.NoError(t, r.err)
		assert.Equal(t, roomba.ReasonAllClean, r.summary.Reason)
		assert.Equal(t, 100.0, r.summary.FinalClean)
	}
}
