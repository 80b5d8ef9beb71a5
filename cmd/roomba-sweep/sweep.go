package main

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"roomba/internal/sims/roomba"
)

func parseInts(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", field, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", list)
	}
	return out, nil
}

// buildJobs expands the cleaner and dirt lists into one validated job per
// (cleaners, dirty, seed) triple.
func buildJobs(base roomba.Config, cleaners, dirty string, firstSeed int64, seeds int) ([]job, error) {
	counts, err := parseInts(cleaners)
	if err != nil {
		return nil, fmt.Errorf("cleaners: %w", err)
	}
	levels, err := parseInts(dirty)
	if err != nil {
		return nil, fmt.Errorf("dirty: %w", err)
	}
	if seeds <= 0 {
		return nil, fmt.Errorf("seeds must be positive, got %d", seeds)
	}
	var jobs []job
	for _, n := range counts {
		for _, d := range levels {
			for s := 0; s < seeds; s++ {
				cfg := base
				cfg.Cleaners = n
				cfg.DirtyPercent = d
				cfg.Seed = firstSeed + int64(s)
				if err := cfg.Validate(); err != nil {
					return nil, err
				}
				jobs = append(jobs, job{cfg: cfg})
			}
		}
	}
	return jobs, nil
}

type scenario struct {
	cleaners, dirty int
}

type row struct {
	Cleaners  int
	Dirty     int
	Runs      int
	Failed    int
	AllClean  int
	MeanClean float64
	MeanTicks float64
	StdTicks  float64
	MeanMoves float64
	StdMoves  float64
}

// aggregate groups finished runs by scenario, ordered by cleaners then dirt.
// Failed runs are counted but excluded from the statistics.
func aggregate(results []result) []row {
	type samples struct {
		clean, ticks, moves []float64
		failed, allClean    int
	}
	groups := map[scenario]*samples{}
	for _, r := range results {
		key := scenario{cleaners: r.cfg.Cleaners, dirty: r.cfg.DirtyPercent}
		g, ok := groups[key]
		if !ok {
			g = &samples{}
			groups[key] = g
		}
		if r.err != nil {
			g.failed++
			continue
		}
		if r.summary.Reason == roomba.ReasonAllClean {
			g.allClean++
		}
		g.clean = append(g.clean, r.summary.FinalClean)
		g.ticks = append(g.ticks, float64(r.summary.Ticks))
		g.moves = append(g.moves, float64(r.summary.TotalMoves()))
	}

	rows := make([]row, 0, len(groups))
	for key, g := range groups {
		rows = append(rows, row{
			Cleaners:  key.cleaners,
			Dirty:     key.dirty,
			Runs:      len(g.ticks) + g.failed,
			Failed:    g.failed,
			AllClean:  g.allClean,
			MeanClean: mean(g.clean),
			MeanTicks: mean(g.ticks),
			StdTicks:  stdDev(g.ticks),
			MeanMoves: mean(g.moves),
			StdMoves:  stdDev(g.moves),
		})
	}
	slices.SortFunc(rows, func(a, b row) int {
		return cmp.Or(cmp.Compare(a.Cleaners, b.Cleaners), cmp.Compare(a.Dirty, b.Dirty))
	})
	return rows
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
