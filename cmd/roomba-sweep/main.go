// Command roomba-sweep runs a grid of cleaner counts and dirt levels over
// several seeds and reports aggregate statistics per scenario.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"time"

	"roomba/internal/monitoring"
	"roomba/internal/report"
	"roomba/internal/runner"
	"roomba/internal/sims/roomba"
	"roomba/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	cleaners := flag.String("cleaners", "1,5,10", "comma-separated cleaner counts")
	dirty := flag.String("dirty", "25,50,100", "comma-separated dirty percentages")
	seeds := flag.Int("seeds", 5, "seeds per scenario, starting at -seed")
	firstSeed := flag.Int64("seed", 1, "first seed")
	width := flag.Int("w", 10, "room width")
	height := flag.Int("h", 10, "room height")
	limit := flag.Duration("time-limit", 30*time.Second, "wall-clock limit per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	logPath := flag.String("log", "", "summary log to append every run to")
	storeKind := flag.String("store", "", "persist every run: memory or sqlite")
	dbPath := flag.String("db", "roomba.db", "sqlite database path")
	flag.Parse()

	logger := monitoring.Logger()
	base := roomba.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.TimeLimit = *limit

	jobs, err := buildJobs(base, *cleaners, *dirty, *firstSeed, *seeds)
	if err != nil {
		logger.Error("bad sweep", "err", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var sinks []runner.Sink
	if *logPath != "" {
		sinks = append(sinks, &lockedSink{sink: report.TextLog{Path: *logPath}})
	}
	if *storeKind != "" {
		store, err := storage.NewStore(*storeKind, *dbPath)
		if err != nil {
			logger.Error("cannot open store", "err", err)
			return 1
		}
		if err := store.Init(ctx); err != nil {
			logger.Error("cannot init store", "kind", *storeKind, "err", err)
			return 1
		}
		defer store.Close()
		sinks = append(sinks, storage.Sink{Store: store})
	}

	fmt.Printf("Sweeping %d runs (%d workers)\n", len(jobs), *workers)
	start := time.Now()
	results := sweep(ctx, jobs, max(*workers, 1), sinks)
	rows := aggregate(results)

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("%8s %6s %5s %8s %8s %8s %8s %10s %10s %6s\n",
		"cleaners", "dirty", "runs", "clean", "ticks", "±ticks", "moves", "±moves", "allclean", "fail")
	for _, r := range rows {
		fmt.Printf("%8d %6d %5d %8.2f %8.1f %8.1f %8.1f %10.1f %10d %6d\n",
			r.Cleaners, r.Dirty, r.Runs, r.MeanClean, r.MeanTicks, r.StdTicks, r.MeanMoves, r.StdMoves, r.AllClean, r.Failed)
	}
	for _, r := range results {
		if r.err != nil {
			return 1
		}
	}
	return 0
}

type job struct {
	cfg roomba.Config
}

type result struct {
	cfg     roomba.Config
	summary roomba.Summary
	err     error
}

// sweep runs every job on a fixed pool of workers. Each worker owns its model,
// so no simulation state is shared between goroutines.
func sweep(ctx context.Context, jobs []job, workers int, sinks []runner.Sink) []result {
	jobCh := make(chan job)
	resultCh := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				resultCh <- runJob(ctx, j, sinks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	go func() {
		defer close(jobCh)
		for _, j := range jobs {
			select {
			case jobCh <- j:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []result
	for res := range resultCh {
		if res.err != nil {
			monitoring.Logger().Warn("run failed", "cleaners", res.cfg.Cleaners, "dirty", res.cfg.DirtyPercent, "seed", res.cfg.Seed, "err", res.err)
		}
		all = append(all, res)
	}
	return all
}

func runJob(ctx context.Context, j job, sinks []runner.Sink) result {
	model, err := roomba.New(j.cfg)
	if err != nil {
		return result{cfg: j.cfg, err: err}
	}
	summary, err := (&runner.Runner{Model: model, Sinks: sinks}).Run(ctx)
	return result{cfg: j.cfg, summary: summary, err: err}
}

// lockedSink serialises writes to a sink shared by several workers.
type lockedSink struct {
	mu   sync.Mutex
	sink runner.Sink
}

func (l *lockedSink) Write(ctx context.Context, s roomba.Summary, snaps []roomba.Snapshot) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink.Write(ctx, s, snaps)
}
