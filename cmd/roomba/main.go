// Command roomba runs one headless cleaning simulation and reports it.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"roomba/internal/app"
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
	var overrides app.KVList
	flag.Var(&overrides, "set", "config override in key=value form: n, w, h, dirty, time_limit, seed (repeatable)")
	tps := flag.Int("tps", 0, "ticks per second (0 = unpaced)")
	logPath := flag.String("log", report.DefaultLogPath, "summary log to append to (empty disables)")
	htmlPath := flag.String("html", "", "write an HTML dashboard of the run")
	pngPath := flag.String("png", "", "write a PNG plot of the run")
	storeKind := flag.String("store", "", "persist the summary: memory or sqlite")
	dbPath := flag.String("db", "roomba.db", "sqlite database path")
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := monitoring.Logger()
	if err := monitoring.SetLevel(*level); err != nil {
		logger.Fatal("bad log level", "err", err)
	}

	values, err := overrides.Map()
	if err != nil {
		logger.Fatal("bad override", "err", err)
	}
	model, err := roomba.New(roomba.FromMap(values))
	if err != nil {
		logger.Fatal("cannot start run", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &runner.Runner{Model: model, TPS: *tps}
	if *logPath != "" {
		r.Sinks = append(r.Sinks, report.TextLog{Path: *logPath})
	}
	if *htmlPath != "" {
		r.Sinks = append(r.Sinks, report.Dashboard{Path: *htmlPath})
	}
	if *pngPath != "" {
		r.Sinks = append(r.Sinks, report.PlotFile{Path: *pngPath})
	}
	if *storeKind != "" {
		store, err := storage.NewStore(*storeKind, *dbPath)
		if err != nil {
			logger.Fatal("cannot open store", "err", err)
		}
		if err := store.Init(ctx); err != nil {
			logger.Fatal("cannot init store", "kind", *storeKind, "err", err)
		}
		defer store.Close()
		r.Sinks = append(r.Sinks, storage.Sink{Store: store})
	}

	summary, err := r.Run(ctx)
	if err != nil && summary.Reason == roomba.ReasonNone {
		logger.Error("run failed", "err", err)
		return 1
	}
	if werr := report.WriteSummary(os.Stdout, summary); werr != nil {
		logger.Error("print summary", "err", werr)
	}
	if err != nil {
		return 1
	}
	return 0
}
