//go:build ebiten

package main

import (
	"errors"
	"flag"

	"roomba/internal/app"
	"roomba/internal/monitoring"
	"roomba/internal/report"
	"roomba/internal/sims/roomba"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var overrides app.KVList
	flag.Var(&overrides, "set", "initial config override in key=value form (repeatable)")
	logPath := flag.String("log", report.DefaultLogPath, "summary log to append to (empty disables)")
	flag.Parse()

	logger := monitoring.Logger()
	values, err := overrides.Map()
	if err != nil {
		logger.Fatal("bad override", "err", err)
	}
	simCfg := roomba.FromMap(values)
	if _, ok := values["seed"]; !ok {
		simCfg.Seed = cfg.Seed
	}
	model, err := roomba.New(simCfg)
	if err != nil {
		logger.Fatal("cannot start run", "err", err)
	}
	if *logPath != "" {
		model.OnStop(func(s roomba.Summary) {
			if err := report.AppendSummary(*logPath, s); err != nil {
				logger.Error("append summary", "path", *logPath, "err", err)
			}
		})
	}

	game := app.New(model, cfg)
	w, h := app.WindowSize(model.Size(), cfg.Scale, cfg.HUDWidth)

	ebiten.SetWindowTitle("Roomba Room Cleaning Simulation")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop", "err", err)
	}
}
