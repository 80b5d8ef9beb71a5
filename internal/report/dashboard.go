package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"roomba/internal/sims/roomba"
)

const (
	cleanColor = "#D5D5D5"
	dirtyColor = "#944300"
)

// WriteDashboard renders an HTML page with the clean/dirty history, the
// final clean/dirty split and the per-cleaner move counts.
func WriteDashboard(w io.Writer, s roomba.Summary, snaps []roomba.Snapshot) error {
	page := components.NewPage()
	page.PageTitle = "Roomba Room Cleaning Simulation"
	page.AddCharts(historyChart(s, snaps), splitChart(s), movesChart(s))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

func historyChart(s roomba.Summary, snaps []roomba.Snapshot) *charts.Line {
	ticks := make([]string, len(snaps))
	clean := make([]opts.LineData, len(snaps))
	dirty := make([]opts.LineData, len(snaps))
	for i, snap := range snaps {
		ticks[i] = strconv.Itoa(snap.Tick)
		clean[i] = opts.LineData{Value: snap.PercentClean}
		dirty[i] = opts.LineData{Value: snap.PercentDirty}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Clean vs Dirty",
			Subtitle: fmt.Sprintf("run=%s reason=%s ticks=%d", s.RunID, s.Reason, s.Ticks),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Tick"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%", Min: 0, Max: 100}),
	)
	line.SetXAxis(ticks).
		AddSeries("Clean Percent", clean, charts.WithItemStyleOpts(opts.ItemStyle{Color: cleanColor})).
		AddSeries("Dirty Percent", dirty, charts.WithItemStyleOpts(opts.ItemStyle{Color: dirtyColor}))
	return line
}

func splitChart(s roomba.Summary) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Final State"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("state", []opts.PieData{
		{Name: "Clean Percent", Value: s.FinalClean, ItemStyle: &opts.ItemStyle{Color: cleanColor}},
		{Name: "Dirty Percent", Value: 100 - s.FinalClean, ItemStyle: &opts.ItemStyle{Color: dirtyColor}},
	}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}))
	return pie
}

func movesChart(s roomba.Summary) *charts.Bar {
	ids := make([]string, len(s.Moves))
	moves := make([]opts.BarData, len(s.Moves))
	for i, m := range s.Moves {
		ids[i] = strconv.Itoa(int(m.ID))
		moves[i] = opts.BarData{Value: m.Moves}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Agent Moves", Subtitle: fmt.Sprintf("total=%d", s.TotalMoves())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(ids).AddSeries("moves", moves,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return bar
}

// Dashboard writes the HTML dashboard of each run to Path.
type Dashboard struct {
	Path string
}

// Write renders the dashboard file, replacing any previous one.
func (d Dashboard) Write(_ context.Context, s roomba.Summary, snaps []roomba.Snapshot) (err error) {
	f, err := os.Create(d.Path)
	if err != nil {
		return fmt.Errorf("create dashboard: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return WriteDashboard(f, s, snaps)
}
