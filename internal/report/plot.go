package report

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"roomba/internal/sims/roomba"
)

var (
	cleanLine = color.RGBA{R: 0x7a, G: 0x7a, B: 0x7a, A: 255}
	dirtyLine = color.RGBA{R: 0x94, G: 0x43, B: 0x00, A: 255}
)

// WritePlot renders clean and dirty percentages over elapsed seconds as PNG.
func WritePlot(w io.Writer, s roomba.Summary, snaps []roomba.Snapshot) error {
	if len(snaps) == 0 {
		return errors.New("plot: no snapshots")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Roombas=%d %dx%d (%s)", s.Cleaners, s.Width, s.Height, s.Reason)
	p.X.Label.Text = "Elapsed (s)"
	p.Y.Label.Text = "%"
	p.Y.Min = 0
	p.Y.Max = 100

	clean := make(plotter.XYs, len(snaps))
	dirty := make(plotter.XYs, len(snaps))
	for i, snap := range snaps {
		clean[i] = plotter.XY{X: snap.ElapsedSeconds(), Y: snap.PercentClean}
		dirty[i] = plotter.XY{X: snap.ElapsedSeconds(), Y: snap.PercentDirty}
	}

	cleanPlot, err := plotter.NewLine(clean)
	if err != nil {
		return fmt.Errorf("clean line: %w", err)
	}
	cleanPlot.Color = cleanLine
	cleanPlot.Width = vg.Points(1)

	dirtyPlot, err := plotter.NewLine(dirty)
	if err != nil {
		return fmt.Errorf("dirty line: %w", err)
	}
	dirtyPlot.Color = dirtyLine
	dirtyPlot.Width = vg.Points(1)

	p.Add(cleanPlot, dirtyPlot)
	p.Legend.Add("Clean Percent", cleanPlot)
	p.Legend.Add("Dirty Percent", dirtyPlot)

	wt, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("plot writer: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// PlotFile writes the PNG plot of each run to Path.
type PlotFile struct {
	Path string
}

// Write renders the plot file, replacing any previous one.
func (p PlotFile) Write(_ context.Context, s roomba.Summary, snaps []roomba.Snapshot) (err error) {
	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return WritePlot(f, s, snaps)
}
