package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomba/internal/sims/roomba"
)

func fixture() (roomba.Summary, []roomba.Snapshot) {
	moves := []roomba.CleanerMoves{{ID: 1000, Moves: 3}, {ID: 1001, Moves: 5}}
	s := roomba.Summary{
		RunID:        uuid.MustParse("6f1c1b1e-1111-4a4a-8b8b-000000000001"),
		Seed:         42,
		Cleaners:     2,
		Width:        10,
		Height:       10,
		DirtyPercent: 50,
		TimeLimit:    30 * time.Second,
		Reason:       roomba.ReasonAllClean,
		Ticks:        2,
		Elapsed:      1500 * time.Millisecond,
		FinalClean:   100,
		Moves:        moves,
	}
	snaps := []roomba.Snapshot{
		{Tick: 0, PercentClean: 50, PercentDirty: 50},
		{Tick: 1, Elapsed: 750 * time.Millisecond, PercentClean: 80, PercentDirty: 20},
		{Tick: 2, Elapsed: 1500 * time.Millisecond, PercentClean: 100, PercentDirty: 0, Moves: moves},
	}
	return s, snaps
}

func TestWriteSummaryFormat(t *testing.T) {
	s, _ := fixture()
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, s))

	want := "Number of Roombas: 2, Starting Clean %: 50, Time Limit (seconds): 30\n" +
		"Execution Time (All Clean): 1.5\n" +
		"Clean %: 100\n" +
		"Agent Moves: [(1000, 3), (1001, 5)]\n\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSummaryTimeLimitLabel(t *testing.T) {
	s, _ := fixture()
	s.Reason = roomba.ReasonTimeLimit
	s.Moves = nil
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, s))
	assert.Contains(t, buf.String(), "Execution Time (Time limit reached): 1.5\n")
	assert.Contains(t, buf.String(), "Agent Moves: []\n")
}

func TestTextLogAppends(t *testing.T) {
	s, snaps := fixture()
	path := filepath.Join(t.TempDir(), "data.txt")
	sink := TextLog{Path: path}

	require.NoError(t, sink.Write(context.Background(), s, snaps))
	require.NoError(t, sink.Write(context.Background(), s, snaps))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(raw), "Number of Roombas: 2"))
	assert.True(t, strings.HasSuffix(string(raw), "\n\n"))
}

func TestAppendSummaryMissingDir(t *testing.T) {
	s, _ := fixture()
	err := AppendSummary(filepath.Join(t.TempDir(), "missing", "data.txt"), s)
	require.Error(t, err)
}

func TestWriteDashboard(t *testing.T) {
	s, snaps := fixture()
	var buf bytes.Buffer
	require.NoError(t, WriteDashboard(&buf, s, snaps))

	html := buf.String()
	assert.Contains(t, html, "Roomba Room Cleaning Simulation")
	assert.Contains(t, html, "Clean Percent")
	assert.Contains(t, html, "Dirty Percent")
	assert.Contains(t, html, "Agent Moves")
	assert.Contains(t, html, cleanColor)
}

func TestDashboardSinkWritesFile(t *testing.T) {
	s, snaps := fixture()
	path := filepath.Join(t.TempDir(), "run.html")
	require.NoError(t, Dashboard{Path: path}.Write(context.Background(), s, snaps))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWritePlotPNG(t *testing.T) {
	s, snaps := fixture()
	var buf bytes.Buffer
	require.NoError(t, WritePlot(&buf, s, snaps))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "png signature")
}

func TestWritePlotNeedsSnapshots(t *testing.T) {
	s, _ := fixture()
	require.Error(t, WritePlot(&bytes.Buffer{}, s, nil))
}

func TestPlotFileSink(t *testing.T) {
	s, snaps := fixture()
	path := filepath.Join(t.TempDir(), "run.png")
	require.NoError(t, PlotFile{Path: path}.Write(context.Background(), s, snaps))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")))
}
