package roomba

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomba/internal/timeutil"
)

func TestStatusLines(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	cfg := DefaultConfig()
	cfg.TimeLimit = 0
	m, err := New(cfg, WithClock(clock))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"State: NotStarted",
		"Tick: 0",
		"Elapsed: 0.0s / 0s",
		"Clean: 50.0%",
	}, m.StatusLines())

	require.NoError(t, m.Step())
	lines := m.StatusLines()
	assert.Contains(t, lines, "State: Stopped")
	assert.Contains(t, lines, "Stopped: TimeLimit")

	require.True(t, m.SetParameter("n", 3))
	assert.Contains(t, m.StatusLines(), "Reset to apply changes")
}
