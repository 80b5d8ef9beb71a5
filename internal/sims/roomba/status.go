package roomba

import (
	"fmt"
	"time"
)

// StatusLines summarises the run for the HUD.
func (m *Model) StatusLines() []string {
	lines := []string{
		fmt.Sprintf("State: %s", m.state),
		fmt.Sprintf("Tick: %d", m.ticks),
		fmt.Sprintf("Elapsed: %.1fs / %ds", m.Elapsed().Seconds(), int(m.cfg.TimeLimit/time.Second)),
		fmt.Sprintf("Clean: %.1f%%", m.PercentClean()),
	}
	if m.state == StateStopped {
		lines = append(lines, fmt.Sprintf("Stopped: %s", m.reason))
	}
	if m.pending != m.cfg {
		lines = append(lines, "Reset to apply changes")
	}
	return lines
}
