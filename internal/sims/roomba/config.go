package roomba

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"roomba/internal/core"
)

// ErrInvalidConfig reports a run configuration that must not start.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the immutable input to one simulation run.
type Config struct {
	Cleaners     int
	Width        int
	Height       int
	DirtyPercent int
	TimeLimit    time.Duration

	Seed int64
}

// DefaultConfig mirrors the defaults of the interactive front-end.
func DefaultConfig() Config {
	return Config{
		Cleaners:     10,
		Width:        10,
		Height:       10,
		DirtyPercent: 50,
		TimeLimit:    30 * time.Second,
		Seed:         42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Cleaners = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["dirty"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.DirtyPercent = parsed
		}
	}
	if v, ok := cfg["time_limit"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.TimeLimit = time.Duration(parsed * float64(time.Second))
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate rejects configurations the simulation cannot run.
func (c Config) Validate() error {
	switch {
	case c.Cleaners < 1:
		return fmt.Errorf("%w: cleaner count %d must be at least 1", ErrInvalidConfig, c.Cleaners)
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: grid %dx%d must be at least 1x1", ErrInvalidConfig, c.Width, c.Height)
	case c.DirtyPercent < 0 || c.DirtyPercent > 100:
		return fmt.Errorf("%w: dirty percent %d outside [0,100]", ErrInvalidConfig, c.DirtyPercent)
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: negative time limit %s", ErrInvalidConfig, c.TimeLimit)
	}
	return nil
}

// Cells returns the number of grid cells.
func (c Config) Cells() int { return c.Width * c.Height }

// DirtyCount is the number of markers seeded at setup.
func (c Config) DirtyCount() int { return c.Cells() * c.DirtyPercent / 100 }

// StartingClean is the clean percentage implied by DirtyPercent.
func (c Config) StartingClean() int { return 100 - c.DirtyPercent }

// Start is the shared cell every cleaner begins on: (1, 1), pulled back onto
// the grid for one-wide dimensions.
func (c Config) Start() core.Coord {
	return core.Coord{X: min(1, c.Width-1), Y: min(1, c.Height-1)}
}

// CleanerIDBase is the first cleaner id. Marker ids occupy [0, DirtyCount).
func (c Config) CleanerIDBase() core.AgentID {
	base := 1000
	for base < c.DirtyCount() {
		base *= 10
	}
	return core.AgentID(base)
}
