package app

import (
	"flag"
	"fmt"
	"strings"

	"roomba/internal/core"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits every entry on the first '='. Later entries win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q: want key=value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// Config represents the command-line parameters for the GUI.
type Config struct {
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	Paused   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 48, TPS: 10, Seed: 42, HUDWidth: 280}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "model ticks per second (0 = every frame)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first run and R resets")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the control panel in pixels")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// WindowSize returns the screen size for a grid drawn at scale next to a
// control panel of hudWidth pixels.
func WindowSize(size core.Size, scale, hudWidth int) (int, int) {
	scale = max(scale, 1)
	return size.W*scale + max(hudWidth, 0), max(size.H*scale, minHeight(hudWidth))
}

func minHeight(hudWidth int) int {
	if hudWidth <= 0 {
		return 0
	}
	return 360
}
