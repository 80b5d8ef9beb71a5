package roomba

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"roomba/internal/core"
)

// Display buffer values, one per cell.
const (
	CellClean uint8 = iota
	CellDirty
	CellCleaner
	CellCleanerOnDirt
)

var roombaPalette = []color.RGBA{
	CellClean:         {R: 245, G: 245, B: 245, A: 255},
	CellDirty:         {R: 0x94, G: 0x43, B: 0x00, A: 255},
	CellCleaner:       {R: 255, G: 0, B: 0, A: 255},
	CellCleanerOnDirt: {R: 200, G: 40, B: 0, A: 255},
}

// Palette exposes the color palette used for rendering the display buffer.
func (m *Model) Palette() []color.RGBA { return roombaPalette }

// Cells exposes the current display buffer.
func (m *Model) Cells() []uint8 { return m.display }

func (m *Model) rebuildDisplay() {
	clear(m.display)
	m.pop.Each(KindMarker, func(a *Agent) {
		if c, ok := m.grid.PositionOf(a.ID); ok {
			m.display[m.grid.Index(c)] = CellDirty
		}
	})
	m.pop.Each(KindCleaner, func(a *Agent) {
		if c, ok := m.grid.PositionOf(a.ID); ok {
			idx := m.grid.Index(c)
			if m.display[idx] == CellDirty || m.display[idx] == CellCleanerOnDirt {
				m.display[idx] = CellCleanerOnDirt
				return
			}
			m.display[idx] = CellCleaner
		}
	})
}

// Portrayal is the visual descriptor handed to the rendering front-end.
type Portrayal struct {
	Shape  string
	Filled bool
	Layer  int
	Color  string
	Radius float64
}

// PortrayalFor returns the descriptor of an agent kind. Cleaners draw as
// large red circles, markers as small brown dots.
func PortrayalFor(k Kind) Portrayal {
	if k == KindCleaner {
		return Portrayal{Shape: "circle", Filled: true, Layer: 1, Color: "red", Radius: 0.5}
	}
	return Portrayal{Shape: "circle", Filled: true, Layer: 1, Color: "#944300", Radius: 0.2}
}

// RGBA resolves Color to an opaque color. Unknown names resolve to black.
func (p Portrayal) RGBA() color.RGBA {
	if c, err := parseColor(p.Color); err == nil {
		return c
	}
	return color.RGBA{A: 255}
}

var namedColors = map[string]color.RGBA{
	"red":   {R: 255, A: 255},
	"black": {A: 255},
	"white": {R: 255, G: 255, B: 255, A: 255},
}

func parseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("unsupported color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Sprite places a portrayal on a cell.
type Sprite struct {
	ID  core.AgentID
	Pos core.Coord
	Portrayal
}

// Sprites lists every live agent with its portrayal, markers before cleaners
// so cleaners paint on top within the same layer.
func (m *Model) Sprites() []Sprite {
	out := make([]Sprite, 0, m.pop.Len())
	for _, k := range []Kind{KindMarker, KindCleaner} {
		p := PortrayalFor(k)
		m.pop.Each(k, func(a *Agent) {
			if c, ok := m.grid.PositionOf(a.ID); ok {
				out = append(out, Sprite{ID: a.ID, Pos: c, Portrayal: p})
			}
		})
	}
	return out
}
