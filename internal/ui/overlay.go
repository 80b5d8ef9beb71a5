//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"roomba/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type cleanlinessProvider interface {
	PercentClean() float64
}

// Overlay draws a clean/dirty bar along the bottom of the room.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, show: true}
}

// Update toggles the bar with key 1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(cleanlinessProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	scale := max(o.scale, 1)
	width := float32(size.W * scale)
	if width <= 0 {
		return
	}
	y := float32(size.H*scale) - barHeight
	clean := cleanFraction(provider.PercentClean())

	vector.DrawFilledRect(screen, 0, y, width*clean, barHeight, cleanBar, false)
	vector.DrawFilledRect(screen, width*clean, y, width*(1-clean), barHeight, dirtyBar, false)
	label := fmt.Sprintf("%.0f%% clean", provider.PercentClean())
	text.Draw(screen, label, basicfont.Face7x13, 4, int(y)-4, color.Black)
}

var (
	cleanBar = color.RGBA{R: 0xD5, G: 0xD5, B: 0xD5, A: 220}
	dirtyBar = color.RGBA{R: 0x94, G: 0x43, B: 0x00, A: 220}
)

const barHeight = 6
