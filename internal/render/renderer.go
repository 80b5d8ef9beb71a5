//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"roomba/internal/sims/roomba"
)

// GridPainter updates a single RGBA image from the display buffer and draws
// agent sprites on top of it.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// BlitPalette uploads cells through palette and draws the image scaled.
func (gp *GridPainter) BlitPalette(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.draw(dst, scale)
}

// BlitFloor paints an empty floor.
func (gp *GridPainter) BlitFloor(dst *ebiten.Image, floor color.RGBA, scale int) {
	fillSolidRGBA(gp.buf, floor)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawSprites paints every sprite as a circle in layer order.
func (gp *GridPainter) DrawSprites(dst *ebiten.Image, sprites []roomba.Sprite, scale int) {
	for layer := 0; layer <= maxLayer(sprites); layer++ {
		for _, sp := range sprites {
			if sp.Layer != layer {
				continue
			}
			cx, cy, r := circleAt(sp.Pos, sp.Radius, scale)
			if sp.Filled {
				vector.DrawFilledCircle(dst, cx, cy, r, sp.RGBA(), true)
				continue
			}
			vector.StrokeCircle(dst, cx, cy, r, 1, sp.RGBA(), true)
		}
	}
}

func maxLayer(sprites []roomba.Sprite) int {
	top := 0
	for _, sp := range sprites {
		top = max(top, sp.Layer)
	}
	return top
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
