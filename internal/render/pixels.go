package render

import (
	"image/color"

	"roomba/internal/core"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillSolidRGBA paints every pixel of buf with col.
func fillSolidRGBA(buf []byte, col color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// circleAt maps a cell and a radius in cell units to screen space. The circle
// is centred on the cell.
func circleAt(pos core.Coord, radius float64, scale int) (cx, cy, r float32) {
	s := float32(max(scale, 1))
	cx = (float32(pos.X) + 0.5) * s
	cy = (float32(pos.Y) + 0.5) * s
	r = float32(radius) * s
	return cx, cy, r
}
