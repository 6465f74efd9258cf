package render

import (
	"image/color"

	"mad-sand/internal/core"
)

var (
	// Background is drawn for every empty cell.
	Background = color.RGBA{R: 37, G: 217, B: 230, A: 255}
	// BrushShade marks cells under the brush preview.
	BrushShade = color.RGBA{R: 192, G: 192, B: 192, A: 255}
)

// fillGridRGBA converts grid cells into RGBA pixels in buf, one pixel per
// cell. Grains use their own color; everything else gets bg.
func fillGridRGBA(buf []byte, cells []core.Cell, bg color.RGBA) {
	for i, c := range cells {
		base := i * 4
		if c.Occupied {
			buf[base+0] = c.Color.R
			buf[base+1] = c.Color.G
			buf[base+2] = c.Color.B
			buf[base+3] = 255
			continue
		}
		buf[base+0] = bg.R
		buf[base+1] = bg.G
		buf[base+2] = bg.B
		buf[base+3] = bg.A
	}
}

// shadeRGBA paints the pixel for cell (x, y) of a w-wide buffer with col.
func shadeRGBA(buf []byte, w, x, y int, col color.RGBA) {
	base := (y*w + x) * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
