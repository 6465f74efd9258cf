//go:build ebiten

package render

import (
	"mad-sand/internal/core"
	"mad-sand/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image of a grid and scales it onto
// the screen.
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

// Blit uploads the grid into the painter image, shades the brush preview
// when brush is non-nil, and draws the result scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, brush *sand.Input, diameter, scale int) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	fillGridRGBA(gp.buf, g.Cells(), Background)
	if brush != nil {
		sand.BrushCells(brush.X, brush.Y, diameter, gp.w, gp.h, func(x, y int) {
			if !g.Cells()[g.Index(x, y)].Occupied {
				shadeRGBA(gp.buf, gp.w, x, y, BrushShade)
			}
		})
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
