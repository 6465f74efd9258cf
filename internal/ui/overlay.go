//go:build ebiten

package ui

import (
	"image/color"

	"mad-sand/internal/core"
	"mad-sand/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional guides on top of the grid: the brush outline and
// the pile surface.
type Overlay struct {
	sim         core.Sim
	scale       int
	showBrush   bool
	showSurface bool

	cursor sand.Input
	inside bool
}

// NewOverlay constructs a new overlay instance with the brush outline on.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, showBrush: true}
}

// Update toggles guides and records the cursor for the next Draw.
func (o *Overlay) Update(cursor sand.Input, inside bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBrush = !o.showBrush
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSurface = !o.showSurface
	}
	o.cursor = cursor
	o.inside = inside
}

// Draw renders the enabled guides onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showSurface {
		o.drawSurface(screen)
	}
	if o.showBrush && o.inside {
		o.drawBrush(screen)
	}
}

func (o *Overlay) drawBrush(screen *ebiten.Image) {
	p, ok := o.sim.(core.Painter)
	if !ok {
		return
	}
	half := p.BrushDiameter() / 2
	s := float32(o.scale)
	x := float32(o.cursor.X-half) * s
	y := float32(o.cursor.Y-half) * s
	side := float32(2*half+1) * s
	col := brushIdle
	if o.cursor.Active {
		col = brushActive
	}
	vector.StrokeRect(screen, x, y, side, side, 1, col, false)
}

func (o *Overlay) drawSurface(screen *ebiten.Image) {
	g := o.sim.Grid()
	if g == nil || g.W < 2 {
		return
	}
	s := float32(o.scale)
	top := sand.Surface(g)
	for x := 1; x < len(top); x++ {
		x0 := (float32(x-1) + 0.5) * s
		x1 := (float32(x) + 0.5) * s
		vector.StrokeLine(screen, x0, float32(top[x-1])*s, x1, float32(top[x])*s, 1, surfaceColor, true)
	}
}

var (
	brushIdle    = color.RGBA{R: 90, G: 90, B: 90, A: 200}
	brushActive  = color.RGBA{R: 255, G: 255, B: 255, A: 220}
	surfaceColor = color.RGBA{R: 200, G: 40, B: 40, A: 220}
)
