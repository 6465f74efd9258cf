// Package term hosts the sand world in a terminal using tcell. Each text
// cell shows two grid rows with an upper half block: the foreground is the
// top row, the background the bottom row.
package term

import (
	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/sand"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// statusRows is the number of text rows reserved below the grid.
const statusRows = 1

// GridSize returns the largest grid that fits a cols*rows terminal.
func GridSize(cols, rows int) core.Size {
	h := (rows - statusRows) * 2
	if h < 1 {
		h = 1
	}
	if cols < 1 {
		cols = 1
	}
	return core.Size{W: cols, H: h}
}

// ScreenToGrid maps a terminal position to the grid cell under the upper half
// of that text cell.
func ScreenToGrid(x, y int) (int, int) {
	return x, y * 2
}

var (
	backgroundColor = rgb(render.Background.R, render.Background.G, render.Background.B)
	brushColor      = rgb(render.BrushShade.R, render.BrushShade.G, render.BrushShade.B)
)

func rgb(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// cellColor returns the terminal color for the grid cell at index idx.
func cellColor(cells []core.Cell, idx int, shaded []bool) tcell.Color {
	c := cells[idx]
	switch {
	case c.Occupied:
		return rgb(c.Color.R, c.Color.G, c.Color.B)
	case shaded != nil && shaded[idx]:
		return brushColor
	default:
		return backgroundColor
	}
}

// Painter draws a grid onto a tcell screen, reusing its brush mask between
// frames.
type Painter struct {
	shaded []bool
}

// Draw renders g into the top-left corner of s, clipped to the screen. When
// brush is non-nil the empty cells it covers are shaded.
func (p *Painter) Draw(s tcell.Screen, g *core.Grid, brush *sand.Input, diameter int) {
	cells := g.Cells()
	var shaded []bool
	if brush != nil {
		if len(p.shaded) != len(cells) {
			p.shaded = make([]bool, len(cells))
		} else {
			clear(p.shaded)
		}
		shaded = p.shaded
		sand.BrushCells(brush.X, brush.Y, diameter, g.W, g.H, func(x, y int) {
			shaded[g.Index(x, y)] = true
		})
	}

	cols, rows := s.Size()
	for row := 0; row < rows-statusRows && row*2 < g.H; row++ {
		top := row * 2
		for x := 0; x < cols && x < g.W; x++ {
			fg := cellColor(cells, g.Index(x, top), shaded)
			bg := backgroundColor
			if top+1 < g.H {
				bg = cellColor(cells, g.Index(x, top+1), shaded)
			}
			s.SetContent(x, row, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

// DrawStatus writes line on the last terminal row, padding with blanks.
func DrawStatus(s tcell.Screen, line string) {
	cols, rows := s.Size()
	if rows <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(line)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		s.SetContent(x, rows-1, r, nil, style)
	}
}
