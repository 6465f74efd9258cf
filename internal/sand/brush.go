package sand

import "mad-sand/internal/core"

// ColorSource hands out grain colors.
type ColorSource interface {
	Next() core.RGB
}

// BrushCells calls fn for every in-bounds cell covered by a square brush of
// the given diameter centered on (cx, cy) in a w*h grid. The covered span is
// [-diameter/2, diameter/2] on both axes.
func BrushCells(cx, cy, diameter, w, h int, fn func(x, y int)) {
	half := diameter / 2
	for dx := -half; dx <= half; dx++ {
		x := cx + dx
		if x < 0 || x >= w {
			continue
		}
		for dy := -half; dy <= half; dy++ {
			y := cy + dy
			if y < 0 || y >= h {
				continue
			}
			fn(x, y)
		}
	}
}

// Paint stamps a fresh grain onto every empty cell under the brush and
// returns how many grains it created. Existing grains keep their color.
func Paint(g *core.Grid, cx, cy, diameter int, colors ColorSource) int {
	cells := g.Cells()
	stamped := 0
	BrushCells(cx, cy, diameter, g.W, g.H, func(x, y int) {
		idx := g.Index(x, y)
		if cells[idx].Occupied {
			return
		}
		cells[idx] = core.Cell{Color: colors.Next(), Occupied: true}
		stamped++
	})
	return stamped
}
