package core

import "fmt"

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// Cell is a single grid location. The zero value is the empty cell.
// Color is only meaningful while Occupied is set.
type Cell struct {
	Color    RGB
	Occupied bool
}

// Grid stores a fixed-size 2D array of cells in row-major order with y
// growing downward.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrInvalidConfig)
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}, nil
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
// Callers are responsible for staying in bounds.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, fmt.Errorf("get (%d,%d) in %dx%d: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	return g.data[g.Index(x, y)], nil
}

// Set stores c at (x, y).
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d) in %dx%d: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	g.data[g.Index(x, y)] = c
	return nil
}

// Clear resets every cell to the empty value.
func (g *Grid) Clear() {
	clear(g.data)
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < g.H; y++ {
		row := g.data[y*g.W : (y+1)*g.W]
		for x, c := range row {
			fn(x, y, c)
		}
	}
}

// Occupied counts the grains currently on the grid.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.data {
		if c.Occupied {
			n++
		}
	}
	return n
}
