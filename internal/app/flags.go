package app

import (
	"flag"
	"strconv"

	"mad-sand/internal/core"
)

// HUDWidth is the width in pixels of the stats column right of the grid.
const HUDWidth = 220

// ScreenSize returns the window size for a grid drawn at scale pixels per
// cell plus the HUD column.
func ScreenSize(size core.Size, scale int) (int, int) {
	return size.W*scale + HUDWidth, size.H * scale
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width  int
	Height int
	Brush  int
	Edge   string

	HUD bool
}

// NewConfig returns a Config matching a 1200x700 window of 5 px cells.
func NewConfig() *Config {
	return &Config{
		Sim:    "sand",
		Scale:  5,
		TPS:    100,
		Seed:   1,
		Width:  240,
		Height: 140,
		Brush:  5,
		Edge:   "parity",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for color jitter")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Brush, "brush", c.Brush, "brush diameter in cells")
	fs.StringVar(&c.Edge, "edge", c.Edge, "edge policy: parity, legacy or symmetric")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the stats panel on start")
}

// SimConfig converts the flags into the key/value form sim factories read.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"brush": strconv.Itoa(c.Brush),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"edge":  c.Edge,
	}
}
