// Package sand implements the falling-sand automaton: gravity, alternating
// diagonal settling and the brush that pours new grains.
package sand

import (
	"mad-sand/internal/core"
	"mad-sand/internal/palette"
)

// Input is the per-frame brush state reported by a frontend, in grid
// coordinates.
type Input struct {
	X, Y   int
	Active bool
}

// World owns a grid together with the color cycle and the polarity flag.
// It is not safe for concurrent use.
type World struct {
	cfg Config

	grid    *core.Grid
	rng     *core.RNG
	palette *palette.Palette

	polarityLeft bool
	ticks        int
	moves        int
	poured       int
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and builds an empty world from it.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	rng := core.NewRNG(cfg.Seed)
	return &World{
		cfg:          cfg,
		grid:         grid,
		rng:          rng,
		palette:      palette.New(cfg.Palette, rng),
		polarityLeft: true,
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Grid exposes the grid for rendering.
func (w *World) Grid() *core.Grid { return w.grid }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// BrushDiameter reports the configured brush size in cells.
func (w *World) BrushDiameter() int { return w.cfg.Brush }

// PolarityLeft reports whether the next tick prefers the left diagonal.
func (w *World) PolarityLeft() bool { return w.polarityLeft }

// Hue reports the color cycle position in degrees.
func (w *World) Hue() float64 { return w.palette.Hue() }

// Ticks reports how many steps have run since the last reset.
func (w *World) Ticks() int { return w.ticks }

// Moves reports how many grains moved during the last step.
func (w *World) Moves() int { return w.moves }

// Poured reports how many grains the brush created since the last reset.
func (w *World) Poured() int { return w.poured }

// Reset empties the grid and restarts the color cycle and jitter sequence.
// A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.grid.Clear()
	w.rng.Reseed(seed)
	w.palette.Reset()
	w.polarityLeft = true
	w.ticks = 0
	w.moves = 0
	w.poured = 0
}

// Paint pours grains under the brush centered on (x, y).
func (w *World) Paint(x, y int) int {
	n := Paint(w.grid, x, y, w.cfg.Brush, w.palette)
	w.poured += n
	return n
}

// Step advances the world by one tick.
func (w *World) Step() {
	w.polarityLeft, w.moves = StepWithPolicy(w.grid, w.polarityLeft, w.cfg.Edge)
	w.ticks++
}

// Advance runs one frame: pour if the brush is active, then settle.
func (w *World) Advance(in Input) int {
	n := 0
	if in.Active {
		n = w.Paint(in.X, in.Y)
	}
	w.Step()
	return n
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
