// Package palette generates grain colors from a slowly drifting hue cycle
// with per-grain brightness jitter.
package palette

import (
	"fmt"
	"math"
	"strconv"

	"mad-sand/internal/core"

	"github.com/lucasb-eyer/go-colorful"
)

// Source supplies uniformly distributed integers in [0, n). *rand.Rand and
// *core.RNG both satisfy it.
type Source interface {
	IntN(n int) int
}

// Config holds the tunables of the color cycle.
type Config struct {
	HueStep    float64
	Saturation float64
	Value      float64
	Jitter     int
}

// DefaultConfig returns the standard sand look.
func DefaultConfig() Config {
	return Config{HueStep: 0.01, Saturation: 0.8, Value: 0.9, Jitter: 15}
}

// Validate reports settings that cannot produce colors.
func (c Config) Validate() error {
	if c.HueStep < 0 || c.HueStep > 360 {
		return fmt.Errorf("hue step %v: %w", c.HueStep, core.ErrInvalidConfig)
	}
	if c.Saturation < 0 || c.Saturation > 1 || c.Value < 0 || c.Value > 1 {
		return fmt.Errorf("saturation %v value %v: %w", c.Saturation, c.Value, core.ErrInvalidConfig)
	}
	if c.Jitter < 0 || c.Jitter > 255 {
		return fmt.Errorf("jitter %d: %w", c.Jitter, core.ErrInvalidConfig)
	}
	return nil
}

// FromMap overrides defaults with flag-style key/value pairs.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["hue_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.HueStep = parsed
		}
	}
	if v, ok := cfg["saturation"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Saturation = parsed
		}
	}
	if v, ok := cfg["value"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Value = parsed
		}
	}
	if v, ok := cfg["jitter"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Jitter = parsed
		}
	}
	return c
}

// Palette is the grain color generator. Its hue accumulator is the only
// state carried between calls.
type Palette struct {
	cfg Config
	src Source
	hue float64
}

// New returns a palette starting at hue 0 that draws jitter from src.
func New(cfg Config, src Source) *Palette {
	return &Palette{cfg: cfg, src: src}
}

// Hue reports the current accumulator in degrees.
func (p *Palette) Hue() float64 { return p.hue }

// Reset rewinds the hue cycle to 0.
func (p *Palette) Reset() { p.hue = 0 }

// Next advances the hue and returns the next grain color.
func (p *Palette) Next() core.RGB {
	p.hue += p.cfg.HueStep
	if p.hue > 360 {
		p.hue = 0
	}
	base := HSV(p.hue, p.cfg.Saturation, p.cfg.Value)

	j := 0
	if p.cfg.Jitter > 0 && p.src != nil {
		j = p.src.IntN(2*p.cfg.Jitter+1) - p.cfg.Jitter
	}
	return core.RGB{
		R: clampChannel(int(base.R) + j),
		G: clampChannel(int(base.G) + j),
		B: clampChannel(int(base.B) + j),
	}
}

// HSV converts a hue in degrees plus saturation and value in [0,1] to RGB.
// Channels are truncated, not rounded.
func HSV(h, s, v float64) core.RGB {
	c := colorful.Hsv(math.Mod(h, 360), s, v)
	return core.RGB{
		R: truncChannel(c.R),
		G: truncChannel(c.G),
		B: truncChannel(c.B),
	}
}

func truncChannel(f float64) uint8 {
	return clampChannel(int(f * 255))
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
