package sand

import (
	"fmt"
	"strconv"

	"mad-sand/internal/core"
	"mad-sand/internal/palette"
)

// Config controls the sand world dimensions and behavior. All values are
// fixed for the lifetime of a World.
type Config struct {
	Width  int
	Height int
	Brush  int

	Seed int64
	Edge EdgePolicy

	Palette palette.Config
}

// DefaultConfig returns a 240x140 world with a 5-cell brush.
func DefaultConfig() Config {
	return Config{
		Width:   240,
		Height:  140,
		Brush:   5,
		Seed:    1,
		Edge:    EdgeParity,
		Palette: palette.DefaultConfig(),
	}
}

// Validate reports configurations the world cannot be built from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("world %dx%d: %w", c.Width, c.Height, core.ErrInvalidConfig)
	}
	if c.Brush <= 0 {
		return fmt.Errorf("brush %d: %w", c.Brush, core.ErrInvalidConfig)
	}
	if int(c.Edge) >= len(edgeNames) {
		return fmt.Errorf("%v: %w", c.Edge, core.ErrInvalidConfig)
	}
	return c.Palette.Validate()
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; range checks are left to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Brush = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["edge"]; ok {
		if parsed, err := ParseEdgePolicy(v); err == nil {
			c.Edge = parsed
		} else {
			c.Edge = EdgePolicy(len(edgeNames))
		}
	}
	c.Palette = palette.FromMap(cfg)
	return c
}
