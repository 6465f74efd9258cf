//go:build !ebiten

package ui

import (
	"mad-sand/internal/core"
	"mad-sand/internal/sand"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(sand.Input, bool) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
