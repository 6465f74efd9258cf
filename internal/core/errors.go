package core

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidConfig reports non-positive dimensions or brush sizes.
	ErrInvalidConfig = errors.New("invalid configuration")
)
