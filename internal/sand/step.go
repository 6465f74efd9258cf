package sand

import (
	"fmt"

	"mad-sand/internal/core"
)

// EdgePolicy selects how grains in the outermost columns settle diagonally.
type EdgePolicy uint8

const (
	// EdgeParity attempts diagonal settling only for grains with x > 0,
	// whichever direction the polarity prefers. A blocked grain in column
	// 0 never slides.
	EdgeParity EdgePolicy = iota
	// EdgeLegacy guards only the left-first branch with x > 0, so a grain in
	// column 0 can still slide right on right-first ticks.
	EdgeLegacy
	// EdgeSymmetric tries each diagonal whenever it is inside the grid.
	EdgeSymmetric
)

var edgeNames = [...]string{
	EdgeParity:    "parity",
	EdgeLegacy:    "legacy",
	EdgeSymmetric: "symmetric",
}

func (p EdgePolicy) String() string {
	if int(p) < len(edgeNames) {
		return edgeNames[p]
	}
	return fmt.Sprintf("EdgePolicy(%d)", uint8(p))
}

// ParseEdgePolicy maps a policy name back to its value.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	for i, name := range edgeNames {
		if name == s {
			return EdgePolicy(i), nil
		}
	}
	return EdgeParity, fmt.Errorf("edge policy %q: %w", s, core.ErrInvalidConfig)
}

// Policies lists every edge policy in declaration order.
func Policies() []EdgePolicy {
	return []EdgePolicy{EdgeParity, EdgeLegacy, EdgeSymmetric}
}

// Step advances g by one tick with the default edge policy and returns the
// polarity to use for the next tick.
func Step(g *core.Grid, polarityLeft bool) bool {
	next, _ := StepWithPolicy(g, polarityLeft, EdgeParity)
	return next
}

// StepWithPolicy advances g by one tick and returns the flipped polarity
// together with the number of grains that moved.
//
// Columns are scanned from the right edge leftwards and, inside a column,
// rows from the second-to-last upwards. The order decides which grain wins
// a contested destination and must not change.
func StepWithPolicy(g *core.Grid, polarityLeft bool, policy EdgePolicy) (bool, int) {
	cells := g.Cells()
	w, h := g.W, g.H
	moves := 0
	for i := w - 1; i >= 0; i-- {
		for j := h - 2; j >= 0; j-- {
			src := j*w + i
			if !cells[src].Occupied {
				continue
			}
			below := src + w
			if !cells[below].Occupied {
				cells[below] = cells[src]
				cells[src] = core.Cell{}
				moves++
				continue
			}
			dst := diagonal(cells, i, below, w, polarityLeft, policy)
			if dst < 0 {
				continue
			}
			cells[dst] = cells[src]
			cells[src] = core.Cell{}
			moves++
		}
	}
	return !polarityLeft, moves
}

// diagonal returns the index of the free diagonal destination for a grain in
// column i whose blocked cell below sits at index below, or -1.
func diagonal(cells []core.Cell, i, below, w int, polarityLeft bool, policy EdgePolicy) int {
	hasLeft := i > 0
	hasRight := i < w-1
	leftFree := hasLeft && !cells[below-1].Occupied
	rightFree := hasRight && !cells[below+1].Occupied

	switch policy {
	case EdgeParity:
		if !hasLeft {
			return -1
		}
	case EdgeLegacy:
		if polarityLeft && !hasLeft {
			return -1
		}
	}

	if polarityLeft {
		if leftFree {
			return below - 1
		}
		if rightFree {
			return below + 1
		}
		return -1
	}
	if rightFree {
		return below + 1
	}
	if leftFree {
		return below - 1
	}
	return -1
}
