package model

import "io"

// Variant is the rule set a single cell follows.
//
// Implementations are immutable values: Next returns a fresh variant for the
// following generation and never touches the receiver or the neighbors.
type Variant interface {
	// Alive reports whether the cell is currently alive. Border cells are never alive.
	Alive() bool
	// Border reports whether the cell is a sentinel outside the grid bounds.
	Border() bool
	// Next computes the variant occupying this position in the next generation.
	// Neighbors are ordered N, E, S, W, NE, SE, SW, NW.
	Next(neighbors []Variant) (Variant, error)
	// Render writes exactly one character for the current state.
	Render(w io.ByteWriter) error
	// Clone returns an independent copy.
	Clone() Variant
}

// countAlive counts the living, non-border cells in neighbors
func countAlive(neighbors []Variant) (count int) {
	for _, n := range neighbors {
		if n != nil && !n.Border() && n.Alive() {
			count++
		}
	}
	return
}
