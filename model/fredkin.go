package model

import (
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	fredkinDead      = '-'
	fredkinSaturated = '+'

	// SaturatedAge is the first age that no longer fits in a single digit
	SaturatedAge = 10

	// orthogonalNeighbors is how many leading neighbors (N, E, S, W) the Fredkin rule reads
	orthogonalNeighbors = 4
)

// FredkinCell follows the parity rule over its orthogonal neighbors and ages while it survives
type FredkinCell struct {
	alive  bool
	age    int
	border bool
}

// NewFredkinCell builds a Fredkin cell from its input character.
//
// '-' is a dead cell of age 0, a digit is a living cell of that age and any other
// printable symbol is a living cell of saturated age. Whitespace, control and
// non-ASCII bytes are rejected.
func NewFredkinCell(ch byte) (FredkinCell, error) {
	switch {
	case ch == fredkinDead:
		return FredkinCell{}, nil
	case ch >= '0' && ch <= '9':
		return FredkinCell{alive: true, age: int(ch - '0')}, nil
	case ch > ' ' && ch < 0x7f:
		return FredkinCell{alive: true, age: SaturatedAge}, nil
	}
	return FredkinCell{}, errors.Wrapf(ErrInvalidCell, "[NewFredkinCell] %q", ch)
}

// NewFredkinCellAged builds a Fredkin cell from an explicit age and liveness
func NewFredkinCellAged(age int, alive bool) (FredkinCell, error) {
	if age < 0 {
		return FredkinCell{}, errors.Wrapf(ErrInvalidAge, "[NewFredkinCellAged] %d", age)
	}
	return FredkinCell{alive: alive, age: age}, nil
}

// NewFredkinBorder returns a border sentinel that never counts as alive
func NewFredkinBorder() FredkinCell {
	return FredkinCell{border: true}
}

func (f FredkinCell) Alive() bool  { return f.alive && !f.border }
func (f FredkinCell) Border() bool { return f.border }

// Age returns the number of generations the cell has survived, plus its seed age
func (f FredkinCell) Age() int { return f.age }

// Next applies the parity rule to the N, E, S and W neighbors
func (f FredkinCell) Next(neighbors []Variant) (Variant, error) {
	if len(neighbors) < orthogonalNeighbors {
		return nil, errors.Wrapf(ErrTooFewNeighbors, "[FredkinCell.Next] got %d, need %d",
			len(neighbors), orthogonalNeighbors)
	}
	alive, age := rules.ApplyFredkinRules(countAlive(neighbors[:orthogonalNeighbors]), f.Alive(), f.age)
	next, err := NewFredkinCellAged(age, alive)
	if err != nil {
		return nil, errors.Wrap(err, "[FredkinCell.Next]")
	}
	return next, nil
}

func (f FredkinCell) Render(w io.ByteWriter) error {
	switch {
	case !f.Alive():
		return w.WriteByte(fredkinDead)
	case f.age < SaturatedAge:
		return w.WriteByte(byte('0' + f.age))
	}
	return w.WriteByte(fredkinSaturated)
}

func (f FredkinCell) Clone() Variant {
	return f
}
