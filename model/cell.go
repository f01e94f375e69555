package model

import (
	"io"

	"github.com/pkg/errors"
)

// transmuteAge is the Fredkin age at which a mixed handle swaps in a live Conway cell
const transmuteAge = 2

// Cell owns exactly one Variant and gives it value semantics.
//
// Cells built by NewCell or WrapMixed belong to mixed grids and apply the
// transmutation policy after every evolve; cells built by Wrap never do.
type Cell struct {
	v         Variant
	transmute bool
}

// NewCell dispatches on the input character: '*' and '.' seed a Conway cell,
// anything else seeds a Fredkin cell.
func NewCell(ch byte) (Cell, error) {
	var (
		v   Variant
		err error
	)
	switch ch {
	case conwayAlive, conwayDead:
		v, err = NewConwayCell(ch)
	default:
		v, err = NewFredkinCell(ch)
	}
	if err != nil {
		return Cell{}, errors.Wrap(err, "[NewCell]")
	}
	return Cell{v: v, transmute: true}, nil
}

// NewCellStrict is NewCell restricted to the characters the renderer can produce
func NewCellStrict(ch byte) (Cell, error) {
	switch {
	case ch == conwayAlive, ch == conwayDead, ch == fredkinDead, ch == fredkinSaturated:
	case ch >= '0' && ch <= '9':
	default:
		return Cell{}, errors.Wrapf(ErrInvalidCell, "[NewCellStrict] %q", ch)
	}
	return NewCell(ch)
}

// Wrap returns a non-transmuting handle owning a copy of v
func Wrap(v Variant) Cell {
	return Cell{v: v.Clone()}
}

// WrapMixed returns a transmuting handle owning a copy of v
func WrapMixed(v Variant) Cell {
	return Cell{v: v.Clone(), transmute: true}
}

// BorderCell is the sentinel the grid places outside its bounds
func BorderCell() Cell {
	return Cell{v: NewConwayBorder()}
}

// border returns the sentinel matching this kind's variant
func (k Kind) border() Cell {
	if k == KindFredkin {
		return Cell{v: NewFredkinBorder()}
	}
	return BorderCell()
}

// Clone returns a handle owning an independent copy of the variant
func (c Cell) Clone() Cell {
	if c.v == nil {
		return c
	}
	return Cell{v: c.v.Clone(), transmute: c.transmute}
}

// Variant exposes the owned variant
func (c Cell) Variant() Variant { return c.v }

// Alive reports whether the owned variant is alive. The zero Cell is dead.
func (c Cell) Alive() bool {
	return c.v != nil && c.v.Alive()
}

// Render writes the owned variant's character
func (c Cell) Render(w io.ByteWriter) error {
	if c.v == nil {
		return errors.Wrap(ErrEmptyCell, "[Cell.Render]")
	}
	return c.v.Render(w)
}

// Evolve computes this position's cell for the next generation.
//
// A mixed handle whose evolved variant is a Fredkin cell of age exactly 2 is
// replaced by a newly born Conway cell.
func (c Cell) Evolve(neighbors []Cell) (Cell, error) {
	if c.v == nil {
		return Cell{}, errors.Wrap(ErrEmptyCell, "[Cell.Evolve]")
	}
	vs := make([]Variant, len(neighbors))
	for i, n := range neighbors {
		vs[i] = n.v
	}

	next, err := c.v.Next(vs)
	if err != nil {
		return Cell{}, errors.Wrap(err, "[Cell.Evolve]")
	}

	if c.transmute {
		if f, ok := next.(FredkinCell); ok && f.Age() == transmuteAge {
			next = ConwayCell{alive: true}
		}
	}
	return Cell{v: next, transmute: c.transmute}, nil
}
