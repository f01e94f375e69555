package model

import (
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	conwayAlive = '*'
	conwayDead  = '.'
)

// ConwayCell follows the classic Game of Life rules over the full neighborhood
type ConwayCell struct {
	alive  bool
	border bool
}

// NewConwayCell builds a Conway cell from its input character ('*' or '.')
func NewConwayCell(ch byte) (ConwayCell, error) {
	switch ch {
	case conwayAlive:
		return ConwayCell{alive: true}, nil
	case conwayDead:
		return ConwayCell{}, nil
	}
	return ConwayCell{}, errors.Wrapf(ErrInvalidCell, "[NewConwayCell] %q", ch)
}

// NewConwayBorder returns a border sentinel that never counts as alive
func NewConwayBorder() ConwayCell {
	return ConwayCell{border: true}
}

func (c ConwayCell) Alive() bool  { return c.alive && !c.border }
func (c ConwayCell) Border() bool { return c.border }

// Next applies the birth/survival rule to every living non-border neighbor
func (c ConwayCell) Next(neighbors []Variant) (Variant, error) {
	return ConwayCell{alive: rules.ApplyConwayRules(countAlive(neighbors), c.Alive())}, nil
}

func (c ConwayCell) Render(w io.ByteWriter) error {
	if c.Alive() {
		return w.WriteByte(conwayAlive)
	}
	return w.WriteByte(conwayDead)
}

func (c ConwayCell) Clone() Variant {
	return c
}
