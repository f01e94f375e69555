package model

import (
	"github.com/pkg/errors"
)

// Kind selects which cell variants a grid is seeded with
type Kind int

const (
	// KindMixed seeds Conway and Fredkin cells from one alphabet and transmutes aged Fredkin cells
	KindMixed Kind = iota
	// KindConway seeds Conway cells only
	KindConway
	// KindFredkin seeds Fredkin cells only
	KindFredkin
)

var kindNames = map[Kind]string{
	KindMixed:   "Cell",
	KindConway:  "ConwayCell",
	KindFredkin: "FredkinCell",
}

// ParseKind maps the case header name to a Kind
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidInput, "[ParseKind] unknown cell kind %q", name)
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Unknown"
}

// NewCell builds the handle for one input character under this kind
func (k Kind) NewCell(ch byte, strict bool) (Cell, error) {
	switch k {
	case KindConway:
		c, err := NewConwayCell(ch)
		if err != nil {
			return Cell{}, err
		}
		return Wrap(c), nil
	case KindFredkin:
		if strict && ch != fredkinDead && ch != fredkinSaturated && (ch < '0' || ch > '9') {
			return Cell{}, errors.Wrapf(ErrInvalidCell, "[Kind.NewCell] %q", ch)
		}
		f, err := NewFredkinCell(ch)
		if err != nil {
			return Cell{}, err
		}
		return Wrap(f), nil
	case KindMixed:
		if strict {
			return NewCellStrict(ch)
		}
		return NewCell(ch)
	}
	return Cell{}, errors.Errorf("[Kind.NewCell] unknown kind %d", int(k))
}
