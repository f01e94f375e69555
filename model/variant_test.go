package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conwayNeighbors returns eight neighbors, the first live of them alive
func conwayNeighbors(live int) []Variant {
	ns := make([]Variant, 8)
	for i := range ns {
		ns[i] = ConwayCell{alive: i < live}
	}
	return ns
}

func renderVariant(t *testing.T, v Variant) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, v.Render(&b))
	require.Equal(t, 1, b.Len(), "render must write exactly one character")
	return b.String()
}

func TestConwayCellConstruction(t *testing.T) {
	alive, err := NewConwayCell('*')
	require.NoError(t, err)
	assert.True(t, alive.Alive())
	assert.Equal(t, "*", renderVariant(t, alive))

	dead, err := NewConwayCell('.')
	require.NoError(t, err)
	assert.False(t, dead.Alive())
	assert.Equal(t, ".", renderVariant(t, dead))

	for _, ch := range []byte{'-', '0', '+', ' ', 'x'} {
		_, err := NewConwayCell(ch)
		assert.ErrorIs(t, err, ErrInvalidCell, "char %q", ch)
	}
}

func TestConwayCellNext(t *testing.T) {
	for live := 0; live <= 8; live++ {
		next, err := ConwayCell{alive: true}.Next(conwayNeighbors(live))
		require.NoError(t, err)
		assert.Equal(t, live == 2 || live == 3, next.Alive(), "alive cell with %d live neighbors", live)

		next, err = ConwayCell{}.Next(conwayNeighbors(live))
		require.NoError(t, err)
		assert.Equal(t, live == 3, next.Alive(), "dead cell with %d live neighbors", live)
	}
}

func TestConwayCellNextDoesNotMutate(t *testing.T) {
	c := ConwayCell{alive: true}
	ns := conwayNeighbors(0)
	next, err := c.Next(ns)
	require.NoError(t, err)

	assert.False(t, next.Alive())
	assert.True(t, c.Alive())
	assert.Equal(t, conwayNeighbors(0), ns)
}

func TestConwayCellCountsFredkinNeighbors(t *testing.T) {
	ns := []Variant{
		FredkinCell{alive: true, age: 4},
		ConwayCell{alive: true},
		FredkinCell{alive: true},
		FredkinCell{},
	}
	next, err := ConwayCell{}.Next(ns)
	require.NoError(t, err)
	assert.True(t, next.Alive())
}

func TestBorderCellsNeverCount(t *testing.T) {
	// Border sentinels report dead even if their stored state says alive.
	borders := []Variant{
		ConwayCell{alive: true, border: true},
		FredkinCell{alive: true, age: 3, border: true},
		NewConwayBorder(),
		NewFredkinBorder(),
	}
	for _, b := range borders {
		assert.False(t, b.Alive())
		assert.True(t, b.Border())
	}

	ns := append([]Variant{ConwayCell{alive: true}, ConwayCell{alive: true}}, borders...)
	next, err := ConwayCell{}.Next(ns)
	require.NoError(t, err)
	assert.False(t, next.Alive(), "dead cell with two live neighbors and four borders must stay dead")

	fn, err := FredkinCell{}.Next(borders)
	require.NoError(t, err)
	assert.False(t, fn.Alive())
}

func TestSingleConwayCellDies(t *testing.T) {
	c, err := NewConwayCell('*')
	require.NoError(t, err)
	next, err := c.Next(conwayNeighbors(0))
	require.NoError(t, err)
	assert.Equal(t, ".", renderVariant(t, next))
}

func TestFredkinCellConstruction(t *testing.T) {
	tests := []struct {
		ch    byte
		alive bool
		age   int
		glyph string
	}{
		{'-', false, 0, "-"},
		{'0', true, 0, "0"},
		{'5', true, 5, "5"},
		{'9', true, 9, "9"},
		{'+', true, SaturatedAge, "+"},
		{'#', true, SaturatedAge, "+"},
		{'a', true, SaturatedAge, "+"},
	}
	for _, tt := range tests {
		f, err := NewFredkinCell(tt.ch)
		require.NoError(t, err, "char %q", tt.ch)
		assert.Equal(t, tt.alive, f.Alive(), "char %q", tt.ch)
		assert.Equal(t, tt.age, f.Age(), "char %q", tt.ch)
		assert.Equal(t, tt.glyph, renderVariant(t, f), "char %q", tt.ch)
	}

	for _, ch := range []byte{' ', '\t', '\n', 0, 0x7f, 0xe9} {
		_, err := NewFredkinCell(ch)
		assert.ErrorIs(t, err, ErrInvalidCell, "char %q", ch)
	}
}

func TestFredkinCellAged(t *testing.T) {
	f, err := NewFredkinCellAged(12, true)
	require.NoError(t, err)
	assert.Equal(t, 12, f.Age())
	assert.Equal(t, "+", renderVariant(t, f))

	f, err = NewFredkinCellAged(7, false)
	require.NoError(t, err)
	assert.Equal(t, "-", renderVariant(t, f))
	assert.Equal(t, 7, f.Age())

	_, err = NewFredkinCellAged(-1, true)
	assert.ErrorIs(t, err, ErrInvalidAge)
}

func TestFredkinCellNext(t *testing.T) {
	for live := 0; live <= 4; live++ {
		odd := live == 1 || live == 3

		next, err := FredkinCell{alive: true, age: 4}.Next(conwayNeighbors(live))
		require.NoError(t, err)
		f := next.(FredkinCell)
		assert.Equal(t, odd, f.Alive(), "alive cell with %d live neighbors", live)
		if odd {
			assert.Equal(t, 5, f.Age())
		} else {
			assert.Equal(t, 4, f.Age())
		}

		next, err = FredkinCell{age: 4}.Next(conwayNeighbors(live))
		require.NoError(t, err)
		f = next.(FredkinCell)
		assert.Equal(t, odd, f.Alive(), "dead cell with %d live neighbors", live)
		assert.Equal(t, 4, f.Age())
	}
}

func TestFredkinCellIgnoresDiagonals(t *testing.T) {
	ns := []Variant{
		ConwayCell{alive: true}, ConwayCell{}, ConwayCell{}, ConwayCell{},
		ConwayCell{alive: true}, ConwayCell{alive: true}, ConwayCell{alive: true}, ConwayCell{alive: true},
	}
	next, err := FredkinCell{}.Next(ns)
	require.NoError(t, err)
	assert.True(t, next.Alive(), "only the single live orthogonal neighbor counts")
}

func TestFredkinCellTooFewNeighbors(t *testing.T) {
	_, err := FredkinCell{alive: true}.Next(conwayNeighbors(8)[:3])
	assert.ErrorIs(t, err, ErrTooFewNeighbors)

	_, err = FredkinCell{alive: true}.Next(nil)
	assert.ErrorIs(t, err, ErrTooFewNeighbors)
}

func TestVariantClone(t *testing.T) {
	f := FredkinCell{alive: true, age: 3}
	assert.Equal(t, Variant(f), f.Clone())

	c := ConwayCell{alive: true}
	assert.Equal(t, Variant(c), c.Clone())
}
