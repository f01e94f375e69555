package model

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// neighborOffsets lists the neighborhood in the order variants expect: N, E, S, W, NE, SE, SW, NW
var neighborOffsets = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// Grid represents the game board for one case
type Grid struct {
	kind    Kind
	width   int
	height  int
	cells   [][]Cell
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates a new grid with the specified dimensions. Every cell starts as the zero Cell.
func NewGrid(kind Kind, width, height int) *Grid {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		kind:   kind,
		width:  width,
		height: height,
		cells:  cells,
	}
}

// ParseGrid builds a grid from its text rows, one character per cell
func ParseGrid(kind Kind, rows []string, strict bool) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "[ParseGrid] no rows")
	}
	g := NewGrid(kind, len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, errors.Wrapf(ErrInvalidInput, "[ParseGrid] row %d has %d cells, want %d", y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			c, err := kind.NewCell(row[x], strict)
			if err != nil {
				return nil, errors.Wrapf(err, "[ParseGrid] row %d col %d", y, x)
			}
			g.Set(x, y, c)
		}
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// GetKind returns the kind the grid was seeded with
func (g *Grid) GetKind() Kind {
	return g.kind
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(kind Kind, width, height int) {
	g.kind = kind
	g.width = width
	g.height = height
	g.history = nil

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]Cell, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]Cell, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear drops every owned cell
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
	g.history = nil
}

// Set replaces the cell at (x, y) with a copy of c
func (g *Grid) Set(x, y int, c Cell) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = c.Clone()
	}
}

// Get returns the cell at (x, y), or a border sentinel outside the grid
func (g *Grid) Get(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return g.kind.border()
	}
	return g.cells[y][x]
}

// Neighbors fills buf with the eight neighbors of (x, y) in N, E, S, W, NE, SE, SW, NW order
func (g *Grid) Neighbors(x, y int, buf []Cell) []Cell {
	buf = buf[:0]
	for _, off := range neighborOffsets {
		buf = append(buf, g.Get(x+off[0], y+off[1]))
	}
	return buf
}

// evolveRows writes rows [startRow, endRow) of the next generation into next
func (g *Grid) evolveRows(next *Grid, startRow, endRow int) error {
	buf := make([]Cell, 0, len(neighborOffsets))
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			c, err := g.cells[y][x].Evolve(g.Neighbors(x, y, buf))
			if err != nil {
				return errors.Wrapf(err, "[Grid.evolveRows] cell (%d,%d)", x, y)
			}
			next.cells[y][x] = c
		}
	}
	return nil
}

func (g *Grid) nextGrid(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.kind, g.width, g.height)
	}
	return NewGrid(g.kind, g.width, g.height)
}

// NextGenerationSequential calculates the next generation row by row
func (g *Grid) NextGenerationSequential(pool *GridPool) (*Grid, error) {
	next := g.nextGrid(pool)
	if err := g.evolveRows(next, 0, g.height); err != nil {
		GridToPool(next, pool)
		return nil, err
	}
	next.history = g.history
	return next, nil
}

// NextGenerationParallel calculates the next generation using parallel processing
func (g *Grid) NextGenerationParallel(pool *GridPool) (*Grid, error) {
	next := g.nextGrid(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			return g.evolveRows(next, startRow, endRow)
		})
	}

	if err := eg.Wait(); err != nil {
		GridToPool(next, pool)
		return nil, errors.Wrap(err, "[Grid.NextGenerationParallel]")
	}

	next.history = g.history
	return next, nil
}

// NextGeneration calculates the next generation. The receiver is never modified.
func (g *Grid) NextGeneration(useParallel bool, pool *GridPool) (*Grid, error) {
	if useParallel {
		return g.NextGenerationParallel(pool)
	}
	return g.NextGenerationSequential(pool)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x].Alive() {
				count++
			}
		}
	}
	return
}

// Rows renders every row to its characters
func (g *Grid) Rows() ([]string, error) {
	rows := make([]string, g.height)
	var b bytes.Buffer
	for y := range g.height {
		b.Reset()
		for x := range g.width {
			if err := g.cells[y][x].Render(&b); err != nil {
				return nil, errors.Wrapf(err, "[Grid.Rows] cell (%d,%d)", x, y)
			}
		}
		rows[y] = b.String()
	}
	return rows, nil
}

// GetGridHash returns an MD5 hash of the rendered grid state.
// A grid holding an unrenderable cell hashes to the empty string.
func (g *Grid) GetGridHash() string {
	rows, err := g.Rows()
	if err != nil {
		return ""
	}
	h := md5.New()
	for _, row := range rows {
		h.Write([]byte(row))
		h.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.GetGridHash())

	// Keep only last 5 states to detect cycles
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid repeats one of its last three recorded states
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}
	return false
}
