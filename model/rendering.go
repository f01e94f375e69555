package model

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// TerminalRenderer writes grids in the case output format
type TerminalRenderer struct {
	out *bufio.Writer
	au  aurora.Aurora
}

// NewTerminalRenderer returns a renderer writing to out, colorizing live cells when color is set
func NewTerminalRenderer(out io.Writer, color bool) *TerminalRenderer {
	return &TerminalRenderer{
		out: bufio.NewWriter(out),
		au:  aurora.NewAurora(color),
	}
}

// Header writes the case banner
func (r *TerminalRenderer) Header(g *Grid) error {
	fmt.Fprintf(r.out, "*** Life<%s> %dx%d ***\n\n", g.GetKind(), g.GetHeight(), g.GetWidth())
	return errors.Wrap(r.out.Flush(), "[TerminalRenderer.Header]")
}

// Display renders one generation of the grid
func (r *TerminalRenderer) Display(g *Grid, generation int) error {
	fmt.Fprintf(r.out, "Generation = %d, Population = %d.\n", generation, g.CountLivingCells())

	var b bytes.Buffer
	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			b.Reset()
			c := g.Get(x, y)
			if err := c.Render(&b); err != nil {
				return errors.Wrapf(err, "[TerminalRenderer.Display] cell (%d,%d)", x, y)
			}
			r.out.WriteString(r.colorize(c, b.String()))
		}
		r.out.WriteByte('\n')
	}
	r.out.WriteByte('\n')
	return errors.Wrap(r.out.Flush(), "[TerminalRenderer.Display]")
}

func (r *TerminalRenderer) colorize(c Cell, glyph string) string {
	if !c.Alive() {
		return glyph
	}
	switch c.Variant().(type) {
	case ConwayCell:
		return r.au.Green(glyph).String()
	case FredkinCell:
		return r.au.Yellow(glyph).String()
	}
	return glyph
}
