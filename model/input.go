package model

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Case is one seeded grid read from an input stream
type Case struct {
	Grid *Grid
	// Generations and PrintEvery are set when the case carries its own schedule
	Generations int
	PrintEvery  int
	HasSchedule bool
}

// ReadCases parses every case in r. Cases are separated by blank lines.
func ReadCases(r io.Reader, strict bool) ([]Case, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "[ReadCases] failed to read input")
	}

	var cases []Case
	for i := 0; i < len(lines); {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}
		c, next, err := parseCase(lines, i, strict)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
		i = next
	}
	return cases, nil
}

// parseCase reads the case starting at lines[i] and returns the index after it
func parseCase(lines []string, i int, strict bool) (Case, int, error) {
	kind, err := ParseKind(strings.TrimSpace(lines[i]))
	if err != nil {
		return Case{}, 0, errors.Wrapf(err, "[ReadCases] line %d", i+1)
	}
	i++

	if i >= len(lines) {
		return Case{}, 0, errors.Wrapf(ErrInvalidInput, "[ReadCases] line %d: missing dimensions", i+1)
	}
	rows, cols, ok := parsePair(lines[i])
	if !ok || rows <= 0 || cols <= 0 {
		return Case{}, 0, errors.Wrapf(ErrInvalidInput, "[ReadCases] line %d: bad dimensions %q", i+1, lines[i])
	}
	i++

	if rows > len(lines)-i {
		return Case{}, 0, errors.Wrapf(ErrInvalidInput, "[ReadCases] line %d: want %d grid rows", i+1, rows)
	}
	body := lines[i : i+rows]
	for j, row := range body {
		if len(row) != cols {
			return Case{}, 0, errors.Wrapf(ErrInvalidInput, "[ReadCases] line %d: row has %d cells, want %d",
				i+j+1, len(row), cols)
		}
	}
	g, err := ParseGrid(kind, body, strict)
	if err != nil {
		return Case{}, 0, errors.Wrapf(err, "[ReadCases] line %d", i+1)
	}
	i += rows

	c := Case{Grid: g}
	if i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		gens, every, ok := parsePair(lines[i])
		if !ok || gens < 0 || every <= 0 {
			return Case{}, 0, errors.Wrapf(ErrInvalidInput, "[ReadCases] line %d: bad schedule %q", i+1, lines[i])
		}
		c.Generations, c.PrintEvery, c.HasSchedule = gens, every, true
		i++
	}
	return c, i, nil
}

func parsePair(line string) (int, int, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}
