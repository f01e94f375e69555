// Package rules holds the per-cell transition tables shared by the cell variants.
package rules

/*
ApplyConwayRules reports whether a Conway cell is alive in the next generation.

A live cell survives with two or three live neighbors, a dead cell is born with
exactly three: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
