package model

import "github.com/pkg/errors"

var (
	// ErrInvalidCell is returned when a character is outside a variant's alphabet
	ErrInvalidCell = errors.New("invalid cell character")
	// ErrInvalidAge is returned when a Fredkin cell is built with a negative age
	ErrInvalidAge = errors.New("invalid fredkin age")
	// ErrTooFewNeighbors is returned when evolve is given fewer neighbors than the rule reads
	ErrTooFewNeighbors = errors.New("too few neighbors")
	// ErrEmptyCell is returned when a zero Cell, which owns no variant, is rendered or evolved
	ErrEmptyCell = errors.New("empty cell")
	// ErrInvalidInput is returned for malformed case files
	ErrInvalidInput = errors.New("invalid input")
)
