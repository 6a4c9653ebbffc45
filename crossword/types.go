// Package crossword provides tunable options and error definitions
// for CSP crossword generation.
package crossword

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for structure parsing and solving.
var (
	// ErrBadStructure is returned for empty, ragged, or variable-free grids.
	ErrBadStructure = errors.New("crossword: bad structure")

	// ErrEmptyLexicon is returned when no usable words are supplied.
	ErrEmptyLexicon = errors.New("crossword: empty lexicon")

	// ErrNoSolution is returned when backtracking exhausts every assignment.
	ErrNoSolution = errors.New("crossword: no solution")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("crossword: invalid option supplied")
)

// Direction orients a variable inside the grid.
type Direction uint8

// Variable orientations.
const (
	Across Direction = iota
	Down
)

// String renders a direction for diagnostics.
func (d Direction) String() string {
	if d == Down {
		return "down"
	}

	return "across"
}

// Variable is one run of fillable cells: a slot for a single word.
// Variables are comparable and safe to use as map keys.
type Variable struct {
	Row, Col int       // starting cell, zero-based
	Dir      Direction
	Length   int       // number of cells, always ≥ 2
}

// Cell returns the grid coordinates of the variable's k-th letter.
func (v Variable) Cell(k int) (row, col int) {
	if v.Dir == Down {
		return v.Row + k, v.Col
	}

	return v.Row, v.Col + k
}

// String renders a variable as e.g. "(1,0 down ×5)".
func (v Variable) String() string {
	return fmt.Sprintf("(%d,%d %s ×%d)", v.Row, v.Col, v.Dir, v.Length)
}

// Option configures the generator via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize solving.
type Options struct {
	// Ctx allows cancellation and deadlines inside backtracking.
	Ctx context.Context

	// OnAssign is called whenever the search tentatively places a word,
	// including placements that are later backtracked.
	OnAssign func(v Variable, word string)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background() and a no-op
// OnAssign hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnAssign: func(Variable, string) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnAssign registers a callback fired on every tentative placement.
func WithOnAssign(fn func(v Variable, word string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}
