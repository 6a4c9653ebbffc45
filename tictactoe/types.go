// Package tictactoe provides tunable options and error definitions
// for minimax search over tic-tac-toe boards.
package tictactoe

import (
	"context"
	"errors"
)

// Sentinel errors for board manipulation and search.
var (
	// ErrInvalidMove is returned when a move targets an occupied or
	// out-of-range cell.
	ErrInvalidMove = errors.New("tictactoe: invalid move")

	// ErrGameOver is returned when a move or a search is requested on a
	// terminal board.
	ErrGameOver = errors.New("tictactoe: game is over")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tictactoe: invalid option supplied")
)

// Mark is the content of a single board cell.
type Mark byte

// Cell states. Empty is the zero value, so Board{} is the initial position.
const (
	Empty Mark = iota
	X
	O
)

// String renders a mark as "X", "O", or a space for Empty.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Move addresses a cell by zero-based row and column.
type Move struct {
	Row, Col int
}

// Option configures minimax search via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when Minimax is invoked.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks to customize search.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines inside deep searches.
	Ctx context.Context

	// Prune enables alpha-beta pruning. Pruning never changes the chosen
	// move, only the number of nodes expanded.
	Prune bool

	// OnExpand is called once per expanded node with the move leading to
	// it and its depth below the root.
	OnExpand func(m Move, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SearchOptions with sane defaults:
//   - context.Background()
//   - alpha-beta pruning enabled
//   - no-op OnExpand hook.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:      context.Background(),
		Prune:    true,
		OnExpand: func(Move, int) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithoutPruning disables alpha-beta pruning, expanding the full subtree.
// Useful for demonstrations and for cross-checking pruned results.
func WithoutPruning() Option {
	return func(o *SearchOptions) {
		o.Prune = false
	}
}

// WithOnExpand registers a callback fired for every node the search expands.
func WithOnExpand(fn func(m Move, depth int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
