// Package degrees provides tunable options and error definitions
// for BFS over the actor/movie graph.
package degrees

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for loading and search.
var (
	// ErrBadData is returned when the CSV data set cannot be parsed.
	ErrBadData = errors.New("degrees: malformed data set")

	// ErrPersonNotFound is returned when a person ID is absent.
	ErrPersonNotFound = errors.New("degrees: person not found")

	// ErrNotConnected is returned when no chain of shared movies links
	// source and target.
	ErrNotConnected = errors.New("degrees: people are not connected")

	// ErrGraphNil is returned if a nil graph pointer is used.
	ErrGraphNil = errors.New("degrees: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("degrees: invalid option supplied")
)

// Person is one people.csv record.
type Person struct {
	ID, Name, Birth string
}

// Movie is one movies.csv record.
type Movie struct {
	ID, Title, Year string
}

// Step is one hop of a connection: the person reached and the movie that
// links them to the previous person on the path.
type Step struct {
	MovieID  string
	PersonID string
}

// Option configures the search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when ShortestPath is
// invoked.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks to customize BFS.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, bounds the number of degrees explored.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when a person is dequeued, with their BFS depth.
	OnVisit func(personID string, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SearchOptions with sane defaults:
// context.Background(), no depth limit, no-op OnVisit.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnVisit:  func(string, int) {},
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

// WithMaxDepth stops the search at the given degree (exclusive).
//
//	d > 0: limit to d degrees
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *SearchOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnVisit registers a callback fired for every dequeued person.
func WithOnVisit(fn func(personID string, depth int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
