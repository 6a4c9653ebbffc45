// Package heredity provides tunable options and error definitions
// for exact-enumeration inference over family gene/trait data.
package heredity

import (
	"context"
	"errors"
)

// Sentinel errors for loading and inference.
var (
	// ErrEmptyFamily is returned when inference is run over no people.
	ErrEmptyFamily = errors.New("heredity: family has no members")

	// ErrUnknownParent is returned when a person lists a parent absent
	// from the family, or lists only one of the two parents.
	ErrUnknownParent = errors.New("heredity: unknown or half-specified parents")

	// ErrBadData is returned when the CSV input cannot be parsed.
	ErrBadData = errors.New("heredity: malformed family data")

	// ErrModelInvalid is returned when a probability model fails
	// validation (distributions must sum to 1, rates must lie in [0,1]).
	ErrModelInvalid = errors.New("heredity: invalid probability model")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heredity: invalid option supplied")
)

// MaxCopies is the largest representable gene copy count.
const MaxCopies = 2

// Person is one family member. Trait is nil when unobserved.
type Person struct {
	Name   string
	Mother string // empty when parents are not listed
	Father string // empty when parents are not listed
	Trait  *bool
}

// Family maps person names to their records.
type Family map[string]Person

// Distribution is the inferred posterior for one person.
type Distribution struct {
	// Gene[c] is the probability of carrying c copies, c ∈ 0..MaxCopies.
	Gene [MaxCopies + 1]float64

	// Trait[0] is the probability of not exhibiting the trait,
	// Trait[1] of exhibiting it.
	Trait [2]float64
}

// Option configures inference via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation (or ErrModelInvalid) when Infer is invoked.
type Option func(*Options)

// Options holds parameters for Infer.
type Options struct {
	// Ctx allows cancellation and deadlines during enumeration.
	Ctx context.Context

	// Model is the probability table driving the network.
	Model Model

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background() and the
// classic exercise model.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Model: DefaultModel(),
		err:   nil,
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

// WithModel replaces the probability table. The model is validated when
// Infer is invoked.
func WithModel(m Model) Option {
	return func(o *Options) {
		o.Model = m
	}
}
