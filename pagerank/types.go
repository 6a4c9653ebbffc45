// Package pagerank provides tunable options and error definitions
// for the sampling and iterative rankers.
package pagerank

import (
	"context"
	"errors"
	"fmt"
)

// Default parameter values, mirroring the classic exercise constants.
const (
	// DefaultDamping is the probability of following a link rather than
	// jumping to a random page.
	DefaultDamping = 0.85

	// DefaultSamples is the length of the random-surfer walk.
	DefaultSamples = 10_000

	// DefaultTolerance is the largest per-page change at which iteration
	// is considered converged.
	DefaultTolerance = 0.001
)

// Sentinel errors for corpus construction and ranking.
var (
	// ErrEmptyCorpus is returned when a corpus contains no pages.
	ErrEmptyCorpus = errors.New("pagerank: corpus has no pages")

	// ErrPageNotFound is returned when a named page is absent from the corpus.
	ErrPageNotFound = errors.New("pagerank: page not found")

	// ErrCorpusNil is returned if a nil corpus pointer is passed.
	ErrCorpusNil = errors.New("pagerank: corpus is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pagerank: invalid option supplied")
)

// Option configures ranking behavior via functional arguments.
// If an Option is invalid (e.g. damping outside (0,1)), it is recorded
// internally and surfaced as ErrOptionViolation when a ranker is invoked.
type Option func(*Options)

// Options holds parameters shared by Sample and Iterate.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Damping is the link-following probability, in (0,1).
	Damping float64

	// Samples is the number of surfer steps per chain (Sample only).
	Samples int

	// Chains is the number of independent surfer walks to run and
	// average (Sample only). Chains > 1 run concurrently.
	Chains int

	// Seed drives the sampler's RNG. Seed 0 selects a fixed default so
	// results are reproducible out of the box.
	Seed int64

	// Tolerance is the convergence threshold (Iterate only).
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the classic exercise defaults:
// damping 0.85, 10000 samples, one chain, fixed seed, tolerance 0.001.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Damping:   DefaultDamping,
		Samples:   DefaultSamples,
		Chains:    1,
		Seed:      0,
		Tolerance: DefaultTolerance,
		err:       nil,
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

// WithDamping sets the link-following probability; must lie in (0,1).
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: damping must be in (0,1), got %v", ErrOptionViolation, d)
			return
		}
		o.Damping = d
	}
}

// WithSamples sets the surfer walk length; must be positive.
func WithSamples(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: samples must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.Samples = n
	}
}

// WithChains sets how many independent walks to average; must be positive.
func WithChains(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: chains must be positive, got %d", ErrOptionViolation, k)
			return
		}
		o.Chains = k
	}
}

// WithSeed fixes the sampler RNG seed. Seed 0 keeps the package default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithTolerance sets the iteration convergence threshold; must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be positive, got %v", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}
