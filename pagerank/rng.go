// Package pagerank - RNG utilities for the random-surfer sampler.
//
// Goals:
//   - Determinism: same seed ⇒ identical ranks across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: parallel chains get decorrelated substreams.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each chain owns its own *rand.Rand.
package pagerank

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a chain index into a new 64-bit seed
// using a SplitMix64-style finalizer, so chains sample independent streams.
func deriveSeed(parent int64, chain uint64) int64 {
	x := uint64(parent) ^ (chain + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
