// Package pagerank ranks the pages of a small hyperlink corpus by
// estimated importance, two ways: a random-surfer Monte-Carlo sampler and
// an iterative fixed-point computation.
//
// What & How:
//
//	A Corpus is a directed link graph over page names; Crawl builds one
//	from a directory of HTML files, keeping only links that stay inside
//	the corpus. Transition gives the surfer's next-page distribution from
//	a page: with probability damping follow a random outgoing link, with
//	probability 1−damping jump to a uniformly random page. Pages with no
//	outgoing links behave as if they linked to every page.
//
//	Sample estimates ranks as visit frequencies of an n-step surfer walk
//	(optionally several independent chains averaged). Iterate applies the
//	PageRank update until no rank moves by more than the tolerance. Both
//	return distributions over all pages summing to 1.
//
// Determinism:
//
//	Sampling uses a seeded RNG (seed 0 selects a fixed default), so runs
//	are reproducible; parallel chains derive independent substreams from
//	the base seed.
//
// See Options for damping, sample count, tolerance, seed, and chain knobs.
package pagerank
