// Package heredity infers, for every member of a family, the probability
// of carrying 0, 1, or 2 copies of a gene and of exhibiting its trait,
// given partial trait observations — a small Bayesian network evaluated by
// exact enumeration.
//
// What & How:
//
//	A Family maps names to Person records (optional mother/father links
//	and an optional observed trait). A Model supplies the gene prior for
//	people without listed parents, the trait likelihood per copy count,
//	and the mutation rate used when a gene is (or fails to be) passed
//	down. Infer enumerates every assignment of copy counts and trait
//	values consistent with the evidence, accumulates joint probabilities,
//	and normalizes into per-person distributions.
//
//	Inheritance from one parent: 0 copies pass the gene only by mutation,
//	1 copy passes it with probability ½, 2 copies fail to pass it only by
//	mutation.
//
// Scale:
//
//	Enumeration is exponential in family size (3ⁿ·2ⁿ assignments) and is
//	meant for the small pedigrees of the exercise, not for population data.
//
// See DefaultModel for the classic probability table and LoadModel for
// reading an alternative table from YAML.
package heredity
