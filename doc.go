// Package aikit is a collection of classic introductory-AI exercises,
// reworked as independent, reusable Go packages — from graph search to
// probabilistic inference and constraint satisfaction.
//
// 🚀 What is aikit?
//
//	A small, deterministic, mostly-pure-Go library that brings together:
//		• Graph search: degrees of separation via BFS over an actor/movie graph
//		• Adversarial search: minimax (with alpha-beta) for tic-tac-toe
//		• Link analysis: PageRank by random-surfer sampling and by iteration
//		• Probabilistic inference: a Bayesian network for trait inheritance
//		• Constraint satisfaction: crossword generation with AC-3 + backtracking
//		• Catalog: the project index itself, parsed and verified as data
//
// ✨ Why choose aikit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seeded RNG everywhere randomness appears
//   - Extensible – functional options and hooks on every solver
//
// Everything is organized as one package per exercise:
//
//	catalog/   — project table model, markdown parsing, consistency checks
//	crossword/ — CSP crossword generator (node/arc consistency, MRV, LCV)
//	degrees/   — shortest actor-to-actor path through shared movies
//	heredity/  — joint-probability inference over family gene/trait data
//	pagerank/  — corpus crawler plus sampling and iterative rankers
//	tictactoe/ — board primitives and optimal play
//	cmd/aikit  — one CLI fronting all of the above
//
// Dive into README.md for the full project table and per-exercise usage.
//
//	go get github.com/katalvlaran/aikit
package aikit
