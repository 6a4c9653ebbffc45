// Package tictactoe provides board primitives and optimal play for the
// classic 3×3 game, via minimax with optional alpha-beta pruning.
//
// What & How:
//
//	A Board is a value type: Result never mutates its receiver, so game
//	trees can be explored without copying discipline on the caller's side.
//	X always moves first; Utility is +1 for an X win, −1 for an O win,
//	0 otherwise. Minimax returns a move that maximizes the mover's
//	guaranteed outcome, with ties broken by row-major action order so the
//	same position always yields the same move.
//
// When to use:
//
//   - Teaching adversarial search: hooks expose every expanded node.
//   - As an opponent in a REPL or UI: see cmd/aikit's tictactoe command.
//
// Complexity: the full game tree has under 9! positions; with alpha-beta
// (the default) a first-move search expands a few thousand nodes.
//
// See Minimax for the entry point and SearchOptions for tuning.
package tictactoe
