// Minimax — optimal play for two-player zero-sum tic-tac-toe.
//
// Description:
//
//	The side to move picks the action whose subtree value is best for it:
//	X maximizes Utility, O minimizes it. Values are exact (the tree is
//	searched to terminal positions), so play is perfect: minimax never
//	loses from a non-lost position.
//
// Algorithm Outline:
//  1. If the board is terminal, there is no move → ErrGameOver.
//  2. For each legal action in row-major order, evaluate the resulting
//     position with the opponent to move.
//  3. Keep the first action achieving the best value (deterministic
//     tie-break by action order).
//  4. With pruning enabled, carry (alpha, beta) bounds and cut subtrees
//     that cannot influence the root choice; the chosen move is identical
//     with or without pruning.
//
// Complexity: O(b^d) node expansions, b ≤ 9, d ≤ 9; alpha-beta reduces the
// practical count by roughly an order of magnitude.
package tictactoe

import "math"

// searcher encapsulates per-search state.
type searcher struct {
	opts SearchOptions
}

// Minimax returns an optimal move for the side to play on b,
// applying any number of functional Options.
// Returns ErrGameOver on terminal boards, ErrOptionViolation for bad
// options, or the context error if the search is cancelled.
func Minimax(b Board, opts ...Option) (Move, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Move{}, o.err
	}
	if b.Terminal() {
		return Move{}, ErrGameOver
	}

	s := &searcher{opts: o}
	maximize := b.Player() == X

	var best Move
	bestVal := math.MinInt
	if !maximize {
		bestVal = math.MaxInt
	}
	alpha, beta := math.MinInt, math.MaxInt
	for _, m := range b.Actions() {
		next, err := b.Result(m)
		if err != nil {
			return Move{}, err
		}
		v, err := s.value(next, 1, alpha, beta, !maximize)
		if err != nil {
			return Move{}, err
		}
		if maximize && v > bestVal {
			bestVal, best = v, m
			if v > alpha {
				alpha = v
			}
		} else if !maximize && v < bestVal {
			bestVal, best = v, m
			if v < beta {
				beta = v
			}
		}
	}

	return best, nil
}

// value computes the exact minimax value of b with the given side to move.
// alpha/beta are ignored unless pruning is enabled.
func (s *searcher) value(b Board, depth int, alpha, beta int, maximize bool) (int, error) {
	// cancellation check (once per node)
	select {
	case <-s.opts.Ctx.Done():
		return 0, s.opts.Ctx.Err()
	default:
	}

	if b.Terminal() {
		return b.Utility(), nil
	}

	best := math.MinInt
	if !maximize {
		best = math.MaxInt
	}
	for _, m := range b.Actions() {
		s.opts.OnExpand(m, depth)
		next, err := b.Result(m)
		if err != nil {
			return 0, err
		}
		v, err := s.value(next, depth+1, alpha, beta, !maximize)
		if err != nil {
			return 0, err
		}
		if maximize {
			if v > best {
				best = v
			}
			if s.opts.Prune {
				if best >= beta {
					break
				}
				if best > alpha {
					alpha = best
				}
			}
		} else {
			if v < best {
				best = v
			}
			if s.opts.Prune {
				if best <= alpha {
					break
				}
				if best < beta {
					beta = best
				}
			}
		}
	}

	return best, nil
}
