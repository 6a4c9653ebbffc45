package tictactoe

import (
	"fmt"
	"strings"
)

// Size is the side length of the board.
const Size = 3

// Board is an immutable-by-convention 3×3 position.
// The zero value is the empty starting position.
type Board [Size][Size]Mark

// Initial returns the starting position (all cells Empty).
func Initial() Board {
	return Board{}
}

// Player returns the mark that moves next. X moves first; thereafter the
// side with fewer marks on the board is to move.
func (b Board) Player() Mark {
	var nx, no int
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case X:
				nx++
			case O:
				no++
			}
		}
	}
	if nx > no {
		return O
	}

	return X
}

// Actions returns every legal move on b in row-major order.
// The order is part of the contract: Minimax breaks ties by it.
func (b Board) Actions() []Move {
	moves := make([]Move, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}

	return moves
}

// Result returns the board obtained by the side to move playing m.
// Returns ErrInvalidMove for out-of-range or occupied cells and
// ErrGameOver when b is already terminal.
func (b Board) Result(m Move) (Board, error) {
	if b.Terminal() {
		return b, ErrGameOver
	}
	if m.Row < 0 || m.Row >= Size || m.Col < 0 || m.Col >= Size {
		return b, fmt.Errorf("%w: cell (%d,%d) out of range", ErrInvalidMove, m.Row, m.Col)
	}
	if b[m.Row][m.Col] != Empty {
		return b, fmt.Errorf("%w: cell (%d,%d) occupied", ErrInvalidMove, m.Row, m.Col)
	}
	next := b // value copy
	next[m.Row][m.Col] = b.Player()

	return next, nil
}

// lines enumerates every winning triple: 3 rows, 3 columns, 2 diagonals.
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner returns the mark holding a complete line, or Empty when the game
// is drawn or still in progress.
func (b Board) Winner() Mark {
	for _, ln := range lines {
		m := b[ln[0].Row][ln[0].Col]
		if m == Empty {
			continue
		}
		if b[ln[1].Row][ln[1].Col] == m && b[ln[2].Row][ln[2].Col] == m {
			return m
		}
	}

	return Empty
}

// Terminal reports whether the game is over: someone won or no cell is free.
func (b Board) Terminal() bool {
	if b.Winner() != Empty {
		return true
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				return false
			}
		}
	}

	return true
}

// Utility scores a board from X's point of view:
// +1 if X has won, −1 if O has won, 0 otherwise.
func (b Board) Utility() int {
	switch b.Winner() {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// String renders the board as three lines with "|" separators, e.g.
//
//	X| |O
//	 |X|
//	 | |O
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(b[r][c].String())
		}
	}

	return sb.String()
}
