package tictactoe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/aikit/tictactoe"
)

// boardFrom builds a Board from three 3-char rows using 'X', 'O', '.'.
func boardFrom(t *testing.T, rows ...string) tictactoe.Board {
	t.Helper()
	if len(rows) != tictactoe.Size {
		t.Fatalf("boardFrom: want %d rows, got %d", tictactoe.Size, len(rows))
	}
	var b tictactoe.Board
	for r, row := range rows {
		for c := 0; c < tictactoe.Size; c++ {
			switch row[c] {
			case 'X':
				b[r][c] = tictactoe.X
			case 'O':
				b[r][c] = tictactoe.O
			}
		}
	}

	return b
}

// TestPlayer verifies the side-to-move rule: X first, then alternation.
func TestPlayer(t *testing.T) {
	b := tictactoe.Initial()
	if got := b.Player(); got != tictactoe.X {
		t.Errorf("initial Player = %v; want X", got)
	}
	b, err := b.Result(tictactoe.Move{Row: 1, Col: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Player(); got != tictactoe.O {
		t.Errorf("after one move Player = %v; want O", got)
	}
}

// TestActions checks count and row-major ordering of legal moves.
func TestActions(t *testing.T) {
	b := tictactoe.Initial()
	acts := b.Actions()
	if len(acts) != 9 {
		t.Fatalf("initial Actions = %d moves; want 9", len(acts))
	}
	if acts[0] != (tictactoe.Move{Row: 0, Col: 0}) || acts[8] != (tictactoe.Move{Row: 2, Col: 2}) {
		t.Errorf("Actions not in row-major order: %v", acts)
	}
	b = boardFrom(t,
		"XOX",
		"OXO",
		"XO.",
	)
	if acts = b.Actions(); len(acts) != 1 || acts[0] != (tictactoe.Move{Row: 2, Col: 2}) {
		t.Errorf("near-full Actions = %v; want [(2,2)]", acts)
	}
}

// TestResult_Errors verifies rejection of occupied, out-of-range, and
// post-game moves, and that Result never mutates its receiver.
func TestResult_Errors(t *testing.T) {
	b := tictactoe.Initial()
	if _, err := b.Result(tictactoe.Move{Row: 3, Col: 0}); !errors.Is(err, tictactoe.ErrInvalidMove) {
		t.Errorf("out of range: want ErrInvalidMove, got %v", err)
	}
	b2, _ := b.Result(tictactoe.Move{Row: 0, Col: 0})
	if _, err := b2.Result(tictactoe.Move{Row: 0, Col: 0}); !errors.Is(err, tictactoe.ErrInvalidMove) {
		t.Errorf("occupied: want ErrInvalidMove, got %v", err)
	}
	if b[0][0] != tictactoe.Empty {
		t.Error("Result mutated its receiver")
	}
	won := boardFrom(t,
		"XXX",
		"OO.",
		"...",
	)
	if _, err := won.Result(tictactoe.Move{Row: 2, Col: 2}); !errors.Is(err, tictactoe.ErrGameOver) {
		t.Errorf("finished game: want ErrGameOver, got %v", err)
	}
}

// TestWinnerAndUtility covers rows, columns, diagonals, and the draw.
func TestWinnerAndUtility(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want tictactoe.Mark
	}{
		{"row", []string{"XXX", "OO.", "..."}, tictactoe.X},
		{"column", []string{"OX.", "OX.", "O.X"}, tictactoe.O},
		{"diagonal", []string{"X.O", ".XO", "..X"}, tictactoe.X},
		{"anti-diagonal", []string{"X.O", ".OX", "O.X"}, tictactoe.O},
		{"draw", []string{"XOX", "XOO", "OXX"}, tictactoe.Empty},
		{"in progress", []string{"X..", ".O.", "..."}, tictactoe.Empty},
	}
	for _, tc := range cases {
		b := boardFrom(t, tc.rows...)
		if got := b.Winner(); got != tc.want {
			t.Errorf("%s: Winner = %v; want %v", tc.name, got, tc.want)
		}
	}

	if u := boardFrom(t, "XXX", "OO.", "...").Utility(); u != 1 {
		t.Errorf("X win Utility = %d; want 1", u)
	}
	if u := boardFrom(t, "OOO", "XX.", "X..").Utility(); u != -1 {
		t.Errorf("O win Utility = %d; want -1", u)
	}
}

// TestTerminal distinguishes wins, draws, and live positions.
func TestTerminal(t *testing.T) {
	if tictactoe.Initial().Terminal() {
		t.Error("initial board must not be terminal")
	}
	if !boardFrom(t, "XOX", "XOO", "OXX").Terminal() {
		t.Error("full board must be terminal")
	}
	if !boardFrom(t, "XXX", "OO.", "...").Terminal() {
		t.Error("won board must be terminal")
	}
}

// TestMinimax_Errors verifies terminal-board and cancellation handling.
func TestMinimax_Errors(t *testing.T) {
	won := boardFrom(t, "XXX", "OO.", "...")
	if _, err := tictactoe.Minimax(won); !errors.Is(err, tictactoe.ErrGameOver) {
		t.Errorf("terminal board: want ErrGameOver, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := tictactoe.Minimax(tictactoe.Initial(), tictactoe.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}

// TestMinimax_TakesWin ensures an immediate winning move is chosen.
func TestMinimax_TakesWin(t *testing.T) {
	b := boardFrom(t,
		"XX.",
		"OO.",
		"...",
	)
	// X to move (2 X's, 2 O's): (0,2) wins on the spot.
	m, err := tictactoe.Minimax(b)
	if err != nil {
		t.Fatal(err)
	}
	if m != (tictactoe.Move{Row: 0, Col: 2}) {
		t.Errorf("Minimax = %v; want (0,2)", m)
	}
}

// TestMinimax_BlocksLoss ensures the only non-losing reply is found.
func TestMinimax_BlocksLoss(t *testing.T) {
	// X:3, O:2 → O to move; X threatens (0,2). O must take it.
	b := boardFrom(t,
		"XX.",
		".OX",
		"..O",
	)
	m, err := tictactoe.Minimax(b)
	if err != nil {
		t.Fatal(err)
	}
	if m != (tictactoe.Move{Row: 0, Col: 2}) {
		t.Errorf("Minimax = %v; want blocking move (0,2)", m)
	}
}

// TestMinimax_PerfectPlayDraws plays both sides optimally from the start
// and asserts the classical result: a draw.
func TestMinimax_PerfectPlayDraws(t *testing.T) {
	b := tictactoe.Initial()
	for !b.Terminal() {
		m, err := tictactoe.Minimax(b)
		if err != nil {
			t.Fatal(err)
		}
		if b, err = b.Result(m); err != nil {
			t.Fatal(err)
		}
	}
	if w := b.Winner(); w != tictactoe.Empty {
		t.Errorf("perfect play produced winner %v; want draw", w)
	}
}

// TestMinimax_PruningEquivalence checks that alpha-beta never changes the
// chosen move, only the number of expanded nodes.
func TestMinimax_PruningEquivalence(t *testing.T) {
	positions := [][]string{
		{"...", "...", "..."},
		{"X..", "...", "..."},
		{"X..", ".O.", "..."},
		{"XO.", ".X.", "..O"},
	}
	for _, rows := range positions {
		b := boardFrom(t, rows...)

		var pruned, full int
		mp, err := tictactoe.Minimax(b,
			tictactoe.WithOnExpand(func(tictactoe.Move, int) { pruned++ }))
		if err != nil {
			t.Fatal(err)
		}
		mf, err := tictactoe.Minimax(b,
			tictactoe.WithoutPruning(),
			tictactoe.WithOnExpand(func(tictactoe.Move, int) { full++ }))
		if err != nil {
			t.Fatal(err)
		}
		if mp != mf {
			t.Errorf("%v: pruned move %v != full move %v", rows, mp, mf)
		}
		if pruned >= full {
			t.Errorf("%v: pruning expanded %d nodes, full search %d; want fewer", rows, pruned, full)
		}
	}
}

// TestBoardString spot-checks the text rendering.
func TestBoardString(t *testing.T) {
	b := boardFrom(t,
		"X.O",
		".X.",
		"..O",
	)
	want := "X| |O\n |X| \n | |O"
	if got := b.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
