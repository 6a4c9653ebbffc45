package tictactoe_test

import (
	"fmt"

	"github.com/katalvlaran/aikit/tictactoe"
)

// ExampleMinimax demonstrates finding the winning move in a simple position.
func ExampleMinimax() {
	var b tictactoe.Board
	b[0][0], b[0][1] = tictactoe.X, tictactoe.X
	b[1][0], b[1][1] = tictactoe.O, tictactoe.O

	m, err := tictactoe.Minimax(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("X plays (%d,%d)\n", m.Row, m.Col)
	// Output:
	// X plays (0,2)
}

// ExampleBoard_Result shows that boards are values: moves never mutate
// the position they are played on.
func ExampleBoard_Result() {
	b := tictactoe.Initial()
	next, err := b.Result(tictactoe.Move{Row: 1, Col: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(b.Player(), "to move on the original")
	fmt.Println(next.Player(), "to move on the result")
	// Output:
	// X to move on the original
	// O to move on the result
}
