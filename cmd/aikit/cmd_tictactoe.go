package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aikit/tictactoe"
)

var tictactoeSide string

// tictactoeCmd plays an interactive game against the minimax engine.
var tictactoeCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Play tic-tac-toe against an optimal opponent",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var human tictactoe.Mark
		switch strings.ToUpper(tictactoeSide) {
		case "X":
			human = tictactoe.X
		case "O":
			human = tictactoe.O
		default:
			return fmt.Errorf("side must be X or O, got %q", tictactoeSide)
		}

		in := bufio.NewScanner(cmd.InOrStdin())
		out := cmd.OutOrStdout()
		board := tictactoe.Initial()

		fmt.Fprintf(out, "You play %s. Enter moves as \"row col\" (0-2).\n", human)
		for !board.Terminal() {
			fmt.Fprintf(out, "\n%s\n", board)
			if board.Player() == human {
				move, err := readMove(in, out)
				if err != nil {
					return err
				}
				next, err := board.Result(move)
				if errors.Is(err, tictactoe.ErrInvalidMove) {
					fmt.Fprintln(out, "Invalid move, try again.")
					continue
				}
				if err != nil {
					return err
				}
				board = next
				continue
			}

			move, err := tictactoe.Minimax(board, tictactoe.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Computer plays %d %d.\n", move.Row, move.Col)
			if board, err = board.Result(move); err != nil {
				return err
			}
		}

		fmt.Fprintf(out, "\n%s\n\n", board)
		switch board.Winner() {
		case tictactoe.Empty:
			fmt.Fprintln(out, "Draw.")
		case human:
			fmt.Fprintln(out, "You win.") // minimax never loses; kept for completeness
		default:
			fmt.Fprintln(out, "Computer wins.")
		}

		return nil
	},
}

// readMove parses a "row col" line from the player.
func readMove(in *bufio.Scanner, out io.Writer) (tictactoe.Move, error) {
	fmt.Fprint(out, "Your move: ")
	if !in.Scan() {
		return tictactoe.Move{}, fmt.Errorf("input closed mid-game")
	}
	var m tictactoe.Move
	if _, err := fmt.Sscanf(strings.TrimSpace(in.Text()), "%d %d", &m.Row, &m.Col); err != nil {
		return tictactoe.Move{Row: -1, Col: -1}, nil // forces the invalid-move path
	}

	return m, nil
}

func init() {
	tictactoeCmd.Flags().StringVar(&tictactoeSide, "side", "X", "side to play: X moves first")
	rootCmd.AddCommand(tictactoeCmd)
}
