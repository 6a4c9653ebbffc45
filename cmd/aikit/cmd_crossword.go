package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aikit/crossword"
)

var crosswordOutput string

// crosswordCmd generates a crossword from a structure and word list.
var crosswordCmd = &cobra.Command{
	Use:   "crossword <structure> <words>",
	Short: "Fill a crossword grid from a word list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cw, err := crossword.LoadCrossword(args[0], args[1])
		if err != nil {
			return err
		}
		logger.Debug("puzzle loaded",
			zap.Int("variables", len(cw.Variables)),
			zap.Int("words", len(cw.Words)))

		assignment, err := crossword.NewGenerator(cw).Solve(
			crossword.WithContext(cmd.Context()),
		)
		if errors.Is(err, crossword.ErrNoSolution) {
			fmt.Fprintln(cmd.OutOrStdout(), "No solution.")

			return nil
		}
		if err != nil {
			return err
		}

		grid := cw.Render(assignment)
		fmt.Fprintln(cmd.OutOrStdout(), grid)
		if crosswordOutput != "" {
			if err := os.WriteFile(crosswordOutput, []byte(grid+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %q: %w", crosswordOutput, err)
			}
		}

		return nil
	},
}

func init() {
	crosswordCmd.Flags().StringVarP(&crosswordOutput, "output", "o", "", "also write the solved grid to a file")
	rootCmd.AddCommand(crosswordCmd)
}
