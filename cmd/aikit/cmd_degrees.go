package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aikit/degrees"
)

// degreesCmd finds the separation between two actors. Names may be given
// as arguments or entered interactively; ambiguous names prompt for an ID.
var degreesCmd = &cobra.Command{
	Use:   "degrees <data-dir> [source] [target]",
	Short: "Degrees of separation between two actors",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := degrees.Load(args[0])
		if err != nil {
			return err
		}
		logger.Debug("data set loaded", zap.String("dir", args[0]))

		in := bufio.NewScanner(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		sourceID, err := resolvePerson(g, in, out, argOrPrompt(args, 1, in, out, "Name: "))
		if err != nil {
			return err
		}
		targetID, err := resolvePerson(g, in, out, argOrPrompt(args, 2, in, out, "Name: "))
		if err != nil {
			return err
		}

		path, err := g.ShortestPath(sourceID, targetID, degrees.WithContext(cmd.Context()))
		if errors.Is(err, degrees.ErrNotConnected) {
			fmt.Fprintln(out, "Not connected.")

			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%d degrees of separation.\n", len(path))
		prevID := sourceID
		for i, step := range path {
			prev, _ := g.Person(prevID)
			next, _ := g.Person(step.PersonID)
			movie, _ := g.Movie(step.MovieID)
			fmt.Fprintf(out, "%d: %s and %s starred in %s\n", i+1, prev.Name, next.Name, movie.Title)
			prevID = step.PersonID
		}

		return nil
	},
}

// argOrPrompt returns args[i] when present, otherwise reads a line.
func argOrPrompt(args []string, i int, in *bufio.Scanner, out io.Writer, prompt string) string {
	if i < len(args) {
		return args[i]
	}
	fmt.Fprint(out, prompt)
	if !in.Scan() {
		return ""
	}

	return strings.TrimSpace(in.Text())
}

// resolvePerson maps a name to a person ID, prompting when ambiguous.
func resolvePerson(g *degrees.Graph, in *bufio.Scanner, out io.Writer, name string) (string, error) {
	ids := g.PersonIDs(name)
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %q", degrees.ErrPersonNotFound, name)
	case 1:
		return ids[0], nil
	}

	fmt.Fprintf(out, "Which %q?\n", name)
	for _, id := range ids {
		p, _ := g.Person(id)
		fmt.Fprintf(out, "  ID %s: %s, born %s\n", p.ID, p.Name, p.Birth)
	}
	fmt.Fprint(out, "Intended Person ID: ")
	if !in.Scan() {
		return "", fmt.Errorf("%w: no ID chosen for %q", degrees.ErrPersonNotFound, name)
	}
	choice := strings.TrimSpace(in.Text())
	for _, id := range ids {
		if id == choice {
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: ID %q does not match %q", degrees.ErrPersonNotFound, choice, name)
}

func init() {
	rootCmd.AddCommand(degreesCmd)
}
