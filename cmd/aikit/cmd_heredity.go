package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aikit/heredity"
)

var heredityModelPath string

// heredityCmd infers gene/trait posteriors for a family CSV file.
var heredityCmd = &cobra.Command{
	Use:   "heredity <data.csv>",
	Short: "Infer gene and trait probabilities for a family",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		family, err := heredity.LoadFamily(args[0])
		if err != nil {
			return err
		}
		logger.Debug("family loaded",
			zap.String("file", args[0]),
			zap.Int("members", len(family)))

		opts := []heredity.Option{heredity.WithContext(cmd.Context())}
		if heredityModelPath != "" {
			model, err := heredity.LoadModel(heredityModelPath)
			if err != nil {
				return err
			}
			opts = append(opts, heredity.WithModel(model))
		}

		post, err := heredity.Infer(family, opts...)
		if err != nil {
			return err
		}

		names := family.Names()
		sort.Strings(names)
		out := cmd.OutOrStdout()
		for _, name := range names {
			d := post[name]
			fmt.Fprintf(out, "%s:\n", name)
			fmt.Fprintln(out, "  Gene:")
			for c := heredity.MaxCopies; c >= 0; c-- {
				fmt.Fprintf(out, "    %d: %.4f\n", c, d.Gene[c])
			}
			fmt.Fprintln(out, "  Trait:")
			fmt.Fprintf(out, "    True: %.4f\n", d.Trait[1])
			fmt.Fprintf(out, "    False: %.4f\n", d.Trait[0])
		}

		return nil
	},
}

func init() {
	heredityCmd.Flags().StringVar(&heredityModelPath, "model", "", "YAML probability model (default: built-in table)")
	rootCmd.AddCommand(heredityCmd)
}
