package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aikit/catalog"
)

var (
	catalogReadme string
	catalogRoot   string
)

// catalogCmd groups index-related subcommands.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Work with the repository's project index",
}

// catalogVerifyCmd re-parses the README table and checks it against the
// repository; a non-zero exit means the index drifted.
var catalogVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the README project table against the repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := catalog.ParseFile(catalogReadme)
		if err != nil {
			return err
		}
		logger.Debug("index parsed",
			zap.String("readme", catalogReadme),
			zap.Int("projects", len(projects)))

		if err := catalog.Verify(catalogRoot, projects); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Index is consistent: %d projects verified.\n", len(projects))

		return nil
	},
}

func init() {
	catalogVerifyCmd.Flags().StringVar(&catalogReadme, "readme", "README.md", "index document to parse")
	catalogVerifyCmd.Flags().StringVar(&catalogRoot, "root", ".", "repository root to verify against")
	catalogCmd.AddCommand(catalogVerifyCmd)
	rootCmd.AddCommand(catalogCmd)
}
