package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aikit/pagerank"
)

var (
	pagerankDamping float64
	pagerankSamples int
	pagerankChains  int
	pagerankSeed    int64
)

// pagerankCmd ranks an HTML corpus both ways and prints the results.
var pagerankCmd = &cobra.Command{
	Use:   "pagerank <corpus-dir>",
	Short: "Rank a directory of HTML pages by PageRank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, err := pagerank.Crawl(args[0])
		if err != nil {
			return err
		}
		logger.Debug("corpus crawled",
			zap.String("dir", args[0]),
			zap.Int("pages", corpus.Len()))

		opts := []pagerank.Option{
			pagerank.WithContext(cmd.Context()),
			pagerank.WithDamping(pagerankDamping),
			pagerank.WithSamples(pagerankSamples),
			pagerank.WithChains(pagerankChains),
			pagerank.WithSeed(pagerankSeed),
		}

		sampled, err := pagerank.Sample(corpus, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "PageRank Results from Sampling (n = %d)\n", pagerankSamples)
		printRanks(cmd, corpus, sampled)

		iterated, err := pagerank.Iterate(corpus, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "PageRank Results from Iteration")
		printRanks(cmd, corpus, iterated)

		return nil
	},
}

// printRanks writes one "  page: 0.1234" line per page, sorted.
func printRanks(cmd *cobra.Command, corpus *pagerank.Corpus, ranks map[string]float64) {
	for _, page := range corpus.Pages() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.4f\n", page, ranks[page])
	}
}

func init() {
	pagerankCmd.Flags().Float64Var(&pagerankDamping, "damping", pagerank.DefaultDamping, "link-following probability")
	pagerankCmd.Flags().IntVar(&pagerankSamples, "samples", pagerank.DefaultSamples, "surfer steps per chain")
	pagerankCmd.Flags().IntVar(&pagerankChains, "chains", 1, "independent surfer chains to average")
	pagerankCmd.Flags().Int64Var(&pagerankSeed, "seed", 0, "sampler seed (0 = fixed default)")
	rootCmd.AddCommand(pagerankCmd)
}
