package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/lorem/loremipsum"
	"github.com/s0up4200/lorem/presenter"
)

var (
	batchCount       int
	batchParagraphs  int
	batchConcurrency int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate several independent lorem ipsum texts",
	Long: `Issue --count independent requests and print each result in request order.

Requests run concurrently, at most --concurrency at a time. Each request is
sent separately; nothing is deduplicated or merged.`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVarP(&batchCount, "count", "n", 2, "number of requests")
	batchCmd.Flags().IntVarP(&batchParagraphs, "paragraphs", "p", 1, "number of paragraphs per request")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "maximum concurrent requests (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	n := cfg.Generate.Paragraphs
	if cmd.Flags().Changed("paragraphs") {
		n = batchParagraphs
	}

	concurrency := cfg.Batch.Concurrency
	if batchConcurrency > 0 {
		concurrency = batchConcurrency
	}

	results, err := generateBatch(cmd.Context(), generator, batchCount, n, concurrency)
	if err != nil {
		logger.Error().Err(err).Msg("Batch generation failed")
		if loremipsum.KindOf(err) != nil {
			return errors.New(presenter.Message(err))
		}
		return err
	}

	return printBatch(cmd.OutOrStdout(), results)
}

// generateBatch runs count independent Generate calls and returns the
// results in call order. The first failure cancels the remaining calls.
func generateBatch(ctx context.Context, gen loremipsum.Generator, count, paragraphs, concurrency int) ([]loremipsum.TextResponse, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must not be negative: %d", count)
	}
	if err := loremipsum.ValidateParagraphs(paragraphs); err != nil {
		return nil, err
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]loremipsum.TextResponse, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range count {
		g.Go(func() error {
			resp, err := gen.Generate(ctx, paragraphs)
			if err != nil {
				return fmt.Errorf("request %d: %w", i+1, err)
			}
			results[i] = resp

			logger.Debug().
				Int("request", i+1).
				Int("paragraphs", resp.NumberOfParagraphs()).
				Msg("Batch request completed")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info().Int("requests", count).Int("concurrency", concurrency).Msg("Batch completed")
	return results, nil
}

func printBatch(out io.Writer, results []loremipsum.TextResponse) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %d/%d (%d paragraphs)\n", strings.Repeat("━", 3), i+1, len(results), r.NumberOfParagraphs())
		if err := printText(out, r.Text, nil); err != nil {
			return err
		}
	}
	return nil
}
