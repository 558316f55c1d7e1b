package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/lorem/clipboard"
	"github.com/s0up4200/lorem/filter"
	"github.com/s0up4200/lorem/loremipsum"
	"github.com/s0up4200/lorem/presenter"
)

var (
	paragraphs int
	copyText   bool
	filterExpr string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [paragraphs]",
	Short: "Generate lorem ipsum text",
	Long: `Request lorem ipsum text from api-ninjas and print it.

The paragraph count can be given as an argument or with --paragraphs.
Use --filter to keep only paragraphs matching an expression, for example:

  lorem generate 5 --filter 'Words > 40'
  lorem generate 3 --filter 'hasWord(Text, "lorem") or Number == 1'

Available fields: Text, Index, Number, Total, Words, Chars, Sentences.
Helpers: hasWord(text, word), containsFold(text, substr).`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&paragraphs, "paragraphs", "p", 1, "number of paragraphs to generate")
	generateCmd.Flags().BoolVarP(&copyText, "copy", "c", false, "copy the generated text to the clipboard")
	generateCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "only print paragraphs matching this expression")
}

// generateOptions is the resolved input of one generate run
type generateOptions struct {
	Paragraphs int
	Filter     string
	Copy       bool
}

// resolveGenerateOptions merges config defaults, flags and the positional argument
func resolveGenerateOptions(cmd *cobra.Command, args []string) (generateOptions, error) {
	opts := generateOptions{
		Paragraphs: cfg.Generate.Paragraphs,
		Filter:     cfg.Generate.Filter,
		Copy:       cfg.Generate.Copy,
	}

	if cmd.Flags().Changed("paragraphs") {
		opts.Paragraphs = paragraphs
	}
	if cmd.Flags().Changed("filter") {
		opts.Filter = filterExpr
	}
	if cmd.Flags().Changed("copy") {
		opts.Copy = copyText
	}

	if len(args) == 1 {
		if cmd.Flags().Changed("paragraphs") {
			return opts, fmt.Errorf("paragraph count given both as argument and --paragraphs")
		}
		n, err := presenter.ParseParagraphs(args[0])
		if err != nil {
			return opts, err
		}
		opts.Paragraphs = n
	}

	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := resolveGenerateOptions(cmd, args)
	if err != nil {
		return err
	}

	var clip clipboard.Writer
	if opts.Copy {
		sys, err := clipboard.NewSystem()
		if err != nil {
			return err
		}
		clip = sys
	}

	return generate(cmd.Context(), cmd.OutOrStdout(), presenter.New(generator, clip, logger), opts)
}

// generate runs one request through the presenter and writes the result to out
func generate(ctx context.Context, out io.Writer, view *presenter.Presenter, opts generateOptions) error {
	var f filter.Filter
	if opts.Filter != "" {
		var err error
		f, err = filter.Compile(opts.Filter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	logger.Debug().Int("paragraphs", opts.Paragraphs).Msg("Generating lorem ipsum")

	state, err := view.Generate(ctx, opts.Paragraphs)
	if err != nil {
		logger.Error().Err(err).Int("paragraphs", opts.Paragraphs).Msg("Failed to generate lorem ipsum")
		return errors.New(state.ErrorMessage)
	}

	if err := printText(out, state.GeneratedText, f); err != nil {
		return err
	}

	if !opts.Copy {
		return nil
	}

	copied, err := view.Copy()
	if err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	if copied {
		logger.Info().Msg("Copied generated text to clipboard")
	} else {
		logger.Warn().Msg("Nothing to copy, the generated text is empty")
	}

	return nil
}

// printText writes text, or only the paragraphs f keeps when f is set
func printText(out io.Writer, text string, f filter.Filter) error {
	if f == nil {
		_, err := fmt.Fprint(out, text)
		if err == nil && text != "" && !strings.HasSuffix(text, "\n") {
			_, err = fmt.Fprintln(out)
		}
		return err
	}

	kept, err := filter.Apply(f, loremipsum.TextResponse{Text: text}.Paragraphs())
	if err != nil {
		return err
	}

	logger.Debug().
		Str("filter", f.Expression()).
		Int("kept", len(kept)).
		Msg("Applied paragraph filter")

	for _, p := range kept {
		if _, err := fmt.Fprintln(out, p); err != nil {
			return err
		}
	}
	return nil
}
