package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/JonathanHolmbergOy/fizzbuzz/fizzbuzz"
	"github.com/JonathanHolmbergOy/fizzbuzz/render"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates and returns the generate subcommand for the fizzbuzz CLI.
func NewGenerateCmd() *cobra.Command {
	var (
		start    int
		length   int
		strategy string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the FizzBuzz sequence for a range",
		Long: `Print the labels for every integer in [start, start+length-1].

The cosine strategy evaluates the closed-form formula. The rules strategy walks
the divisor table and exists as a reference implementation.

Formats:
  - text: one label per line
  - color: one label per line, colored by label
  - json: a single JSON document with a run ID and the labels`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), fizzbuzz.Bounds{Start: start, Length: length}, strategy, f)
		},
	}

	cmd.Flags().IntVarP(&start, "start", "s", fizzbuzz.DefaultBounds.Start, "First integer of the range")
	cmd.Flags().IntVarP(&length, "length", "n", fizzbuzz.DefaultBounds.Length, "Number of integers to evaluate")
	cmd.Flags().StringVar(&strategy, "strategy", fizzbuzz.StrategyCosine,
		fmt.Sprintf("Classification strategy (%s)", strings.Join(fizzbuzz.StrategyNames(), ", ")))
	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatText), "Output format (text, color, json)")

	return cmd
}

func runGenerate(w io.Writer, b fizzbuzz.Bounds, strategy string, format render.Format) error {
	classifier, err := fizzbuzz.ParseStrategy(strategy)
	if err != nil {
		return err
	}

	labels, err := fizzbuzz.GenerateWith(b, classifier)
	if err != nil {
		return err
	}

	switch format {
	case render.FormatColor:
		return render.Colored(w, labels)
	case render.FormatJSON:
		return render.NewDocument(b, strategy, labels).Encode(w)
	default:
		return render.Text(w, labels)
	}
}
