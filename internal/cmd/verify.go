package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/JonathanHolmbergOy/fizzbuzz/fizzbuzz"
	"github.com/spf13/cobra"
)

// ErrMismatch is returned by verify when the strategies disagree.
var ErrMismatch = errors.New("classifier mismatch")

// NewVerifyCmd creates and returns the verify subcommand for the fizzbuzz CLI.
// It cross-checks the closed-form classifier against the divisor rule table.
func NewVerifyCmd() *cobra.Command {
	var (
		start   int
		length  int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the cosine classifier against the rule table",
		Long: `Evaluate both classification strategies over a range and report every
number where they disagree. Exits with an error if any mismatch is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, fizzbuzz.Bounds{Start: start, Length: length}, verbose)
		},
	}

	cmd.Flags().IntVarP(&start, "start", "s", fizzbuzz.DefaultBounds.Start, "First integer of the range")
	cmd.Flags().IntVarP(&length, "length", "n", 1_000_000, "Number of integers to check")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runVerify(cmd *cobra.Command, b fizzbuzz.Bounds, verbose bool) error {
	if err := b.Validate(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	if verbose {
		logger.Printf("Verifying %d..%d", b.Start, b.End())
	}

	checked, mismatches := 0, 0
	for n, label := range b.All(fizzbuzz.Classify) {
		checked++
		if want := fizzbuzz.DefaultRules.Classify(n); label != want {
			mismatches++
			fmt.Fprintf(w, "  - %d: cosine=%q rules=%q\n", n, label, want)
		}
		if verbose && checked%100_000 == 0 {
			logger.Printf("Progress: %d numbers checked", checked)
		}
	}

	fmt.Fprintf(w, "Checked %d numbers, %d mismatches\n", checked, mismatches)
	if mismatches > 0 {
		return fmt.Errorf("%w: %d of %d numbers", ErrMismatch, mismatches, checked)
	}
	return nil
}
