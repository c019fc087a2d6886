package cmd

import (
	"fmt"
	"strconv"

	"github.com/JonathanHolmbergOy/fizzbuzz/fizzbuzz"
	"github.com/spf13/cobra"
)

// NewClassifyCmd creates and returns the classify subcommand for the fizzbuzz CLI.
func NewClassifyCmd() *cobra.Command {
	var showNumber bool

	cmd := &cobra.Command{
		Use:   "classify N [N...]",
		Short: "Print the label of individual numbers",
		Long: `Print the FizzBuzz label of each argument, one per line.

Any integer is accepted, including zero (FizzBuzz) and negative numbers.
Separate negative numbers from flags with "--":

  fizzbuzz classify -- -3 -7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid argument %q: %w", arg, err)
				}
				numbers = append(numbers, n)
			}

			w := cmd.OutOrStdout()
			for _, n := range numbers {
				if showNumber {
					fmt.Fprintf(w, "%d\t%s\n", n, fizzbuzz.Classify(n))
					continue
				}
				fmt.Fprintln(w, fizzbuzz.Classify(n))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showNumber, "show-number", false, "Prefix each label with its number")

	return cmd
}
