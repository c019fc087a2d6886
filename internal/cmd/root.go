package cmd

import (
	"github.com/JonathanHolmbergOy/fizzbuzz/fizzbuzz"
	"github.com/JonathanHolmbergOy/fizzbuzz/render"
	"github.com/JonathanHolmbergOy/fizzbuzz/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the fizzbuzz CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fizzbuzz",
		Short: "fizzbuzz - FizzBuzz computed with a closed-form cosine formula",
		Long: `fizzbuzz prints the FizzBuzz sequence.

Multiples of 3 become "Fizz", multiples of 5 become "Buzz", multiples of both
become "FizzBuzz" and every other number is printed as is. Labels are chosen by
a finite Fourier series instead of modulo arithmetic.

Run without arguments to print 1 through 100, one label per line.

Use subcommands to perform different operations:
  - generate: Print a sequence for a custom range, strategy or format
  - classify: Print the label of individual numbers
  - verify: Cross-check the cosine classifier against the rule table`,
		Version:       version.GetFullVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), fizzbuzz.DefaultBounds, fizzbuzz.StrategyCosine, render.FormatText)
		},
	}

	groupSequence := "sequence"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupSequence,
		Title: "Sequence Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	generateCmd := NewGenerateCmd()
	classifyCmd := NewClassifyCmd()
	verifyCmd := NewVerifyCmd()
	versionCmd := NewVersionCmd()

	generateCmd.GroupID = groupSequence
	classifyCmd.GroupID = groupSequence
	verifyCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
