// Package cmd provides the command-line interface implementation for fizzbuzz.
//
// It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: prints the default 1..100 sequence when run without a subcommand
//   - generate: prints a sequence for any range, strategy and output format
//   - classify: prints the label of individual integers
//   - verify: cross-checks the closed-form classifier against the rule table
//   - version: prints build metadata
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command.
package cmd
