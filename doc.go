// Package main provides the fizzbuzz command-line interface.
//
// Run without arguments, fizzbuzz prints the labels for 1 through 100, one per
// line. Labels are picked by a closed-form cosine series rather than modulo
// arithmetic.
//
// The binary supports multiple subcommands:
//   - generate: Print a sequence for a custom range, strategy or output format
//   - classify: Print the label of individual numbers
//   - verify: Cross-check the cosine classifier against the divisor rule table
//   - version: Print build metadata
package main
