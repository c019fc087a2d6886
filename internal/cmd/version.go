package cmd

import (
	"github.com/JonathanHolmbergOy/fizzbuzz/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates and returns the version subcommand for the fizzbuzz CLI.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}
