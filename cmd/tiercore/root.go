package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tiercore",
	Short: "Core-stability verifier for tiered coalition structures",
	Long: `tiercore decides whether a tier list over a set of agents is core-stable:
whether any coalition of agents could strictly improve every one of its
members by repositioning to an earlier tier.

Scenarios are YAML files carrying the pairwise win matrix and the ordered
tiers; see 'tiercore check --help' for the format.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
