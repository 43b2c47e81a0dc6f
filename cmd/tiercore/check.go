package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tiercore/stability"
)

var (
	checkQuiet   bool
	checkVerbose bool
)

var checkCmd = &cobra.Command{
	Use:   "check <scenario.yaml>",
	Short: "Verify core stability of a scenario",
	Long: `Check loads a YAML scenario (win matrix + ordered tiers) and runs the
exhaustive core-stability search.

Prints a green verdict when the tiering is core-stable, or a red one with
the first blocking coalition found and the position it prefers. The search
is exponential in tier sizes; large scenarios take accordingly long.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false,
		"print only 'stable' or 'blocked'")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"log search diagnostics to stderr")
}

func runCheck(cmd *cobra.Command, args []string) error {
	sc, err := LoadScenario(args[0])
	if err != nil {
		return err
	}

	var opts []stability.Option
	if checkVerbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, stability.WithLogger(logger))
	}

	res, err := stability.Check(sc.Tiers, sc.Win, opts...)
	if err != nil {
		return fmt.Errorf("check scenario: %w", err)
	}

	if checkQuiet {
		if res.Stable {
			fmt.Println("stable")
		} else {
			fmt.Println("blocked")
		}

		return nil
	}

	if res.Stable {
		fmt.Printf("%s core-stable: no coalition can strictly improve all of its members\n",
			color.GreenString("✓"))

		return nil
	}

	fmt.Printf("%s blocked by coalition %v\n", color.RedString("✗"), res.Witness.Coalition)
	if res.Witness.Tier == 0 {
		fmt.Println("  the coalition prefers moving to the front")
	} else {
		fmt.Printf("  the coalition prefers the position after tier %d\n", res.Witness.Tier-1)
	}

	return nil
}
