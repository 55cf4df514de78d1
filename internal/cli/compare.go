package cli

import (
	"github.com/spf13/cobra"

	"option-mc-pricer/internal/app"
)

var (
	compareContract contractFlags
	comparePaths    int
	compareRuns     int
	compareAlpha    float64
	compareSeed     uint64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Benchmark all estimator variants at an equal path budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.CompareOptions{
			Contract: compareContract.options(cmd),
			Paths:    comparePaths,
			Runs:     compareRuns,
			Alpha:    compareAlpha,
			BaseSeed: seedIfChanged(cmd, "base-seed", compareSeed),
		}
		return getApp().Compare(cmd.Context(), opts)
	},
}

func init() {
	compareContract.register(compareCmd)
	compareCmd.Flags().IntVar(&comparePaths, "paths", 0, "Paths per run; must be even so antithetic can participate (defaults to config)")
	compareCmd.Flags().IntVar(&compareRuns, "runs", 0, "Repeated seeded runs per method (defaults to config)")
	compareCmd.Flags().Float64Var(&compareAlpha, "alpha", 0, "Two-sided significance level (defaults to config)")
	compareCmd.Flags().Uint64Var(&compareSeed, "base-seed", 0, "First seed of the sweep (defaults to config)")
}
