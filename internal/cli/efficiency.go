package cli

import (
	"github.com/spf13/cobra"

	"option-mc-pricer/internal/app"
)

var (
	efficiencyContract contractFlags
	efficiencyGrid     []int
	efficiencyRuns     int
	efficiencyAlpha    float64
	efficiencySeed     uint64
	efficiencyCSVPath  string
	efficiencyPNGPath  string
)

var efficiencyCmd = &cobra.Command{
	Use:   "efficiency",
	Short: "Chart confidence-interval width per estimator across path budgets",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.EfficiencyOptions{
			Contract: efficiencyContract.options(cmd),
			Grid:     efficiencyGrid,
			Runs:     efficiencyRuns,
			Alpha:    efficiencyAlpha,
			BaseSeed: seedIfChanged(cmd, "base-seed", efficiencySeed),
			CSVPath:  efficiencyCSVPath,
			PNGPath:  efficiencyPNGPath,
		}
		return getApp().Efficiency(cmd.Context(), opts)
	},
}

func init() {
	efficiencyContract.register(efficiencyCmd)
	efficiencyCmd.Flags().IntSliceVar(&efficiencyGrid, "grid", nil, "Path counts to evaluate (defaults to config)")
	efficiencyCmd.Flags().IntVar(&efficiencyRuns, "runs", 0, "Repeated seeded runs per grid point (defaults to config)")
	efficiencyCmd.Flags().Float64Var(&efficiencyAlpha, "alpha", 0, "Two-sided significance level (defaults to config)")
	efficiencyCmd.Flags().Uint64Var(&efficiencySeed, "base-seed", 0, "First seed of each sweep (defaults to config)")
	efficiencyCmd.Flags().StringVar(&efficiencyCSVPath, "csv", "", "Path to write CSV data")
	efficiencyCmd.Flags().StringVar(&efficiencyPNGPath, "png", "", "Path to write PNG chart")
}
