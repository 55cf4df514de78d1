package cli

import (
	"github.com/spf13/cobra"

	"option-mc-pricer/internal/app"
)

var (
	convergenceContract contractFlags
	convergenceGrid     []int
	convergenceSeed     uint64
	convergenceCSVPath  string
	convergencePNGPath  string
)

var convergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Study plain MC error decay against the analytic price",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ConvergenceOptions{
			Contract: convergenceContract.options(cmd),
			Grid:     convergenceGrid,
			Seed:     convergenceSeed,
			CSVPath:  convergenceCSVPath,
			PNGPath:  convergencePNGPath,
		}
		return getApp().Convergence(cmd.Context(), opts)
	},
}

func init() {
	convergenceContract.register(convergenceCmd)
	convergenceCmd.Flags().IntSliceVar(&convergenceGrid, "grid", nil, "Path counts to evaluate (defaults to config)")
	convergenceCmd.Flags().Uint64Var(&convergenceSeed, "seed", 42, "Seed shared by every grid point")
	convergenceCmd.Flags().StringVar(&convergenceCSVPath, "csv", "", "Path to write CSV data")
	convergenceCmd.Flags().StringVar(&convergencePNGPath, "png", "", "Path to write PNG chart")
}
