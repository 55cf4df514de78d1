package cli

import (
	"github.com/spf13/cobra"

	"option-mc-pricer/internal/app"
)

var (
	priceContract contractFlags
	priceMethod   string
	pricePaths    int
	priceSeed     uint64
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price one contract with a single estimator",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.PriceOptions{
			Contract: priceContract.options(cmd),
			Method:   priceMethod,
			Paths:    pricePaths,
			Seed:     seedIfChanged(cmd, "seed", priceSeed),
		}
		return getApp().Price(cmd.Context(), opts)
	},
}

func init() {
	priceContract.register(priceCmd)
	priceCmd.Flags().StringVar(&priceMethod, "method", "", "Estimator: plain, antithetic, or control-variate (defaults to config)")
	priceCmd.Flags().IntVar(&pricePaths, "paths", 0, "Number of Monte Carlo paths (defaults to config)")
	priceCmd.Flags().Uint64Var(&priceSeed, "seed", 0, "Seed for reproducible draws (unseeded when omitted)")
}
