package cli

import (
	"github.com/spf13/cobra"

	"option-mc-pricer/internal/app"
)

// contractFlags collects the per-command contract override flags. Only flags
// the user actually set override the configured defaults, so a zero rate on
// the command line still wins over config.
type contractFlags struct {
	spot     float64
	strike   float64
	rate     float64
	sigma    float64
	maturity float64
	optType  string
}

func (f *contractFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.spot, "spot", 0, "Spot price S0 (defaults to config)")
	cmd.Flags().Float64Var(&f.strike, "strike", 0, "Strike price K (defaults to config)")
	cmd.Flags().Float64Var(&f.rate, "rate", 0, "Risk-free rate r (defaults to config)")
	cmd.Flags().Float64Var(&f.sigma, "sigma", 0, "Volatility sigma (defaults to config)")
	cmd.Flags().Float64Var(&f.maturity, "maturity", 0, "Maturity T in years (defaults to config)")
	cmd.Flags().StringVar(&f.optType, "type", "", "Option type: call or put (defaults to config)")
}

func (f *contractFlags) options(cmd *cobra.Command) app.ContractOptions {
	opts := app.ContractOptions{Type: f.optType}
	if cmd.Flags().Changed("spot") {
		opts.Spot = &f.spot
	}
	if cmd.Flags().Changed("strike") {
		opts.Strike = &f.strike
	}
	if cmd.Flags().Changed("rate") {
		opts.Rate = &f.rate
	}
	if cmd.Flags().Changed("sigma") {
		opts.Sigma = &f.sigma
	}
	if cmd.Flags().Changed("maturity") {
		opts.Maturity = &f.maturity
	}
	return opts
}

func seedIfChanged(cmd *cobra.Command, name string, value uint64) *uint64 {
	if cmd.Flags().Changed(name) {
		return &value
	}
	return nil
}
