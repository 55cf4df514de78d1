package app

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"option-mc-pricer/internal/pricing"
)

// PriceOptions configure a single pricing request.
type PriceOptions struct {
	Contract ContractOptions
	Method   string
	Paths    int
	Seed     *uint64
}

// Price runs one estimator against the configured contract and prints the
// estimate next to the analytic reference.
func (a *App) Price(ctx context.Context, opts PriceOptions) error {
	contract, optType, err := a.resolveContract(opts.Contract)
	if err != nil {
		return err
	}

	label := opts.Method
	if label == "" {
		label = a.Config.Pricing.Method
	}
	method, err := pricing.ParseMethod(label)
	if err != nil {
		return err
	}

	paths := opts.Paths
	if paths <= 0 {
		paths = a.Config.Pricing.Paths
	}

	req := pricing.Request{Contract: contract, Type: optType, Paths: paths, Seed: opts.Seed}
	estimate, err := pricing.Estimate(method, req)
	if err != nil {
		return err
	}

	analytic, err := pricing.AnalyticPrice(optType, contract)
	if err != nil {
		return err
	}

	a.Logger.Info().
		Str("method", method.String()).
		Str("type", optType.String()).
		Int("paths", paths).
		Float64("estimate", estimate).
		Float64("analytic", analytic).
		Msg("priced contract")

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Method\t%s\n", method)
	fmt.Fprintf(writer, "Type\t%s\n", optType)
	fmt.Fprintf(writer, "Paths\t%d\n", paths)
	fmt.Fprintf(writer, "Estimate\t%s\n", formatFloat(estimate, 4))
	fmt.Fprintf(writer, "Analytic\t%s\n", formatFloat(analytic, 4))
	fmt.Fprintf(writer, "Abs error\t%s\n", formatFloat(math.Abs(estimate-analytic), 4))
	return writer.Flush()
}
