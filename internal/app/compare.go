package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"option-mc-pricer/internal/experiment"
)

// CompareOptions configure the fixed-budget estimator comparison.
type CompareOptions struct {
	Contract ContractOptions
	Paths    int
	Runs     int
	Alpha    float64
	BaseSeed *uint64
}

// Compare sweeps every estimator variant over the same seeds and path budget
// and prints a per-method summary table against the analytic price.
func (a *App) Compare(ctx context.Context, opts CompareOptions) error {
	contract, optType, err := a.resolveContract(opts.Contract)
	if err != nil {
		return err
	}

	cfg := experiment.CompareConfig{
		Contract: contract,
		Type:     optType,
		Paths:    a.Config.Pricing.Paths,
		Runs:     a.Config.Experiment.Runs,
		BaseSeed: a.Config.Experiment.BaseSeed,
		Alpha:    a.Config.Experiment.Alpha,
		Workers:  a.Config.Experiment.Workers,
	}
	if opts.Paths > 0 {
		cfg.Paths = opts.Paths
	}
	if opts.Runs > 0 {
		cfg.Runs = opts.Runs
	}
	if opts.Alpha > 0 {
		cfg.Alpha = opts.Alpha
	}
	if opts.BaseSeed != nil {
		cfg.BaseSeed = *opts.BaseSeed
	}

	a.Logger.Info().
		Int("paths", cfg.Paths).
		Int("runs", cfg.Runs).
		Float64("alpha", cfg.Alpha).
		Msg("comparing estimator variants")

	summaries, analytic, err := experiment.CompareMethods(ctx, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Analytic %s price: %s\n\n", optType, formatFloat(analytic, 4))

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Method\tPrice\tCI Lower\tCI Upper\tCI Width\tVariance\tAbs Error\tElapsed")
	for _, s := range summaries {
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Method,
			formatFloat(s.Interval.Mean, 5),
			formatFloat(s.Interval.Lower, 5),
			formatFloat(s.Interval.Upper, 5),
			formatFloat(s.Interval.Width(), 6),
			formatFloat(s.Variance, 8),
			formatFloat(s.AbsError, 6),
			formatDuration(s.Elapsed),
		)
	}
	return writer.Flush()
}
