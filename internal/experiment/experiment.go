// Package experiment orchestrates repeated estimator runs: seed sweeps,
// method comparisons, and convergence studies over the pricing engine.
package experiment

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"option-mc-pricer/internal/pricing"
	"option-mc-pricer/internal/stats"
)

// Sweep repeats one estimator across runs consecutive seeds starting at
// baseSeed. Each run owns its seed and generator, so the sweep is an
// embarrassingly parallel map; results land at their seed index, making the
// output order deterministic regardless of completion order.
func Sweep(ctx context.Context, m pricing.Method, base pricing.Request, runs int, baseSeed uint64, workers int) ([]float64, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("%w: runs must be positive, got %d", pricing.ErrInvalidRequest, runs)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	estimates := make([]float64, runs)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i := 0; i < runs; i++ {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			req := base
			seed := baseSeed + uint64(i)
			req.Seed = &seed

			estimate, err := pricing.Estimate(m, req)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			estimates[i] = estimate
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return estimates, nil
}

// CompareConfig parameterises a fixed-budget comparison of all estimator
// variants. Paths must be even so the antithetic variant can participate.
type CompareConfig struct {
	Contract pricing.Contract
	Type     pricing.OptionType
	Paths    int
	Runs     int
	BaseSeed uint64
	Alpha    float64
	Workers  int
}

// MethodSummary aggregates one estimator's sample set.
type MethodSummary struct {
	Method   pricing.Method
	Interval stats.Interval
	Variance float64
	AbsError float64 // |mean - analytic reference|
	Elapsed  time.Duration
}

// CompareMethods runs every estimator variant over the same seed range and
// path budget and summarises each sample set against the analytic reference.
// Returns the per-method summaries and the reference price itself.
func CompareMethods(ctx context.Context, cfg CompareConfig) ([]MethodSummary, float64, error) {
	analytic, err := pricing.AnalyticPrice(cfg.Type, cfg.Contract)
	if err != nil {
		return nil, 0, err
	}

	base := pricing.Request{Contract: cfg.Contract, Type: cfg.Type, Paths: cfg.Paths}
	alpha := cfg.Alpha
	if alpha == 0 {
		alpha = stats.DefaultAlpha
	}

	summaries := make([]MethodSummary, 0, len(pricing.Methods()))
	for _, m := range pricing.Methods() {
		start := time.Now()
		samples, err := Sweep(ctx, m, base, cfg.Runs, cfg.BaseSeed, cfg.Workers)
		if err != nil {
			return nil, 0, fmt.Errorf("%s sweep: %w", m, err)
		}
		elapsed := time.Since(start)

		interval, err := stats.ConfidenceInterval(samples, alpha)
		if err != nil {
			return nil, 0, fmt.Errorf("%s interval: %w", m, err)
		}

		summaries = append(summaries, MethodSummary{
			Method:   m,
			Interval: interval,
			Variance: stats.Variance(samples),
			AbsError: math.Abs(interval.Mean - analytic),
			Elapsed:  elapsed,
		})
	}
	return summaries, analytic, nil
}

// ConvergencePoint records one grid step of a convergence study.
type ConvergencePoint struct {
	Paths    int
	Estimate float64
	AbsError float64
}

// Convergence prices the contract with the plain estimator at each path count
// in grid, all under the same seed, and records the absolute error against
// the analytic reference. The error is expected to decay as 1/sqrt(paths).
func Convergence(ctx context.Context, c pricing.Contract, t pricing.OptionType, grid []int, seed uint64) ([]ConvergencePoint, float64, error) {
	if len(grid) == 0 {
		return nil, 0, fmt.Errorf("%w: empty path grid", pricing.ErrInvalidRequest)
	}

	analytic, err := pricing.AnalyticPrice(t, c)
	if err != nil {
		return nil, 0, err
	}

	points := make([]ConvergencePoint, 0, len(grid))
	for _, paths := range grid {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		s := seed
		estimate, err := pricing.PricePlain(pricing.Request{Contract: c, Type: t, Paths: paths, Seed: &s})
		if err != nil {
			return nil, 0, fmt.Errorf("paths %d: %w", paths, err)
		}
		points = append(points, ConvergencePoint{
			Paths:    paths,
			Estimate: estimate,
			AbsError: math.Abs(estimate - analytic),
		})
	}
	return points, analytic, nil
}

// EfficiencyPoint records the confidence-interval width one method achieves
// at a given path budget.
type EfficiencyPoint struct {
	Paths int
	Width float64
}

// EfficiencySeries is one method's width curve over the path grid.
type EfficiencySeries struct {
	Method pricing.Method
	Points []EfficiencyPoint
}

// EfficiencyConfig parameterises the width-versus-paths study.
type EfficiencyConfig struct {
	Contract pricing.Contract
	Type     pricing.OptionType
	Grid     []int
	Runs     int
	BaseSeed uint64
	Alpha    float64
	Workers  int
}

// Efficiency measures, for every estimator variant and every path budget in
// the grid, the width of the confidence interval over repeated seeded runs.
// Narrower at equal budget means a more efficient estimator.
func Efficiency(ctx context.Context, cfg EfficiencyConfig) ([]EfficiencySeries, error) {
	if len(cfg.Grid) == 0 {
		return nil, fmt.Errorf("%w: empty path grid", pricing.ErrInvalidRequest)
	}

	alpha := cfg.Alpha
	if alpha == 0 {
		alpha = stats.DefaultAlpha
	}

	series := make([]EfficiencySeries, 0, len(pricing.Methods()))
	for _, m := range pricing.Methods() {
		points := make([]EfficiencyPoint, 0, len(cfg.Grid))
		for _, paths := range cfg.Grid {
			base := pricing.Request{Contract: cfg.Contract, Type: cfg.Type, Paths: paths}
			samples, err := Sweep(ctx, m, base, cfg.Runs, cfg.BaseSeed, cfg.Workers)
			if err != nil {
				return nil, fmt.Errorf("%s at %d paths: %w", m, paths, err)
			}
			interval, err := stats.ConfidenceInterval(samples, alpha)
			if err != nil {
				return nil, fmt.Errorf("%s at %d paths: %w", m, paths, err)
			}
			points = append(points, EfficiencyPoint{Paths: paths, Width: interval.Width()})
		}
		series = append(series, EfficiencySeries{Method: m, Points: points})
	}
	return series, nil
}
