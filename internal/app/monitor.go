package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"option-mc-pricer/internal/alerting"
	"option-mc-pricer/internal/experiment"
	"option-mc-pricer/internal/scheduler"
)

// Run executes the long-running estimator-quality monitor: every interval it
// re-runs a small method comparison on the configured contract and alerts
// when any estimator's mean drifts from the analytic price by more than the
// configured tolerance. A healthy engine should never fire; a firing monitor
// points at a broken draw source or estimator regression.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	notifier := a.newNotifier()
	if a.Config.Alerting.Enabled && notifier == nil {
		a.Logger.Warn().Msg("alerting enabled but no channel configured; drift will only be logged")
	}

	sched := scheduler.New(scheduler.Options{
		Interval:     a.Config.Monitor.Interval,
		AlignToStart: a.Config.Monitor.AlignToBucket,
		StartupDelay: a.Config.Monitor.StartupDelay,
	}, a.Logger)

	a.Logger.Info().
		Dur("interval", a.Config.Monitor.Interval).
		Float64("tolerance_pct", a.Config.Monitor.TolerancePct).
		Msg("starting estimator monitor")

	err := sched.Run(ctx, func(ctx context.Context, bucket time.Time) error {
		return a.checkBucket(ctx, bucket, notifier)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error().Err(err).Msg("monitor terminated with error")
		return err
	}

	a.Logger.Info().Msg("estimator monitor stopped")
	return nil
}

// checkBucket 执行单个时间桶的估计量质量检查。
func (a *App) checkBucket(ctx context.Context, bucket time.Time, notifier alerting.Notifier) error {
	contract, optType, err := a.resolveContract(ContractOptions{})
	if err != nil {
		return err
	}

	// Vary the seed range per bucket so consecutive checks are independent.
	baseSeed := a.Config.Experiment.BaseSeed + uint64(bucket.Unix())

	summaries, analytic, err := experiment.CompareMethods(ctx, experiment.CompareConfig{
		Contract: contract,
		Type:     optType,
		Paths:    a.Config.Monitor.Paths,
		Runs:     a.Config.Monitor.Runs,
		BaseSeed: baseSeed,
		Alpha:    a.Config.Experiment.Alpha,
		Workers:  a.Config.Experiment.Workers,
	})
	if err != nil {
		return err
	}

	tolerance := a.Config.Monitor.TolerancePct
	for _, s := range summaries {
		deviationPct := s.AbsError / analytic * 100

		a.Logger.Info().Time("bucket", bucket).
			Str("method", s.Method.String()).
			Float64("estimate", s.Interval.Mean).
			Float64("analytic", analytic).
			Float64("deviation_pct", deviationPct).
			Msg("estimator checked")

		if deviationPct <= tolerance {
			continue
		}

		a.Logger.Warn().Time("bucket", bucket).
			Str("method", s.Method.String()).
			Float64("deviation_pct", deviationPct).
			Float64("tolerance_pct", tolerance).
			Msg("estimator drift above tolerance")

		if !a.Config.Alerting.Enabled || notifier == nil {
			continue
		}

		note := alerting.Notification{
			Bucket:       bucket,
			Method:       s.Method.String(),
			Estimate:     decimal.NewFromFloat(s.Interval.Mean),
			Analytic:     decimal.NewFromFloat(analytic),
			DeviationPct: decimal.NewFromFloat(deviationPct),
			TolerancePct: decimal.NewFromFloat(tolerance),
			Paths:        a.Config.Monitor.Paths,
			Runs:         a.Config.Monitor.Runs,
			Channels:     a.Config.Alerting.Channels,
		}
		if err := notifier.Notify(ctx, note); err != nil {
			a.Logger.Error().Err(err).Time("bucket", bucket).Msg("failed to dispatch drift alert")
		}
	}

	return nil
}
