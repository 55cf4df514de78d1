package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"option-mc-pricer/internal/alerting"
	"option-mc-pricer/internal/config"
	"option-mc-pricer/internal/pricing"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// ContractOptions carry per-command overrides for the configured default
// contract. Nil fields fall back to config; Rate needs the pointer because
// zero and negative rates are legitimate values.
type ContractOptions struct {
	Spot     *float64
	Strike   *float64
	Rate     *float64
	Sigma    *float64
	Maturity *float64
	Type     string
}

func (a *App) resolveContract(opts ContractOptions) (pricing.Contract, pricing.OptionType, error) {
	p := a.Config.Pricing
	c := pricing.Contract{
		Spot:     p.Spot,
		Strike:   p.Strike,
		Rate:     p.Rate,
		Sigma:    p.Sigma,
		Maturity: p.Maturity,
	}
	if opts.Spot != nil {
		c.Spot = *opts.Spot
	}
	if opts.Strike != nil {
		c.Strike = *opts.Strike
	}
	if opts.Rate != nil {
		c.Rate = *opts.Rate
	}
	if opts.Sigma != nil {
		c.Sigma = *opts.Sigma
	}
	if opts.Maturity != nil {
		c.Maturity = *opts.Maturity
	}

	label := opts.Type
	if label == "" {
		label = p.Type
	}
	optType, err := pricing.ParseOptionType(label)
	if err != nil {
		return pricing.Contract{}, pricing.Call, err
	}
	return c, optType, nil
}

func (a *App) newNotifier() alerting.Notifier {
	if a.Config.Alerting.Telegram.Enabled {
		cfg := a.Config.Alerting.Telegram
		return alerting.NewTelegramNotifier(cfg.BotToken, cfg.ChatID, cfg.APIBase, 10*time.Second, a.Logger)
	}
	return nil
}

func formatFloat(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func requireArtifactPath(csvPath, pngPath string) error {
	if csvPath == "" && pngPath == "" {
		return fmt.Errorf("at least one of --csv or --png must be provided")
	}
	return nil
}
