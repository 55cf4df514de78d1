package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"option-mc-pricer/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Logging    logging.Config   `mapstructure:"logging"`
	Pricing    PricingConfig    `mapstructure:"pricing"`
	Experiment ExperimentConfig `mapstructure:"experiment"`
	Monitor    MonitorConfig    `mapstructure:"monitor"`
	Alerting   AlertingConfig   `mapstructure:"alerting"`
	Export     ExportConfig     `mapstructure:"export"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// PricingConfig sets the default contract and simulation budget. Every value
// can be overridden per command via flags.
type PricingConfig struct {
	Spot     float64 `mapstructure:"spot"`
	Strike   float64 `mapstructure:"strike"`
	Rate     float64 `mapstructure:"rate"`
	Sigma    float64 `mapstructure:"sigma"`
	Maturity float64 `mapstructure:"maturity"`
	Paths    int     `mapstructure:"paths"`
	Method   string  `mapstructure:"method"`
	Type     string  `mapstructure:"type"`
}

// ExperimentConfig governs seed sweeps and grid studies.
type ExperimentConfig struct {
	Runs     int     `mapstructure:"runs"`
	BaseSeed uint64  `mapstructure:"base_seed"`
	Alpha    float64 `mapstructure:"alpha"`
	Workers  int     `mapstructure:"workers"`
	PathGrid []int   `mapstructure:"path_grid"`
}

// MonitorConfig drives the periodic estimator-quality loop.
type MonitorConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	AlignToBucket bool          `mapstructure:"align_to_bucket"`
	StartupDelay  time.Duration `mapstructure:"startup_delay"`
	Paths         int           `mapstructure:"paths"`
	Runs          int           `mapstructure:"runs"`
	TolerancePct  float64       `mapstructure:"tolerance_pct"`
}

// AlertingConfig defines drift alert routing.
type AlertingConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Channels []string       `mapstructure:"channels"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// TelegramConfig 描述 Telegram 告警参数。
type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	APIBase  string `mapstructure:"api_base"`
}

// ExportConfig sets chart output behaviour.
type ExportConfig struct {
	ChartWidth  int `mapstructure:"chart_width"`
	ChartHeight int `mapstructure:"chart_height"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MCPRICER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "mcpricer")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("pricing.spot", 100.0)
	v.SetDefault("pricing.strike", 100.0)
	v.SetDefault("pricing.rate", 0.05)
	v.SetDefault("pricing.sigma", 0.2)
	v.SetDefault("pricing.maturity", 1.0)
	v.SetDefault("pricing.paths", 20000)
	v.SetDefault("pricing.method", "plain")
	v.SetDefault("pricing.type", "call")

	v.SetDefault("experiment.runs", 50)
	v.SetDefault("experiment.base_seed", uint64(0))
	v.SetDefault("experiment.alpha", 0.05)
	v.SetDefault("experiment.workers", 0)
	v.SetDefault("experiment.path_grid", []int{1000, 5000, 10000, 50000, 100000, 200000})

	v.SetDefault("monitor.interval", "5m")
	v.SetDefault("monitor.align_to_bucket", true)
	v.SetDefault("monitor.startup_delay", "0s")
	v.SetDefault("monitor.paths", 20000)
	v.SetDefault("monitor.runs", 15)
	v.SetDefault("monitor.tolerance_pct", 1.0)

	v.SetDefault("alerting.enabled", false)
	v.SetDefault("alerting.channels", []string{"telegram"})
	v.SetDefault("alerting.telegram.enabled", false)
	v.SetDefault("alerting.telegram.api_base", "https://api.telegram.org")

	v.SetDefault("export.chart_width", 1280)
	v.SetDefault("export.chart_height", 720)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
// Contract-level invariants (positive spot, sigma, ...) are enforced again by
// the pricing engine itself; failing early here gives a friendlier message.
func (c *Config) Validate() error {
	if c.Pricing.Paths <= 0 {
		return fmt.Errorf("pricing.paths must be greater than zero")
	}
	if c.Experiment.Runs < 2 {
		return fmt.Errorf("experiment.runs must be at least 2 for confidence intervals")
	}
	if !(c.Experiment.Alpha > 0 && c.Experiment.Alpha < 1) {
		return fmt.Errorf("experiment.alpha must lie in (0,1)")
	}
	if len(c.Experiment.PathGrid) == 0 {
		return fmt.Errorf("experiment.path_grid must not be empty")
	}
	for _, p := range c.Experiment.PathGrid {
		if p <= 0 {
			return fmt.Errorf("experiment.path_grid entries must be positive, got %d", p)
		}
	}
	if c.Monitor.Interval <= 0 {
		return fmt.Errorf("monitor.interval must be greater than zero")
	}
	if c.Monitor.Runs < 2 {
		return fmt.Errorf("monitor.runs must be at least 2")
	}
	if c.Monitor.TolerancePct <= 0 {
		return fmt.Errorf("monitor.tolerance_pct must be greater than zero")
	}
	if c.Export.ChartWidth <= 0 || c.Export.ChartHeight <= 0 {
		return fmt.Errorf("export chart dimensions must be positive")
	}
	if c.Alerting.Telegram.Enabled {
		if c.Alerting.Telegram.BotToken == "" {
			return fmt.Errorf("alerting.telegram.bot_token 必须配置")
		}
		if c.Alerting.Telegram.ChatID == "" {
			return fmt.Errorf("alerting.telegram.chat_id 必须配置")
		}
	}
	return nil
}
