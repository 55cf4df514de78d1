package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("加载默认配置不应报错: %v", err)
	}

	if cfg.Pricing.Spot != 100 || cfg.Pricing.Strike != 100 {
		t.Fatalf("默认合约参数不正确: %+v", cfg.Pricing)
	}
	if cfg.Pricing.Method != "plain" {
		t.Fatalf("默认估计方法应为 plain, 实际 %q", cfg.Pricing.Method)
	}
	if cfg.Experiment.Runs != 50 {
		t.Fatalf("默认 runs 应为 50, 实际 %d", cfg.Experiment.Runs)
	}
	if cfg.Experiment.Alpha != 0.05 {
		t.Fatalf("默认 alpha 应为 0.05, 实际 %g", cfg.Experiment.Alpha)
	}
	if len(cfg.Experiment.PathGrid) == 0 {
		t.Fatal("默认 path_grid 不应为空")
	}
	if cfg.Monitor.Interval != 5*time.Minute {
		t.Fatalf("默认监控间隔应为 5m, 实际 %s", cfg.Monitor.Interval)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("加载默认配置失败: %v", err)
		}
		return cfg
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		keyword string
	}{
		{"paths", func(c *Config) { c.Pricing.Paths = 0 }, "pricing.paths"},
		{"runs", func(c *Config) { c.Experiment.Runs = 1 }, "experiment.runs"},
		{"alpha", func(c *Config) { c.Experiment.Alpha = 1.2 }, "experiment.alpha"},
		{"grid", func(c *Config) { c.Experiment.PathGrid = nil }, "path_grid"},
		{"grid entry", func(c *Config) { c.Experiment.PathGrid = []int{100, -1} }, "path_grid"},
		{"interval", func(c *Config) { c.Monitor.Interval = 0 }, "monitor.interval"},
		{"tolerance", func(c *Config) { c.Monitor.TolerancePct = 0 }, "tolerance_pct"},
		{"telegram token", func(c *Config) {
			c.Alerting.Telegram.Enabled = true
			c.Alerting.Telegram.ChatID = "chat"
		}, "bot_token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("期望校验失败 (%s)", tc.name)
			}
			if !strings.Contains(err.Error(), tc.keyword) {
				t.Fatalf("错误信息应包含 %q, 实际 %v", tc.keyword, err)
			}
		})
	}
}
