package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.Symbol != "BTC-USD" {
		t.Errorf("symbol default: %q", cfg.DataSource.Symbol)
	}
	if cfg.Indicators.RSIPeriod != 14 {
		t.Errorf("rsi_period default: %d", cfg.Indicators.RSIPeriod)
	}
	if got := cfg.Indicators.SMAWindows; len(got) != 3 || got[0] != 20 || got[2] != 200 {
		t.Errorf("sma_windows default: %v", got)
	}
	if cfg.Signals.RSIOverbought != 70 || cfg.Signals.RSIOversold != 30 {
		t.Errorf("signal thresholds: %v / %v", cfg.Signals.RSIOverbought, cfg.Signals.RSIOversold)
	}
	if cfg.Embedding.Provider != "hash" || cfg.Embedding.Dimensions != 256 {
		t.Errorf("embedding defaults: %q / %d", cfg.Embedding.Provider, cfg.Embedding.Dimensions)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_source:
  provider: mock
  symbol: ETH-USD
  range: 6mo
indicators:
  rsi_period: 21
embedding:
  provider: ollama
  model: all-minilm
server:
  addr: ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.Provider != "mock" || cfg.DataSource.Symbol != "ETH-USD" {
		t.Errorf("data source: %+v", cfg.DataSource)
	}
	if cfg.Indicators.RSIPeriod != 21 {
		t.Errorf("rsi_period: %d", cfg.Indicators.RSIPeriod)
	}
	// untouched fields still get defaults
	if cfg.Indicators.MACDSlow != 26 {
		t.Errorf("macd_slow default: %d", cfg.Indicators.MACDSlow)
	}
	if cfg.Embedding.Model != "all-minilm" {
		t.Errorf("embedding model: %q", cfg.Embedding.Model)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr: %q", cfg.Server.Addr)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RAGI_SYMBOL", "SOL-USD")
	t.Setenv("RAGI_EMBEDDING_DIM", "512")
	t.Setenv("CRON_REFRESH", "*/30 * * * *")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.Symbol != "SOL-USD" {
		t.Errorf("symbol: %q", cfg.DataSource.Symbol)
	}
	if cfg.Embedding.Dimensions != 512 {
		t.Errorf("dimensions: %d", cfg.Embedding.Dimensions)
	}
	if cfg.Schedule.RefreshCron != "*/30 * * * *" {
		t.Errorf("refresh cron: %q", cfg.Schedule.RefreshCron)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg.DataSource.Provider = "binance"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown data provider should fail validation")
	}
	cfg.DataSource.Provider = "yahoo"

	cfg.Signals.RSIOversold = 80
	if err := cfg.Validate(); err == nil {
		t.Error("inverted RSI thresholds should fail validation")
	}
	cfg.Signals.RSIOversold = 30

	cfg.Embedding.Dimensions = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative embedding dimensions should fail validation")
	}
}
