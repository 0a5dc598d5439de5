package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider string `yaml:"provider"`
		Symbol   string `yaml:"symbol"`
		Range    string `yaml:"range"`
	} `yaml:"data_source"`
	Indicators struct {
		SMAWindows       []int   `yaml:"sma_windows"`
		RSIPeriod        int     `yaml:"rsi_period"`
		MACDFast         int     `yaml:"macd_fast"`
		MACDSlow         int     `yaml:"macd_slow"`
		MACDSignal       int     `yaml:"macd_signal"`
		BollWindow       int     `yaml:"boll_window"`
		BollStdDev       float64 `yaml:"boll_std_dev"`
		MomentumLookback int     `yaml:"momentum_lookback"`
		ATRPeriod        int     `yaml:"atr_period"`
		VolatilityWindow int     `yaml:"volatility_window"`
	} `yaml:"indicators"`
	Signals struct {
		RSIOverbought float64 `yaml:"rsi_overbought"`
		RSIOversold   float64 `yaml:"rsi_oversold"`
		BandEpsilon   float64 `yaml:"band_epsilon"`
	} `yaml:"signals"`
	Embedding struct {
		Provider   string `yaml:"provider"`
		Dimensions int    `yaml:"dimensions"`
		BaseURL    string `yaml:"base_url"`
		Model      string `yaml:"model"`
	} `yaml:"embedding"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("RAGI_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("RAGI_RANGE"); v != "" {
		cfg.DataSource.Range = v
	}
	if v := os.Getenv("RAGI_DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("RAGI_EMBEDDING_PROVIDER"); v != "" {
		cfg.Embedding.Provider = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		cfg.Embedding.BaseURL = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.Embedding.Model = v
	}
	if v := os.Getenv("RAGI_EMBEDDING_DIM"); v != "" {
		if dim, err := strconv.Atoi(v); err == nil {
			cfg.Embedding.Dimensions = dim
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("RAGI_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "BTC-USD"
	}
	if cfg.DataSource.Range == "" {
		cfg.DataSource.Range = "1y"
	}
	if len(cfg.Indicators.SMAWindows) == 0 {
		cfg.Indicators.SMAWindows = []int{20, 50, 200}
	}
	if cfg.Indicators.RSIPeriod == 0 {
		cfg.Indicators.RSIPeriod = 14
	}
	if cfg.Indicators.MACDFast == 0 {
		cfg.Indicators.MACDFast = 12
	}
	if cfg.Indicators.MACDSlow == 0 {
		cfg.Indicators.MACDSlow = 26
	}
	if cfg.Indicators.MACDSignal == 0 {
		cfg.Indicators.MACDSignal = 9
	}
	if cfg.Indicators.BollWindow == 0 {
		cfg.Indicators.BollWindow = 20
	}
	if cfg.Indicators.BollStdDev == 0 {
		cfg.Indicators.BollStdDev = 2.0
	}
	if cfg.Indicators.MomentumLookback == 0 {
		cfg.Indicators.MomentumLookback = 10
	}
	if cfg.Indicators.ATRPeriod == 0 {
		cfg.Indicators.ATRPeriod = 14
	}
	if cfg.Indicators.VolatilityWindow == 0 {
		cfg.Indicators.VolatilityWindow = 20
	}
	if cfg.Signals.RSIOverbought == 0 {
		cfg.Signals.RSIOverbought = 70
	}
	if cfg.Signals.RSIOversold == 0 {
		cfg.Signals.RSIOversold = 30
	}
	if cfg.Signals.BandEpsilon == 0 {
		cfg.Signals.BandEpsilon = 0.01
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "hash"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 256
	}
	if cfg.Embedding.BaseURL == "" {
		cfg.Embedding.BaseURL = "http://localhost:11434"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "nomic-embed-text"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/ragi.db"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 * * * *"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "data/exports"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	default:
		return fmt.Errorf("data_source.provider must be yahoo or mock, got %q", c.DataSource.Provider)
	}
	switch c.Embedding.Provider {
	case "hash", "ollama":
	default:
		return fmt.Errorf("embedding.provider must be hash or ollama, got %q", c.Embedding.Provider)
	}
	if c.Embedding.Dimensions <= 0 {
		return fmt.Errorf("embedding.dimensions must be positive")
	}
	if c.Signals.RSIOversold >= c.Signals.RSIOverbought {
		return fmt.Errorf("signals.rsi_oversold must be below signals.rsi_overbought")
	}
	if c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		return fmt.Errorf("indicators.macd_fast must be below indicators.macd_slow")
	}
	return nil
}
