package indicator

import (
	"fmt"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// Config holds the windows and periods for the full indicator set.
type Config struct {
	SMAWindows       []int
	RSIPeriod        int
	MACDFast         int
	MACDSlow         int
	MACDSignal       int
	BollWindow       int
	BollStdDev       float64
	MomentumLookback int
	ATRPeriod        int
	VolatilityWindow int
}

// DefaultConfig returns the standard parameter set.
func DefaultConfig() Config {
	return Config{
		SMAWindows:       []int{20, 50, 200},
		RSIPeriod:        14,
		MACDFast:         12,
		MACDSlow:         26,
		MACDSignal:       9,
		BollWindow:       20,
		BollStdDev:       2.0,
		MomentumLookback: 10,
		ATRPeriod:        14,
		VolatilityWindow: 20,
	}
}

// Pipeline derives a full IndicatorSet from a price series. It holds no
// state between calls; every computation is causal, never reading ahead
// of the index it fills.
type Pipeline struct {
	cfg Config
}

// NewPipeline validates the config and builds a pipeline.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if len(cfg.SMAWindows) == 0 {
		return nil, fmt.Errorf("at least one SMA window is required")
	}
	for _, w := range cfg.SMAWindows {
		if w <= 0 {
			return nil, fmt.Errorf("SMA window must be positive, got %d", w)
		}
	}
	for name, v := range map[string]int{
		"rsi_period":        cfg.RSIPeriod,
		"macd_fast":         cfg.MACDFast,
		"macd_slow":         cfg.MACDSlow,
		"macd_signal":       cfg.MACDSignal,
		"boll_window":       cfg.BollWindow,
		"momentum_lookback": cfg.MomentumLookback,
		"atr_period":        cfg.ATRPeriod,
		"volatility_window": cfg.VolatilityWindow,
	} {
		if v <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if cfg.BollStdDev <= 0 {
		return nil, fmt.Errorf("boll_std_dev must be positive, got %.2f", cfg.BollStdDev)
	}
	return &Pipeline{cfg: cfg}, nil
}

// Config returns the pipeline's parameter set.
func (p *Pipeline) Config() Config { return p.cfg }

// Compute derives all indicators from the series. Series shorter than an
// indicator's window produce entirely-undefined entries for it, never an
// error; only a malformed series (non-increasing timestamps) fails.
func (p *Pipeline) Compute(series *model.PriceSeries) (model.IndicatorSet, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	closes := series.Closes()
	volumes := series.Volumes()
	set := make(model.IndicatorSet)

	for _, w := range p.cfg.SMAWindows {
		set[model.SMAName(w)] = SMA(closes, w)
	}
	set[model.EMAName(p.cfg.MACDFast)] = EMA(closes, p.cfg.MACDFast)
	set[model.EMAName(p.cfg.MACDSlow)] = EMA(closes, p.cfg.MACDSlow)
	set[model.RSIName(p.cfg.RSIPeriod)] = RSI(closes, p.cfg.RSIPeriod)

	macd, signal := MACD(closes, p.cfg.MACDFast, p.cfg.MACDSlow, p.cfg.MACDSignal)
	set[model.IndicatorMACD] = macd
	set[model.IndicatorMACDSignal] = signal

	upper, middle, lower := Bollinger(closes, p.cfg.BollWindow, p.cfg.BollStdDev)
	set[model.IndicatorBBUpper] = upper
	set[model.IndicatorBBMiddle] = middle
	set[model.IndicatorBBLower] = lower

	set[model.IndicatorPriceROC] = Momentum(closes, p.cfg.MomentumLookback)
	set[model.IndicatorVolumeROC] = Momentum(volumes, p.cfg.MomentumLookback)
	set[model.ATRName(p.cfg.ATRPeriod)] = ATR(series.Bars, p.cfg.ATRPeriod)
	set[model.IndicatorVolatility] = Volatility(closes, p.cfg.VolatilityWindow)

	return set, nil
}
