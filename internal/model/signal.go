package model

import "time"

// Trend classifies the direction of the market.
type Trend string

const (
	TrendUp       Trend = "uptrend"
	TrendDown     Trend = "downtrend"
	TrendSideways Trend = "sideways"
)

// Position is the suggested stance derived from trend and momentum.
type Position string

const (
	PositionLong    Position = "long"
	PositionShort   Position = "short"
	PositionNeutral Position = "neutral"
)

// SMARef records a moving-average value together with the window that
// produced it, so a signal stays interpretable when shorter substitute
// windows were used.
type SMARef struct {
	Window int     `json:"window"`
	Value  float64 `json:"value"`
}

// TradingSignal is the output of signal generation: a trend and position
// call plus the indicator values the decision rested on. Derived fresh
// per invocation.
type TradingSignal struct {
	Symbol      string    `json:"symbol"`
	Trend       Trend     `json:"trend"`
	Position    Position  `json:"position"`
	Close       float64   `json:"close"`
	FastSMA     SMARef    `json:"fast_sma"`
	SlowSMA     SMARef    `json:"slow_sma"`
	RSI         float64   `json:"rsi"`
	GeneratedAt time.Time `json:"generated_at"`
}
