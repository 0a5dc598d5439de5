package model

// SummaryStats is a one-shot statistical overview of a price series:
// recent price and volume action, risk metrics and notable price levels.
// Fields that need more history than the series provides stay zero.
type SummaryStats struct {
	Symbol        string  `json:"symbol"`
	CurrentPrice  float64 `json:"current_price"`
	Change24h     float64 `json:"price_change_24h"`
	Change7d      float64 `json:"price_change_7d"`
	CurrentVolume float64 `json:"current_volume"`
	AvgVolume7d   float64 `json:"avg_volume_7d"`
	Volatility30d float64 `json:"volatility_30d"`
	RSI           float64 `json:"rsi"`
	MACD          float64 `json:"macd"`
	Trend         string  `json:"trend"`

	SharpeRatio float64 `json:"sharpe_ratio"`
	MaxDrawdown float64 `json:"max_drawdown"`
	VaR95       float64 `json:"var_95"`

	Support    []float64 `json:"support"`
	Resistance []float64 `json:"resistance"`
}

// Summary trend labels. Unlike the signal trend, this compares the two
// fastest moving averages against each other, not the close against them.
const (
	SummaryBullish = "bullish"
	SummaryBearish = "bearish"
)
