package agent

import (
	"sort"

	"github.com/mahmoudomarus/RAGI/internal/indicator"
	"github.com/mahmoudomarus/RAGI/internal/model"
)

// Summary defaults: a 30-day volatility window and 20-bar extrema with
// the 5 highest levels per side.
const (
	summaryVolatilityWindow = 30
	levelWindow             = 20
	levelPoints             = 5
)

// Summarize produces a statistical overview of the series: recent price
// and volume changes, 30-day volatility, the latest RSI and MACD, a
// moving-average trend call, risk metrics and support/resistance levels.
// Short series yield zero values for the statistics they cannot support
// rather than an error.
func (a *Agent) Summarize(series *model.PriceSeries) (*model.SummaryStats, error) {
	set, err := a.pipeline.Compute(series)
	if err != nil {
		return nil, err
	}

	closes := series.Closes()
	volumes := series.Volumes()
	n := len(closes)

	stats := &model.SummaryStats{Symbol: series.Symbol, Trend: model.SummaryBearish}
	if n == 0 {
		stats.Support = []float64{}
		stats.Resistance = []float64{}
		return stats, nil
	}

	stats.CurrentPrice = closes[n-1]
	stats.CurrentVolume = volumes[n-1]
	if n >= 2 && closes[n-2] != 0 {
		stats.Change24h = (closes[n-1] - closes[n-2]) / closes[n-2] * 100
	}
	if n >= 7 && closes[n-7] != 0 {
		stats.Change7d = (closes[n-1] - closes[n-7]) / closes[n-7] * 100
	}

	tail := volumes
	if n > 7 {
		tail = volumes[n-7:]
	}
	var sum float64
	for _, v := range tail {
		sum += v
	}
	stats.AvgVolume7d = sum / float64(len(tail))

	if vol, ok := indicator.Volatility(closes, summaryVolatilityWindow).Last(); ok {
		stats.Volatility30d = vol
	}
	if rsi, ok := set.Last(model.RSIName(a.pipeline.Config().RSIPeriod)); ok {
		stats.RSI = rsi
	}
	if macd, ok := set.Last(model.IndicatorMACD); ok {
		stats.MACD = macd
	}

	// Trend from the two fastest moving averages against each other.
	windows := append([]int(nil), a.pipeline.Config().SMAWindows...)
	sort.Ints(windows)
	if len(windows) >= 2 {
		fast, okF := set.Last(model.SMAName(windows[0]))
		slow, okS := set.Last(model.SMAName(windows[1]))
		if okF && okS && fast > slow {
			stats.Trend = model.SummaryBullish
		}
	}

	if report, ok := indicator.Risk(closes); ok {
		stats.SharpeRatio = report.SharpeRatio
		stats.MaxDrawdown = report.MaxDrawdown
		stats.VaR95 = report.VaR95
	}

	levels := indicator.SupportResistance(series, levelWindow, levelPoints)
	stats.Support = levels.Support
	stats.Resistance = levels.Resistance

	return stats, nil
}
