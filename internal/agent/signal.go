package agent

import (
	"sort"
	"time"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// neutralRSI stands in when the series is too short for a defined RSI.
const neutralRSI = 50.0

// GenerateTradingSignals classifies the trend and derives a position call
// from the freshly computed indicator set.
//
// Trend: the latest close against the two longest SMAs with a defined
// last value (SMA_200/SMA_50 when history allows, shorter substitutes
// otherwise). close >= both means uptrend, close <= both means downtrend
// (equality counts toward the trend side), anything else is sideways.
//
// Position: long on an uptrend while RSI is below the overbought level,
// short on a downtrend while RSI is above the oversold level, neutral
// otherwise. It never signals into an overbought or oversold extreme.
func (a *Agent) GenerateTradingSignals(series *model.PriceSeries) (*model.TradingSignal, error) {
	set, err := a.pipeline.Compute(series)
	if err != nil {
		return nil, err
	}

	sig := &model.TradingSignal{
		Symbol:      series.Symbol,
		Trend:       model.TrendSideways,
		Position:    model.PositionNeutral,
		RSI:         neutralRSI,
		GeneratedAt: time.Now(),
	}
	if series.Len() > 0 {
		sig.Close = series.Bars[series.Len()-1].Close
	}
	if rsi, ok := set.Last(model.RSIName(a.pipeline.Config().RSIPeriod)); ok {
		sig.RSI = rsi
	}

	fast, slow, ok := a.trendAverages(set)
	if !ok {
		return sig, nil // not enough history for any SMA: stay sideways/neutral
	}
	sig.FastSMA = fast
	sig.SlowSMA = slow

	switch {
	case sig.Close >= fast.Value && sig.Close >= slow.Value:
		sig.Trend = model.TrendUp
	case sig.Close <= fast.Value && sig.Close <= slow.Value:
		sig.Trend = model.TrendDown
	}

	switch {
	case sig.Trend == model.TrendUp && sig.RSI < a.cfg.RSIOverbought:
		sig.Position = model.PositionLong
	case sig.Trend == model.TrendDown && sig.RSI > a.cfg.RSIOversold:
		sig.Position = model.PositionShort
	}
	return sig, nil
}

// trendAverages picks the two longest configured SMA windows whose last
// value is defined. With only one defined window it serves both roles;
// with none the caller falls back to sideways.
func (a *Agent) trendAverages(set model.IndicatorSet) (fast, slow model.SMARef, ok bool) {
	windows := append([]int(nil), a.pipeline.Config().SMAWindows...)
	sort.Sort(sort.Reverse(sort.IntSlice(windows)))

	var defined []model.SMARef
	for _, w := range windows {
		if v, found := set.Last(model.SMAName(w)); found {
			defined = append(defined, model.SMARef{Window: w, Value: v})
		}
	}
	if len(defined) == 0 {
		return model.SMARef{}, model.SMARef{}, false
	}
	slow = defined[0]
	fast = defined[0]
	if len(defined) > 1 {
		fast = defined[1]
	}
	return fast, slow, true
}
