package agent

import (
	"fmt"
	"math"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// Analyze produces an ordered list of human-readable insights from the
// series. Each rule is independent and fires at most one line; rules that
// do not trigger contribute nothing. The order is fixed, so identical
// input always yields the same list.
func (a *Agent) Analyze(series *model.PriceSeries) ([]string, error) {
	set, err := a.pipeline.Compute(series)
	if err != nil {
		return nil, err
	}

	insights := []string{}
	closes := series.Closes()
	n := len(closes)

	// Last-period price change.
	if n >= 2 && closes[n-2] != 0 {
		change := (closes[n-1] - closes[n-2]) / closes[n-2] * 100
		if change >= 0 {
			insights = append(insights, fmt.Sprintf("Price increased by %.2f%% in the last period", change))
		} else {
			insights = append(insights, fmt.Sprintf("Price decreased by %.2f%% in the last period", -change))
		}
	}

	// Current volume against the series average.
	if n > 0 {
		volumes := series.Volumes()
		avg := 0.0
		for _, v := range volumes {
			avg += v
		}
		avg /= float64(n)
		if volumes[n-1] > avg {
			insights = append(insights, "Trading volume is above average, indicating strong market activity")
		} else {
			insights = append(insights, "Trading volume is below average, indicating reduced market activity")
		}
	}

	// Annualized volatility.
	if vol, ok := set.Last(model.IndicatorVolatility); ok {
		insights = append(insights, fmt.Sprintf("Current annualized volatility: %.2f", vol))
	}

	// RSI extremes.
	if rsi, ok := set.Last(model.RSIName(a.pipeline.Config().RSIPeriod)); ok {
		switch {
		case rsi > a.cfg.RSIOverbought:
			insights = append(insights, fmt.Sprintf("RSI at %.1f indicates overbought conditions", rsi))
		case rsi < a.cfg.RSIOversold:
			insights = append(insights, fmt.Sprintf("RSI at %.1f indicates oversold conditions", rsi))
		}
	}

	// MACD crossover between the last two periods.
	macd := set[model.IndicatorMACD]
	sig := set[model.IndicatorMACDSignal]
	if n >= 2 {
		mPrev, okM1 := macd.At(n - 2)
		sPrev, okS1 := sig.At(n - 2)
		mCur, okM2 := macd.At(n - 1)
		sCur, okS2 := sig.At(n - 1)
		if okM1 && okS1 && okM2 && okS2 {
			if mPrev <= sPrev && mCur > sCur {
				insights = append(insights, "MACD bullish crossover")
			} else if mPrev >= sPrev && mCur < sCur {
				insights = append(insights, "MACD bearish crossover")
			}
		}
	}

	// Close near a Bollinger band.
	if n > 0 {
		close := closes[n-1]
		if upper, ok := set.Last(model.IndicatorBBUpper); ok && upper != 0 &&
			math.Abs(close-upper)/math.Abs(upper) <= a.cfg.BandEpsilon {
			insights = append(insights, "Price near upper Bollinger Band")
		}
		if lower, ok := set.Last(model.IndicatorBBLower); ok && lower != 0 &&
			math.Abs(close-lower)/math.Abs(lower) <= a.cfg.BandEpsilon {
			insights = append(insights, "Price near lower Bollinger Band")
		}
	}

	return insights, nil
}
