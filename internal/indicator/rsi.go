package indicator

import "github.com/mahmoudomarus/RAGI/internal/model"

// RSI computes the Wilder-smoothed relative strength index. The result is
// always within [0,100]; when the average loss is zero the value is 100.
// The first defined entry is at index period, since period price changes
// are needed to seed the averages.
func RSI(closes []float64, period int) model.Series {
	n := len(closes)
	s := model.UndefinedSeries(n)
	if period <= 0 || n < period+1 {
		return s
	}
	s.Start = period

	// Seed: plain average of gains/losses over the first period changes.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	s.Values[period] = rsiValue(avgGain, avgLoss)

	// Wilder smoothing for the remaining bars.
	for i := period + 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		s.Values[i] = rsiValue(avgGain, avgLoss)
	}
	return s
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
