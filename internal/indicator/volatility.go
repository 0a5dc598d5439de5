package indicator

import (
	"math"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// tradingDaysPerYear annualizes daily volatility.
const tradingDaysPerYear = 252

// Volatility computes the annualized rolling standard deviation of log
// returns over the given window. Non-positive prices contribute a zero
// return instead of an undefined logarithm.
func Volatility(closes []float64, window int) model.Series {
	n := len(closes)
	s := model.UndefinedSeries(n)
	if window <= 1 || n < window+1 {
		return s
	}

	returns := make([]float64, n) // returns[0] unused
	for i := 1; i < n; i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			continue
		}
		returns[i] = math.Log(closes[i] / closes[i-1])
	}

	s.Start = window
	for i := window; i < n; i++ {
		win := returns[i-window+1 : i+1]
		m := mean(win)
		var sq float64
		for _, r := range win {
			d := r - m
			sq += d * d
		}
		s.Values[i] = math.Sqrt(sq/float64(window-1)) * math.Sqrt(tradingDaysPerYear)
	}
	return s
}
