package indicator

import (
	"math"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// Bollinger computes volatility bands at k sample standard deviations
// around the SMA(window) middle band. A flat window has zero deviation,
// so upper == middle == lower there.
func Bollinger(closes []float64, window int, k float64) (upper, middle, lower model.Series) {
	n := len(closes)
	middle = SMA(closes, window)
	upper = model.UndefinedSeries(n)
	lower = model.UndefinedSeries(n)
	if middle.Start >= n {
		return upper, middle, lower
	}
	upper.Start = middle.Start
	lower.Start = middle.Start
	for i := middle.Start; i < n; i++ {
		m := middle.Values[i]
		var sq float64
		for j := i - window + 1; j <= i; j++ {
			d := closes[j] - m
			sq += d * d
		}
		sd := 0.0
		if window > 1 {
			sd = math.Sqrt(sq / float64(window-1))
		}
		upper.Values[i] = m + k*sd
		lower.Values[i] = m - k*sd
	}
	return upper, middle, lower
}
