package indicator

import (
	"math"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// ATR computes the average true range: a simple moving average over the
// true range, where true range at i is the largest of high-low,
// |high - prev close| and |low - prev close|.
func ATR(bars []model.OHLCV, period int) model.Series {
	n := len(bars)
	s := model.UndefinedSeries(n)
	if period <= 0 || n < period+1 {
		return s
	}

	tr := make([]float64, n) // tr[0] has no previous close and stays unused
	for i := 1; i < n; i++ {
		hl := bars[i].High - bars[i].Low
		hc := math.Abs(bars[i].High - bars[i-1].Close)
		lc := math.Abs(bars[i].Low - bars[i-1].Close)
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}

	s.Start = period
	sum := 0.0
	for i := 1; i < n; i++ {
		sum += tr[i]
		if i > period {
			sum -= tr[i-period]
		}
		if i >= period {
			s.Values[i] = sum / float64(period)
		}
	}
	return s
}
