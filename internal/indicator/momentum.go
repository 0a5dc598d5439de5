package indicator

import "github.com/mahmoudomarus/RAGI/internal/model"

// Momentum computes the percentage rate of change over the lookback:
// (v[i] - v[i-lookback]) / v[i-lookback] * 100. Entries whose reference
// value is zero are reported as zero change rather than dividing by it.
func Momentum(values []float64, lookback int) model.Series {
	n := len(values)
	s := model.UndefinedSeries(n)
	if lookback <= 0 || n <= lookback {
		return s
	}
	s.Start = lookback
	for i := lookback; i < n; i++ {
		ref := values[i-lookback]
		if ref == 0 {
			continue
		}
		s.Values[i] = (values[i] - ref) / ref * 100
	}
	return s
}
