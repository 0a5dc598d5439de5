package indicator

import "github.com/mahmoudomarus/RAGI/internal/model"

// SMA computes the simple moving average over the given window. The first
// window-1 entries are undefined; a window larger than the input (or a
// non-positive window) yields an entirely-undefined series.
func SMA(values []float64, window int) model.Series {
	n := len(values)
	s := model.UndefinedSeries(n)
	if window <= 0 || n < window {
		return s
	}
	s.Start = window - 1
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			s.Values[i] = sum / float64(window)
		}
	}
	return s
}

// EMA computes the exponential moving average with alpha = 2/(period+1),
// seeded by the simple average of the first period values.
func EMA(values []float64, period int) model.Series {
	n := len(values)
	s := model.UndefinedSeries(n)
	if period <= 0 || n < period {
		return s
	}
	s.Start = period - 1
	prev := mean(values[:period])
	s.Values[period-1] = prev
	alpha := 2.0 / float64(period+1)
	for i := period; i < n; i++ {
		prev += (values[i] - prev) * alpha
		s.Values[i] = prev
	}
	return s
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
