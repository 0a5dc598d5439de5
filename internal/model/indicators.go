package model

import "fmt"

// Canonical indicator names used as IndicatorSet keys.
const (
	IndicatorMACD       = "MACD"
	IndicatorMACDSignal = "MACD_SIGNAL"
	IndicatorBBUpper    = "BB_UPPER"
	IndicatorBBMiddle   = "BB_MIDDLE"
	IndicatorBBLower    = "BB_LOWER"
	IndicatorPriceROC   = "PRICE_ROC"
	IndicatorVolumeROC  = "VOLUME_ROC"
	IndicatorVolatility = "VOLATILITY"
)

// SMAName returns the key for a simple moving average of the given window.
func SMAName(window int) string { return fmt.Sprintf("SMA_%d", window) }

// EMAName returns the key for an exponential moving average of the given period.
func EMAName(period int) string { return fmt.Sprintf("EMA_%d", period) }

// RSIName returns the key for an RSI of the given period.
func RSIName(period int) string { return fmt.Sprintf("RSI_%d", period) }

// ATRName returns the key for an average true range of the given period.
func ATRName(period int) string { return fmt.Sprintf("ATR_%d", period) }

// Series is a numeric sequence aligned index-for-index with the price
// series it was derived from. Entries before Start are undefined: the
// indicator has not seen enough history there. An entirely-undefined
// series has Start == len(Values).
type Series struct {
	Values []float64 `json:"values"`
	Start  int       `json:"start"`
}

// UndefinedSeries returns a series of length n with no defined entries.
func UndefinedSeries(n int) Series {
	return Series{Values: make([]float64, n), Start: n}
}

// Len returns the series length.
func (s Series) Len() int { return len(s.Values) }

// Defined reports whether index i holds a meaningful value.
func (s Series) Defined(i int) bool { return i >= s.Start && i < len(s.Values) }

// At returns the value at index i and whether it is defined.
func (s Series) At(i int) (float64, bool) {
	if !s.Defined(i) {
		return 0, false
	}
	return s.Values[i], true
}

// Last returns the most recent value and whether it is defined.
func (s Series) Last() (float64, bool) {
	return s.At(len(s.Values) - 1)
}

// IndicatorSet maps indicator names to series aligned with the source
// price series. Recomputed on each call, never cached.
type IndicatorSet map[string]Series

// Last returns the latest value of the named indicator, if present and defined.
func (set IndicatorSet) Last(name string) (float64, bool) {
	s, ok := set[name]
	if !ok {
		return 0, false
	}
	return s.Last()
}
