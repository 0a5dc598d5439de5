package indicator

import "github.com/mahmoudomarus/RAGI/internal/model"

// MACD computes the moving average convergence divergence line,
// EMA(fast) - EMA(slow), plus its EMA(signal) signal line. The MACD line
// is defined once the slow EMA is; the signal line needs signal further
// MACD values on top of that.
func MACD(closes []float64, fast, slow, signal int) (line, signalLine model.Series) {
	n := len(closes)
	line = model.UndefinedSeries(n)
	signalLine = model.UndefinedSeries(n)

	fastEMA := EMA(closes, fast)
	slowEMA := EMA(closes, slow)
	start := fastEMA.Start
	if slowEMA.Start > start {
		start = slowEMA.Start
	}
	if start >= n {
		return line, signalLine
	}

	line.Start = start
	for i := start; i < n; i++ {
		line.Values[i] = fastEMA.Values[i] - slowEMA.Values[i]
	}

	// Signal line: EMA over the defined portion of the MACD line,
	// shifted back into series alignment.
	sig := EMA(line.Values[start:], signal)
	if sig.Start >= sig.Len() {
		return line, signalLine
	}
	signalLine.Start = start + sig.Start
	copy(signalLine.Values[signalLine.Start:], sig.Values[sig.Start:])
	return line, signalLine
}
