package indicator

import (
	"math"
	"sort"
)

// riskFreeRate is the annual risk-free rate assumed by the Sharpe ratio.
const riskFreeRate = 0.02

// RiskReport summarizes downside risk of a daily close series.
type RiskReport struct {
	SharpeRatio float64 `json:"sharpe_ratio"`
	MaxDrawdown float64 `json:"max_drawdown"`
	VaR95       float64 `json:"var_95"`
}

// Risk computes the annualized Sharpe ratio, the maximum peak-to-trough
// drawdown and the 95% one-day value at risk from simple daily returns.
// It reports ok=false when the series is too short for a sample standard
// deviation (fewer than three closes). A flat series has no meaningful
// Sharpe ratio and reports it as zero.
func Risk(closes []float64) (RiskReport, bool) {
	n := len(closes)
	if n < 3 {
		return RiskReport{}, false
	}

	returns := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		if closes[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}

	m := mean(returns)
	var sq float64
	for _, r := range returns {
		d := r - m
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(returns)-1))

	report := RiskReport{}
	if std > 0 {
		excess := m - riskFreeRate/tradingDaysPerYear
		report.SharpeRatio = math.Sqrt(tradingDaysPerYear) * excess / std
	}

	peak := closes[0]
	for _, c := range closes {
		if c > peak {
			peak = c
		}
		if peak > 0 {
			if dd := c/peak - 1; dd < report.MaxDrawdown {
				report.MaxDrawdown = dd
			}
		}
	}

	report.VaR95 = percentile(returns, 5)
	return report, true
}

// percentile computes the q-th percentile with linear interpolation
// between the two nearest ranks.
func percentile(vals []float64, q float64) float64 {
	s := make([]float64, len(vals))
	copy(s, vals)
	sort.Float64s(s)

	rank := q / 100 * float64(len(s)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return s[lo]
	}
	frac := rank - float64(lo)
	return s[lo] + frac*(s[hi]-s[lo])
}
