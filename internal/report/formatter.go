// Package report renders analysis results as plain text for the CLI and
// log output.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// FormatAnalysis renders a trading signal, its insights and an optional
// market snapshot as a readable report.
func FormatAnalysis(sig *model.TradingSignal, insights []string, snap *model.MarketSnapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Analysis for %s | %s\n\n", sig.Symbol, time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Close: %s\n", FormatAmount(sig.Close, 2)))
	b.WriteString(fmt.Sprintf("SMA%d: %.2f | SMA%d: %.2f\n",
		sig.FastSMA.Window, sig.FastSMA.Value, sig.SlowSMA.Window, sig.SlowSMA.Value))
	b.WriteString(fmt.Sprintf("RSI: %.1f\n\n", sig.RSI))

	b.WriteString(fmt.Sprintf("Trend: %s\n", sig.Trend))
	b.WriteString(fmt.Sprintf("Position: %s\n", sig.Position))

	if snap != nil {
		b.WriteString(fmt.Sprintf("\nMarket snapshot (%s):\n", snap.Coin))
		b.WriteString(fmt.Sprintf("  Price: %s\n", FormatAmount(snap.PriceUSD, 2)))
		b.WriteString(fmt.Sprintf("  24h change: %+.2f%%\n", snap.Change24h))
		b.WriteString(fmt.Sprintf("  Market cap: %s\n", FormatAmount(snap.MarketCap, 2)))
	}

	if len(insights) > 0 {
		b.WriteString("\nInsights:\n")
		for _, insight := range insights {
			b.WriteString(fmt.Sprintf("  - %s\n", insight))
		}
	}

	return b.String()
}

// FormatSummary renders the statistical overview of a series.
func FormatSummary(stats *model.SummaryStats) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Summary for %s\n\n", stats.Symbol))
	b.WriteString(fmt.Sprintf("Price: %s (%+.2f%% 24h, %+.2f%% 7d)\n",
		FormatAmount(stats.CurrentPrice, 2), stats.Change24h, stats.Change7d))
	b.WriteString(fmt.Sprintf("Volume: %s (7d avg %s)\n",
		FormatAmount(stats.CurrentVolume, 2), FormatAmount(stats.AvgVolume7d, 2)))
	b.WriteString(fmt.Sprintf("Volatility (30d): %.2f | RSI: %.1f | MACD: %.2f\n",
		stats.Volatility30d, stats.RSI, stats.MACD))
	b.WriteString(fmt.Sprintf("Trend: %s\n\n", stats.Trend))

	b.WriteString(fmt.Sprintf("Sharpe ratio: %.2f\n", stats.SharpeRatio))
	b.WriteString(fmt.Sprintf("Max drawdown: %.2f%%\n", stats.MaxDrawdown*100))
	b.WriteString(fmt.Sprintf("VaR 95%%: %.2f%%\n", stats.VaR95*100))

	if len(stats.Support) > 0 {
		b.WriteString(fmt.Sprintf("\nSupport: %s\n", formatLevels(stats.Support)))
	}
	if len(stats.Resistance) > 0 {
		b.WriteString(fmt.Sprintf("Resistance: %s\n", formatLevels(stats.Resistance)))
	}

	return b.String()
}

func formatLevels(levels []float64) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = FormatAmount(l, 2)
	}
	return strings.Join(parts, ", ")
}

// FormatQueryResults renders retrieval results with their scores.
func FormatQueryResults(results []model.QueryResult) string {
	if len(results) == 0 {
		return "No matching documents.\n"
	}
	var b strings.Builder
	for i, r := range results {
		b.WriteString(fmt.Sprintf("%d. [%.4f] %s\n", i+1, r.Score, r.Document.Text))
	}
	return b.String()
}

// FormatAmount renders a dollar amount with a K/M/B suffix.
func FormatAmount(v float64, decimals int) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.*fB", decimals, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.*fM", decimals, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.*fK", decimals, v/1e3)
	default:
		return fmt.Sprintf("$%.*f", decimals, v)
	}
}
