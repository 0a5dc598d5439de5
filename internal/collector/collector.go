// Package collector fetches cryptocurrency market data from external
// APIs and hands validated price series to the analysis core.
package collector

import (
	"fmt"
	"log"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// SupportedCoins lists the demo's default ticker universe.
var SupportedCoins = []string{"BTC-USD", "ETH-USD", "BNB-USD", "XRP-USD", "SOL-USD"}

// Collector fetches and validates price data for a single symbol.
type Collector struct {
	Fetcher   Fetcher
	Sentiment *CoinGeckoClient
	Symbol    string
}

// NewCollector creates a new Collector. The sentiment client is optional.
func NewCollector(fetcher Fetcher, sentiment *CoinGeckoClient, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Sentiment: sentiment, Symbol: symbol}
}

// Collect fetches a price series for the configured symbol and validates
// the timestamp ordering invariant before handing it to callers.
func (c *Collector) Collect(rng string) (*model.PriceSeries, error) {
	series, err := c.Fetcher.FetchSeries(c.Symbol, rng)
	if err != nil {
		return nil, fmt.Errorf("fetch series for %s: %w", c.Symbol, err)
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("series from %s: %w", c.Fetcher.Name(), err)
	}
	return series, nil
}

// CurrentPrice fetches the latest spot price for the configured symbol.
func (c *Collector) CurrentPrice() (float64, error) {
	price, err := c.Fetcher.FetchCurrentPrice(c.Symbol)
	if err != nil {
		return 0, fmt.Errorf("fetch current price for %s: %w", c.Symbol, err)
	}
	return price, nil
}

// Snapshot fetches the current market snapshot, when a sentiment client
// is configured.
func (c *Collector) Snapshot() (*model.MarketSnapshot, error) {
	if c.Sentiment == nil {
		return nil, fmt.Errorf("no sentiment client configured")
	}
	return c.Sentiment.FetchSnapshot(c.Symbol)
}

// FetchMultiple fetches a validated series per symbol, defaulting to the
// SupportedCoins universe. Symbols that fail to fetch or validate are
// logged and left out of the result.
func FetchMultiple(fetcher Fetcher, symbols []string, rng string) map[string]*model.PriceSeries {
	if len(symbols) == 0 {
		symbols = SupportedCoins
	}
	out := make(map[string]*model.PriceSeries, len(symbols))
	for _, symbol := range symbols {
		series, err := fetcher.FetchSeries(symbol, rng)
		if err != nil {
			log.Printf("[WARN] fetch %s: %v", symbol, err)
			continue
		}
		if err := series.Validate(); err != nil {
			log.Printf("[WARN] series for %s from %s: %v", symbol, fetcher.Name(), err)
			continue
		}
		out[symbol] = series
	}
	return out
}
