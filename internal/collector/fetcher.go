package collector

import "github.com/mahmoudomarus/RAGI/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchSeries returns daily bars for the symbol over a range token
	// such as "1mo", "6mo" or "1y".
	FetchSeries(symbol, rng string) (*model.PriceSeries, error)
	// FetchCurrentPrice returns the latest close.
	FetchCurrentPrice(symbol string) (float64, error)
	Name() string
}
