package model

import (
	"fmt"
	"time"
)

// OHLCV represents a single time-bucketed price record.
type OHLCV struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries holds raw price data for analysis. Bars must be ordered by
// strictly increasing timestamps; gaps are allowed.
type PriceSeries struct {
	Symbol    string    `json:"symbol"`
	Bars      []OHLCV   `json:"bars"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Validate checks the strictly-increasing-timestamp invariant.
func (p *PriceSeries) Validate() error {
	for i := 1; i < len(p.Bars); i++ {
		if !p.Bars[i].Time.After(p.Bars[i-1].Time) {
			return fmt.Errorf("%w: bar %d timestamp %s is not after bar %d timestamp %s",
				ErrInvalidArgument, i, p.Bars[i].Time.Format(time.RFC3339), i-1, p.Bars[i-1].Time.Format(time.RFC3339))
		}
	}
	return nil
}

// Len returns the number of bars.
func (p *PriceSeries) Len() int { return len(p.Bars) }

// Closes extracts the close column.
func (p *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(p.Bars))
	for i, b := range p.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Volumes extracts the volume column.
func (p *PriceSeries) Volumes() []float64 {
	volumes := make([]float64, len(p.Bars))
	for i, b := range p.Bars {
		volumes[i] = b.Volume
	}
	return volumes
}

// MarketSnapshot is a spot view of a coin's market state from the
// sentiment API.
type MarketSnapshot struct {
	Coin      string  `json:"coin"`
	PriceUSD  float64 `json:"price_usd"`
	Change24h float64 `json:"price_change_24h"`
	MarketCap float64 `json:"market_cap"`
}
