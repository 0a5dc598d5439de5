package indicator

import (
	"testing"
	"time"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

func levelSeries(lows, highs []float64) *model.PriceSeries {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(lows))
	for i := range bars {
		bars[i] = model.OHLCV{
			Time:   base.AddDate(0, 0, i),
			Open:   lows[i],
			High:   highs[i],
			Low:    lows[i],
			Close:  highs[i],
			Volume: 1000,
		}
	}
	return &model.PriceSeries{Symbol: "BTC-USD", Bars: bars}
}

func TestSupportResistance_LocalExtrema(t *testing.T) {
	lows := []float64{5, 4, 3, 2, 1, 0.5, 1, 2, 3, 4, 5}
	highs := []float64{1, 2, 3, 4, 5, 9, 5, 4, 3, 2, 1}
	levels := SupportResistance(levelSeries(lows, highs), 2, 5)

	if len(levels.Support) != 1 || !almostEqual(levels.Support[0], 0.5) {
		t.Errorf("support: got %v, want [0.5]", levels.Support)
	}
	if len(levels.Resistance) != 1 || !almostEqual(levels.Resistance[0], 9) {
		t.Errorf("resistance: got %v, want [9]", levels.Resistance)
	}
}

func TestSupportResistance_KeepsHighestLevels(t *testing.T) {
	// Two local minima at 1 and 0.5; numPoints=1 keeps the higher one.
	lows := []float64{3, 1, 3, 2, 0.5, 2}
	highs := make([]float64, len(lows))
	for i, l := range lows {
		highs[i] = l + 1
	}
	levels := SupportResistance(levelSeries(lows, highs), 1, 1)
	if len(levels.Support) != 1 || !almostEqual(levels.Support[0], 1) {
		t.Errorf("support: got %v, want [1]", levels.Support)
	}
}

func TestSupportResistance_ShortSeries(t *testing.T) {
	lows := []float64{1, 2, 3}
	levels := SupportResistance(levelSeries(lows, lows), 20, 5)
	if levels.Support == nil || levels.Resistance == nil {
		t.Fatal("short series should yield empty, non-nil levels")
	}
	if len(levels.Support) != 0 || len(levels.Resistance) != 0 {
		t.Errorf("short series should yield no levels, got %v / %v",
			levels.Support, levels.Resistance)
	}
}
