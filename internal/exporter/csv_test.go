package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mahmoudomarus/RAGI/internal/indicator"
	"github.com/mahmoudomarus/RAGI/internal/model"
)

func TestSaveCSV_RoundTrip(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, 30)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000}
	}
	series := &model.PriceSeries{Symbol: "BTC-USD", Bars: bars}

	closes := series.Closes()
	set := model.IndicatorSet{
		model.SMAName(20):      indicator.SMA(closes, 20),
		model.RSIName(14):      indicator.RSI(closes, 14),
		model.IndicatorBBUpper: model.UndefinedSeries(len(bars)),
	}

	path := filepath.Join(t.TempDir(), "btc.csv")
	if err := SaveCSV(series, set, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 31 {
		t.Fatalf("expected header + 30 rows, got %d", len(rows))
	}
	header := rows[0]
	want := []string{"time", "open", "high", "low", "close", "volume", "BB_UPPER", "RSI_14", "SMA_20"}
	if len(header) != len(want) {
		t.Fatalf("header: got %v, want %v", header, want)
	}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("header[%d]: got %q, want %q", i, header[i], want[i])
		}
	}
	// SMA_20 is undefined for the first 19 bars and defined after.
	if rows[1][8] != "" {
		t.Errorf("SMA_20 at row 1 should be empty, got %q", rows[1][8])
	}
	if rows[30][8] == "" {
		t.Error("SMA_20 at row 30 should be defined")
	}
	// BB_UPPER stays empty throughout.
	if rows[30][6] != "" {
		t.Errorf("BB_UPPER should always be empty, got %q", rows[30][6])
	}
}
