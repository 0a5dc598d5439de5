// Package exporter writes price series and their computed indicators to
// CSV files for the dashboard and notebook collaborators.
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// SaveCSV writes the series and, when non-nil, the indicator set to a
// CSV file. Indicator columns follow the OHLCV columns in sorted name
// order; undefined indicator entries are left empty.
func SaveCSV(series *model.PriceSeries, set model.IndicatorSet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	header := append([]string{"time", "open", "high", "low", "close", "volume"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, b := range series.Bars {
		row := []string{
			strconv.FormatInt(b.Time.Unix(), 10),
			floatStr(b.Open),
			floatStr(b.High),
			floatStr(b.Low),
			floatStr(b.Close),
			floatStr(b.Volume),
		}
		for _, name := range names {
			if v, ok := set[name].At(i); ok {
				row = append(row, floatStr(v))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
