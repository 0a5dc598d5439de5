package indicator

import (
	"sort"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// Levels holds candidate support and resistance price levels, each side
// sorted ascending.
type Levels struct {
	Support    []float64 `json:"support"`
	Resistance []float64 `json:"resistance"`
}

// SupportResistance scans for local price extrema. A bar is a support
// candidate when its low is the minimum of the window bars on each side,
// a resistance candidate when its high is the maximum. At most numPoints
// of the highest levels are kept per side. A series too short to hold a
// full window on both sides yields empty levels.
func SupportResistance(series *model.PriceSeries, window, numPoints int) Levels {
	levels := Levels{Support: []float64{}, Resistance: []float64{}}
	if series == nil || window <= 0 || numPoints <= 0 {
		return levels
	}
	bars := series.Bars
	n := len(bars)

	for i := window; i < n-window; i++ {
		isSupport, isResistance := true, true
		for j := i - window; j <= i+window; j++ {
			if j == i {
				continue
			}
			if bars[j].Low < bars[i].Low {
				isSupport = false
			}
			if bars[j].High > bars[i].High {
				isResistance = false
			}
			if !isSupport && !isResistance {
				break
			}
		}
		if isSupport {
			levels.Support = append(levels.Support, bars[i].Low)
		}
		if isResistance {
			levels.Resistance = append(levels.Resistance, bars[i].High)
		}
	}

	levels.Support = topLevels(levels.Support, numPoints)
	levels.Resistance = topLevels(levels.Resistance, numPoints)
	return levels
}

// topLevels sorts ascending and keeps the numPoints highest values.
func topLevels(vals []float64, numPoints int) []float64 {
	sort.Float64s(vals)
	if len(vals) > numPoints {
		vals = vals[len(vals)-numPoints:]
	}
	return vals
}
