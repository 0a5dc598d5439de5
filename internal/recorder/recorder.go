package recorder

import "github.com/mahmoudomarus/RAGI/internal/model"

// Recorder persists analysis history for later inspection.
type Recorder interface {
	RecordSignal(sig *model.TradingSignal) error
	RecordInsights(symbol string, insights []string) error
	RecordQuery(question string, results []model.QueryResult) error
	Close() error
}
