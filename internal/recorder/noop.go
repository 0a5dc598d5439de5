package recorder

import "github.com/mahmoudomarus/RAGI/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSignal(_ *model.TradingSignal) error                { return nil }
func (n *NoopRecorder) RecordInsights(_ string, _ []string) error                { return nil }
func (n *NoopRecorder) RecordQuery(_ string, _ []model.QueryResult) error        { return nil }
func (n *NoopRecorder) Close() error                                             { return nil }
