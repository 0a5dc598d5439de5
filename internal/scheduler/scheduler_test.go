package scheduler

import (
	"context"
	"testing"

	"github.com/mahmoudomarus/RAGI/internal/agent"
	"github.com/mahmoudomarus/RAGI/internal/collector"
	"github.com/mahmoudomarus/RAGI/internal/embedding"
	"github.com/mahmoudomarus/RAGI/internal/indicator"
	"github.com/mahmoudomarus/RAGI/internal/recorder"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	pipe, err := indicator.NewPipeline(indicator.DefaultConfig())
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	ag, err := agent.New(pipe, embedding.NewHashProvider(64), agent.DefaultConfig())
	if err != nil {
		t.Fatalf("agent: %v", err)
	}
	col := collector.NewCollector(&collector.MockFetcher{Price: 40000}, nil, "ETH-USD")
	return NewScheduler(context.Background(), col, ag, recorder.NewNoopRecorder(), "1y")
}

func TestRefreshFeedsKnowledgeBase(t *testing.T) {
	s := newTestScheduler(t)
	if s.Agent.KnowledgeSize() != 0 {
		t.Fatalf("corpus should start empty, got %d", s.Agent.KnowledgeSize())
	}
	s.Refresh()
	if s.Agent.KnowledgeSize() == 0 {
		t.Error("refresh should add insight documents to the corpus")
	}

	results, err := s.Agent.Query(context.Background(), "price change", 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results) == 0 {
		t.Error("refresh insights should be retrievable")
	}
}

func TestRegisterRejectsBadSpec(t *testing.T) {
	s := newTestScheduler(t)
	if err := s.Register("not a cron spec"); err == nil {
		t.Error("invalid cron spec should be rejected")
	}
	if err := s.Register("0 * * * *"); err != nil {
		t.Errorf("valid cron spec rejected: %v", err)
	}
}
