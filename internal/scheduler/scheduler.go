// Package scheduler drives the periodic refresh loop: collect market
// data, regenerate signals and insights, record them and feed the
// narrative back into the knowledge base.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/mahmoudomarus/RAGI/internal/agent"
	"github.com/mahmoudomarus/RAGI/internal/collector"
	"github.com/mahmoudomarus/RAGI/internal/recorder"
)

// Scheduler manages the cron-driven refresh task.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Agent     *agent.Agent
	Recorder  recorder.Recorder
	Range     string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, ag *agent.Agent, rec recorder.Recorder, rng string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Collector: col,
		Agent:     ag,
		Recorder:  rec,
		Range:     rng,
		Ctx:       ctx,
	}
}

// Register adds the refresh task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.Refresh); err != nil {
		return fmt.Errorf("register refresh cron %q: %w", spec, err)
	}
	return nil
}

// Start launches the cron loop.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop halts the cron loop.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// Refresh runs one full collect-analyze-record cycle. Failures are
// logged and the cycle aborts; the next tick retries from scratch.
func (s *Scheduler) Refresh() {
	series, err := s.Collector.Collect(s.Range)
	if err != nil {
		log.Printf("[WARN] refresh: collect failed: %v", err)
		return
	}

	sig, err := s.Agent.GenerateTradingSignals(series)
	if err != nil {
		log.Printf("[WARN] refresh: signal generation failed: %v", err)
		return
	}
	insights, err := s.Agent.Analyze(series)
	if err != nil {
		log.Printf("[WARN] refresh: analysis failed: %v", err)
		return
	}

	if err := s.Recorder.RecordSignal(sig); err != nil {
		log.Printf("[WARN] refresh: record signal failed: %v", err)
	}
	if err := s.Recorder.RecordInsights(series.Symbol, insights); err != nil {
		log.Printf("[WARN] refresh: record insights failed: %v", err)
	}

	// Insights join the corpus so later questions retrieve them.
	if err := s.Agent.AddKnowledge(s.Ctx, insights); err != nil {
		log.Printf("[WARN] refresh: add knowledge failed: %v", err)
		return
	}

	log.Printf("[INFO] refresh complete: %s trend=%s position=%s rsi=%.1f insights=%d corpus=%d",
		series.Symbol, sig.Trend, sig.Position, sig.RSI, len(insights), s.Agent.KnowledgeSize())
}
