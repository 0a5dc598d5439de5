// Package agent wires the indicator pipeline, embedding provider,
// document store and search engine into the analysis core: it derives
// trading signals and narrative insights from price data and answers
// free-text questions against the accumulated knowledge.
package agent

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mahmoudomarus/RAGI/internal/embedding"
	"github.com/mahmoudomarus/RAGI/internal/indicator"
	"github.com/mahmoudomarus/RAGI/internal/knowledge"
	"github.com/mahmoudomarus/RAGI/internal/model"
	"github.com/mahmoudomarus/RAGI/internal/search"
)

// Config holds signal thresholds. The RSI levels and band epsilon are
// tunable defaults, not constants.
type Config struct {
	RSIOverbought float64
	RSIOversold   float64
	BandEpsilon   float64
}

// DefaultConfig returns the conventional thresholds.
func DefaultConfig() Config {
	return Config{
		RSIOverbought: 70,
		RSIOversold:   30,
		BandEpsilon:   0.01,
	}
}

// Agent is the retrieval-augmented analysis core.
type Agent struct {
	pipeline *indicator.Pipeline
	embedder embedding.Provider
	store    *knowledge.Store
	engine   *search.Engine
	cfg      Config
}

// New builds an agent with an empty knowledge base.
func New(pipeline *indicator.Pipeline, embedder embedding.Provider, cfg Config) (*Agent, error) {
	if pipeline == nil {
		return nil, fmt.Errorf("pipeline is required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedding provider is required")
	}
	if cfg.RSIOversold <= 0 || cfg.RSIOverbought >= 100 || cfg.RSIOversold >= cfg.RSIOverbought {
		return nil, fmt.Errorf("RSI thresholds must satisfy 0 < oversold < overbought < 100, got %.1f/%.1f",
			cfg.RSIOversold, cfg.RSIOverbought)
	}
	if cfg.BandEpsilon < 0 {
		return nil, fmt.Errorf("band epsilon must be non-negative, got %.4f", cfg.BandEpsilon)
	}
	store := knowledge.NewStore()
	return &Agent{
		pipeline: pipeline,
		embedder: embedder,
		store:    store,
		engine:   search.NewEngine(embedder, store),
		cfg:      cfg,
	}, nil
}

// KnowledgeSize returns the current corpus size.
func (a *Agent) KnowledgeSize() int { return a.store.Len() }

// FetchIndicators recomputes the full indicator set for the series.
func (a *Agent) FetchIndicators(series *model.PriceSeries) (model.IndicatorSet, error) {
	return a.pipeline.Compute(series)
}

// AddKnowledge embeds each text and appends it to the store. A text that
// cannot be embedded is stored with a zero vector (it stays addressable
// but scores 0 on every query) and a warning is logged; the store never
// rejects a document. Only context cancellation aborts the batch.
func (a *Agent) AddKnowledge(ctx context.Context, texts []string) error {
	for _, text := range texts {
		if err := ctx.Err(); err != nil {
			return err
		}
		vec, err := a.embedder.Embed(ctx, text)
		if err != nil {
			log.Printf("[WARN] embedding failed for %q, storing zero vector: %v", truncate(text, 60), err)
			vec = make([]float64, a.embedder.Dim())
		}
		a.store.Add(model.KnowledgeDocument{
			ID:      uuid.NewString(),
			Text:    text,
			Vector:  vec,
			AddedAt: time.Now(),
		})
	}
	return nil
}

// Query retrieves the top-k most similar documents for a question.
func (a *Agent) Query(ctx context.Context, text string, k int) ([]model.QueryResult, error) {
	return a.engine.Query(ctx, text, k)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
