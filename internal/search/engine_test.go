package search

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mahmoudomarus/RAGI/internal/embedding"
	"github.com/mahmoudomarus/RAGI/internal/knowledge"
	"github.com/mahmoudomarus/RAGI/internal/model"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero left", []float64{0, 0}, []float64{1, 2}, 0},
		{"zero right", []float64{1, 2}, []float64{0, 0}, 0},
		{"both zero", []float64{0}, []float64{0}, 0},
	}
	for _, tt := range tests {
		if got := Cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: got %.6f, want %.6f", tt.name, got, tt.want)
		}
	}
}

func seededEngine(t *testing.T, texts []string) *Engine {
	t.Helper()
	p := embedding.NewHashProvider(128)
	store := knowledge.NewStore()
	for _, text := range texts {
		vec, err := p.Embed(context.Background(), text)
		if err != nil {
			t.Fatalf("embed %q: %v", text, err)
		}
		store.Add(model.KnowledgeDocument{ID: text, Text: text, Vector: vec})
	}
	return NewEngine(p, store)
}

func TestQuery_EmptyStore(t *testing.T) {
	e := seededEngine(t, nil)
	for _, k := range []int{0, 1, 10} {
		results, err := e.Query(context.Background(), "anything at all", k)
		if err != nil {
			t.Fatalf("k=%d: %v", k, err)
		}
		if len(results) != 0 {
			t.Errorf("k=%d: expected empty result, got %d", k, len(results))
		}
	}
}

func TestQuery_NegativeK(t *testing.T) {
	e := seededEngine(t, []string{"doc"})
	if _, err := e.Query(context.Background(), "doc", -1); !errors.Is(err, model.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestQuery_RankingAndClamp(t *testing.T) {
	e := seededEngine(t, []string{
		"bitcoin is a decentralized cryptocurrency",
		"technical analysis uses chart patterns",
		"bitcoin mining consumes energy",
	})
	results, err := e.Query(context.Background(), "what is bitcoin", 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("k should clamp to store size 3, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Errorf("results not sorted descending: %.4f before %.4f", results[i-1].Score, results[i].Score)
		}
	}
	top, err := e.Query(context.Background(), "what is bitcoin", 1)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected exactly 1 result, got %d", len(top))
	}
	if top[0].Score <= 0 {
		t.Errorf("shared-token query should score positive, got %.4f", top[0].Score)
	}
}

func TestQuery_TiesKeepInsertionOrder(t *testing.T) {
	// Identical texts embed identically, so every pairwise score ties.
	e := seededEngine(t, []string{"same text", "same text", "same text"})
	results, err := e.Query(context.Background(), "same text", 3)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	snapshot := []string{"same text", "same text", "same text"}
	for i := range results {
		if results[i].Document.Text != snapshot[i] {
			t.Errorf("tie order broken at %d", i)
		}
	}
}

func TestQuery_ZeroVectorScoresZero(t *testing.T) {
	p := embedding.NewHashProvider(64)
	store := knowledge.NewStore()
	store.Add(model.KnowledgeDocument{ID: "z", Text: "unvectorized", Vector: make([]float64, 64)})
	e := NewEngine(p, store)
	results, err := e.Query(context.Background(), "unvectorized", 1)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results) != 1 || results[0].Score != 0 {
		t.Errorf("zero vector should score exactly 0, got %+v", results)
	}
}
