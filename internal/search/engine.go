// Package search answers free-text queries against the knowledge store
// with an exact brute-force cosine scan. O(corpus size) per query is
// deliberate: the corpus is small and in memory. An approximate index
// could replace the scan behind the same contract if that ever changes.
package search

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/mahmoudomarus/RAGI/internal/embedding"
	"github.com/mahmoudomarus/RAGI/internal/knowledge"
	"github.com/mahmoudomarus/RAGI/internal/model"
)

// Engine scores every stored document against a query embedding.
type Engine struct {
	provider embedding.Provider
	store    *knowledge.Store
}

// NewEngine creates a search engine over the given store.
func NewEngine(provider embedding.Provider, store *knowledge.Store) *Engine {
	return &Engine{provider: provider, store: store}
}

// Query returns the top-k documents by descending cosine similarity,
// ties broken by insertion order. An empty store yields an empty result;
// k larger than the store is clamped; a negative k is invalid.
func (e *Engine) Query(ctx context.Context, text string, k int) ([]model.QueryResult, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k must be non-negative, got %d", model.ErrInvalidArgument, k)
	}

	docs := e.store.Snapshot()
	if len(docs) == 0 || k == 0 {
		return []model.QueryResult{}, nil
	}

	query, err := e.provider.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results := make([]model.QueryResult, len(docs))
	for i, d := range docs {
		results[i] = model.QueryResult{Document: d, Score: Cosine(query, d.Vector)}
	}
	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// Cosine returns the normalized dot product of two vectors. A zero
// magnitude on either side scores 0; mismatched lengths compare over the
// shared prefix.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
