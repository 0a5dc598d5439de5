package model

import "time"

// KnowledgeDocument is a stored text snippet with its embedding vector.
// Immutable once created; the vector is computed at insertion time and
// never recomputed.
type KnowledgeDocument struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Vector  []float64 `json:"-"`
	AddedAt time.Time `json:"added_at"`
}

// QueryResult pairs a retrieved document with its cosine similarity to
// the query.
type QueryResult struct {
	Document KnowledgeDocument `json:"document"`
	Score    float64           `json:"score"`
}
