// Package knowledge holds the in-memory document store backing the RAG
// agent. It is the only mutable resource in the core, guarded by a single
// coarse mutex; the corpus stays small enough that nothing finer is
// warranted.
package knowledge

import (
	"sync"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

// Store is an ordered, growable collection of knowledge documents.
// Insertion order is preserved, duplicates are kept as distinct
// documents, and there is no deletion.
type Store struct {
	mu   sync.Mutex
	docs []model.KnowledgeDocument
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends documents in the given order.
func (s *Store) Add(docs ...model.KnowledgeDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, docs...)
}

// Snapshot returns a copy of the stored documents in insertion order.
func (s *Store) Snapshot() []model.KnowledgeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.KnowledgeDocument, len(s.docs))
	copy(out, s.docs)
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}
