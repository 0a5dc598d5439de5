package knowledge

import (
	"sync"
	"testing"

	"github.com/mahmoudomarus/RAGI/internal/model"
)

func TestStore_OrderAndDuplicates(t *testing.T) {
	s := NewStore()
	s.Add(model.KnowledgeDocument{ID: "a", Text: "first"})
	s.Add(model.KnowledgeDocument{ID: "b", Text: "second"}, model.KnowledgeDocument{ID: "c", Text: "first"})

	docs := s.Snapshot()
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if docs[0].Text != "first" || docs[1].Text != "second" || docs[2].Text != "first" {
		t.Errorf("insertion order not preserved: %v", docs)
	}
	// Identical texts stay distinct documents.
	if docs[0].ID == docs[2].ID {
		t.Error("duplicate texts should remain distinct documents")
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Add(model.KnowledgeDocument{ID: "a", Text: "original"})
	snap := s.Snapshot()
	snap[0].Text = "mutated"
	if s.Snapshot()[0].Text != "original" {
		t.Error("snapshot mutation leaked into the store")
	}
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Add(model.KnowledgeDocument{Text: "doc"})
			}
		}()
	}
	wg.Wait()
	if s.Len() != 1000 {
		t.Errorf("expected 1000 documents, got %d", s.Len())
	}
}
