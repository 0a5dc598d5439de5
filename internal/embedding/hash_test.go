package embedding

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestHashProvider_Deterministic(t *testing.T) {
	p := NewHashProvider(128)
	a, err := p.Embed(context.Background(), "Bitcoin is decentralized.")
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	b, err := p.Embed(context.Background(), "Bitcoin is decentralized.")
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if len(a) != 128 || len(b) != 128 {
		t.Fatalf("expected dim 128, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at %d: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestHashProvider_UnitNorm(t *testing.T) {
	p := NewHashProvider(0) // default dim
	vec, err := p.Embed(context.Background(), "trading volume indicates market strength")
	if err != nil {
		t.Fatalf("embed: %v", err)
	}
	if len(vec) != defaultHashDim {
		t.Fatalf("expected default dim %d, got %d", defaultHashDim, len(vec))
	}
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
		t.Errorf("expected unit norm, got %.9f", math.Sqrt(norm))
	}
}

func TestHashProvider_NoTokens(t *testing.T) {
	p := NewHashProvider(64)
	for _, text := range []string{"", "   ", "!!! ???"} {
		if _, err := p.Embed(context.Background(), text); err == nil {
			t.Errorf("expected error for %q", text)
		}
	}
}

func TestLazy_InitializesOnce(t *testing.T) {
	calls := 0
	l := NewLazy(func() (Provider, error) {
		calls++
		return NewHashProvider(32), nil
	})
	for i := 0; i < 3; i++ {
		if _, err := l.Embed(context.Background(), "bitcoin"); err != nil {
			t.Fatalf("embed: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected one initialization, got %d", calls)
	}
	if l.Name() != "hash" || l.Dim() != 32 {
		t.Errorf("lazy should delegate to the wrapped provider, got %s/%d", l.Name(), l.Dim())
	}
}

func TestLazy_InitFailure(t *testing.T) {
	boom := errors.New("model unavailable")
	l := NewLazy(func() (Provider, error) { return nil, boom })
	if _, err := l.Embed(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("expected init error, got %v", err)
	}
	if l.Name() != "uninitialized" || l.Dim() != 0 {
		t.Errorf("failed lazy should report uninitialized, got %s/%d", l.Name(), l.Dim())
	}
}
