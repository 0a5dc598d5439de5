// Package embedding turns text into fixed-length vectors for similarity
// search. Two providers are available: a deterministic local hashing
// embedder and a client for an Ollama embedding model.
package embedding

import "context"

// Provider maps a text string to a fixed-length numeric vector.
type Provider interface {
	// Name identifies the provider for logs and config.
	Name() string
	// Dim is the length of vectors this provider produces.
	Dim() int
	// Embed vectorizes a single text. It fails on text it cannot
	// represent (for the hash provider, text with no tokens).
	Embed(ctx context.Context, text string) ([]float64, error)
}
