package embedding

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const defaultHashDim = 256

// HashProvider is a deterministic bag-of-words feature-hashing embedder.
// Each lowercased token is hashed into one of Dim buckets and the counts
// are L2-normalized. It needs no model download or network access, which
// makes it the default provider and the one the tests run against. Texts
// sharing a token always score a positive cosine similarity.
type HashProvider struct {
	dim int
}

// NewHashProvider builds a hashing embedder with the given vector length.
func NewHashProvider(dim int) *HashProvider {
	if dim <= 0 {
		dim = defaultHashDim
	}
	return &HashProvider{dim: dim}
}

func (p *HashProvider) Name() string { return "hash" }

func (p *HashProvider) Dim() int { return p.dim }

func (p *HashProvider) Embed(_ context.Context, text string) ([]float64, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens in text %q", text)
	}
	vec := make([]float64, p.dim)
	for _, tok := range tokens {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%uint32(p.dim)]++
	}
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
