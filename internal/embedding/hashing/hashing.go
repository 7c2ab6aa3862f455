// Package hashing implements a deterministic feature-hashing embedder.
// It needs no corpus preparation and no external model weights: each
// token is hashed into one of a fixed number of buckets with a hashed
// sign, term frequencies are accumulated, and the vector is
// L2-normalized. Identical input always yields an identical vector.
package hashing

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"ragsum/internal/domain"
	"ragsum/internal/tokenize"
)

// DefaultDimension matches the sentence-encoder dimensionality the
// rest of the system is sized for.
const DefaultDimension = 384

// Embedder hashes stopword-filtered tokens into a fixed-length vector.
type Embedder struct {
	dimension int
}

// New creates a hashing embedder. A non-positive dimension falls back
// to DefaultDimension.
func New(dimension int) *Embedder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Embedder{dimension: dimension}
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "hashing" }

// Prepare is a no-op; the hashing embedder is corpus-independent.
func (e *Embedder) Prepare(corpus []string) error { return nil }

// Dimension returns the dimensionality of the produced vectors.
func (e *Embedder) Dimension() int { return e.dimension }

// Embed computes the feature-hashed embedding of text.
func (e *Embedder) Embed(text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("embed: empty text: %w", domain.ErrInput)
	}
	vec := make([]float64, e.dimension)
	tokens := tokenize.ContentWords(text)
	for _, tok := range tokens {
		bucket, sign := e.hash(tok)
		vec[bucket] += sign
	}
	normalize(vec)
	return vec, nil
}

// EmbedBatch embeds every text in order.
func (e *Embedder) EmbedBatch(texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embed batch: no texts: %w", domain.ErrInput)
	}
	vectors := make([][]float64, len(texts))
	for i, t := range texts {
		v, err := e.Embed(t)
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
		vectors[i] = v
	}
	return vectors, nil
}

// hash maps a token to a bucket index and a +1/-1 sign. The sign comes
// from the top hash bit so colliding tokens tend to cancel rather than
// accumulate.
func (e *Embedder) hash(token string) (int, float64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(token))
	sum := h.Sum64()
	bucket := int(sum % uint64(e.dimension))
	sign := 1.0
	if (sum>>63)&1 == 1 {
		sign = -1.0
	}
	return bucket, sign
}

func normalize(vec []float64) {
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
}
