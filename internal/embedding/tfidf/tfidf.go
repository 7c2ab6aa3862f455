// Package tfidf implements a corpus-prepared TF-IDF embedder. The
// vocabulary and IDF weights are built once from the indexed
// collection; the vector dimension equals the vocabulary size.
package tfidf

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"ragsum/internal/domain"
	"ragsum/internal/tokenize"
)

// Embedder is a TF-IDF vectorizer over a fixed vocabulary.
type Embedder struct {
	vocabulary map[string]int
	idf        []float64
	dimension  int
	prepared   bool
}

// New creates an unprepared TF-IDF embedder.
func New() *Embedder {
	return &Embedder{vocabulary: make(map[string]int)}
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "tfidf" }

// Prepare builds the vocabulary and IDF values from the corpus.
func (e *Embedder) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return fmt.Errorf("tfidf prepare: empty corpus: %w", domain.ErrData)
	}
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range tokenize.ContentWords(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return fmt.Errorf("tfidf prepare: no tokens in corpus: %w", domain.ErrData)
	}
	// Stable vocabulary ordering so vectors are reproducible.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		// Smoothed IDF
		e.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	e.dimension = len(terms)
	e.prepared = true
	return nil
}

// Dimension returns the dimensionality of the produced vectors.
func (e *Embedder) Dimension() int { return e.dimension }

// Embed computes the L2-normalized TF-IDF vector for text.
func (e *Embedder) Embed(text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("embed: empty text: %w", domain.ErrInput)
	}
	if !e.prepared {
		return nil, fmt.Errorf("tfidf embedder not prepared: %w", domain.ErrData)
	}
	vec := make([]float64, e.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokenize.ContentWords(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * e.idf[idx]
	}
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
