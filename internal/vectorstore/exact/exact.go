// Package exact implements an in-memory exhaustive-search vector store
// using squared Euclidean distance. The collection is small enough
// that brute force beats any approximate-neighbor structure.
package exact

import (
	"fmt"
	"sort"
	"sync"

	"ragsum/internal/domain"
)

// Store holds one vector per document in insertion order.
type Store struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float64
	docs      []domain.Document
}

// New creates an empty store.
func New() *Store { return &Store{} }

// Init resets the store for vectors of the given dimension.
func (s *Store) Init(dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("init: dimension %d: %w", dimension, domain.ErrConfig)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.vectors = nil
	s.docs = nil
	return nil
}

// Upsert appends documents with their vectors, preserving order.
func (s *Store) Upsert(docs []domain.Document, vectors [][]float64) error {
	if len(docs) != len(vectors) {
		return fmt.Errorf("upsert: %d docs, %d vectors: %w", len(docs), len(vectors), domain.ErrData)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range vectors {
		if len(v) != s.dimension {
			return fmt.Errorf("upsert: vector %d has dimension %d, want %d: %w", i, len(v), s.dimension, domain.ErrData)
		}
	}
	s.docs = append(s.docs, docs...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

// Search returns the k documents closest to vector, ascending by
// squared L2 distance. Ties keep insertion order. k larger than the
// store returns everything.
func (s *Store) Search(vector []float64, k int) ([]domain.SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("search: k=%d: %w", k, domain.ErrConfig)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(vector) != s.dimension {
		return nil, fmt.Errorf("search: query dimension %d, want %d: %w", len(vector), s.dimension, domain.ErrData)
	}
	idxs := make([]int, len(s.vectors))
	dists := make([]float64, len(s.vectors))
	for i, v := range s.vectors {
		idxs[i] = i
		dists[i] = squaredL2(v, vector)
	}
	sort.SliceStable(idxs, func(a, b int) bool { return dists[idxs[a]] < dists[idxs[b]] })
	if k > len(idxs) {
		k = len(idxs)
	}
	results := make([]domain.SearchResult, 0, k)
	for _, j := range idxs[:k] {
		results = append(results, domain.SearchResult{Document: s.docs[j], Distance: dists[j]})
	}
	return results, nil
}

// Len returns the number of indexed documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func squaredL2(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
