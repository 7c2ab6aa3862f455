// Package chromem adapts the chromem-go embedded vector database to
// the VectorStore interface. chromem ranks by cosine similarity; the
// reported distance is 1 - similarity, which preserves the ascending
// ordering and non-negativity the callers rely on.
package chromem

import (
	"context"
	"fmt"
	"runtime"

	chromemgo "github.com/philippgille/chromem-go"

	"ragsum/internal/domain"
)

// Store wraps a chromem-go in-memory collection.
type Store struct {
	db         *chromemgo.DB
	collection *chromemgo.Collection
	name       string
	embedFn    chromemgo.EmbeddingFunc
	dimension  int
	docs       map[string]domain.Document
	count      int
}

// New creates a store backed by a fresh in-memory chromem database.
// The embedding function is only consulted by chromem when a document
// arrives without a precomputed vector, which this store never does.
func New(collection string, embedFn chromemgo.EmbeddingFunc) *Store {
	if collection == "" {
		collection = "documents"
	}
	return &Store{db: chromemgo.NewDB(), name: collection, embedFn: embedFn}
}

// Init drops and recreates the collection for the given dimension.
func (s *Store) Init(dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("init: dimension %d: %w", dimension, domain.ErrConfig)
	}
	_ = s.db.DeleteCollection(s.name)
	c, err := s.db.GetOrCreateCollection(s.name, nil, s.embedFn)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	s.collection = c
	s.dimension = dimension
	s.docs = make(map[string]domain.Document)
	s.count = 0
	return nil
}

// Upsert adds documents with precomputed vectors.
func (s *Store) Upsert(docs []domain.Document, vectors [][]float64) error {
	if s.collection == nil {
		return fmt.Errorf("upsert: store not initialized: %w", domain.ErrData)
	}
	if len(docs) != len(vectors) {
		return fmt.Errorf("upsert: %d docs, %d vectors: %w", len(docs), len(vectors), domain.ErrData)
	}
	cdocs := make([]chromemgo.Document, len(docs))
	for i, d := range docs {
		if len(vectors[i]) != s.dimension {
			return fmt.Errorf("upsert: vector %d has dimension %d, want %d: %w", i, len(vectors[i]), s.dimension, domain.ErrData)
		}
		cdocs[i] = chromemgo.Document{
			ID:        d.ID,
			Content:   d.Content,
			Metadata:  map[string]string{"title": d.Title, "category": d.Category},
			Embedding: toFloat32(vectors[i]),
		}
		s.docs[d.ID] = d
	}
	if err := s.collection.AddDocuments(context.Background(), cdocs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	s.count += len(docs)
	return nil
}

// Search returns the k most similar documents, ascending by cosine
// distance.
func (s *Store) Search(vector []float64, k int) ([]domain.SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("search: k=%d: %w", k, domain.ErrConfig)
	}
	if s.collection == nil {
		return nil, fmt.Errorf("search: store not initialized: %w", domain.ErrData)
	}
	if k > s.count {
		k = s.count
	}
	if k == 0 {
		return nil, nil
	}
	results, err := s.collection.QueryWithOptions(context.Background(), chromemgo.QueryOptions{
		QueryEmbedding: toFloat32(vector),
		NResults:       k,
	})
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	out := make([]domain.SearchResult, 0, len(results))
	for _, r := range results {
		doc, ok := s.docs[r.ID]
		if !ok {
			continue
		}
		dist := 1 - float64(r.Similarity)
		if dist < 0 {
			dist = 0
		}
		out = append(out, domain.SearchResult{Document: doc, Distance: dist})
	}
	return out, nil
}

// Len returns the number of indexed documents.
func (s *Store) Len() int { return s.count }

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
