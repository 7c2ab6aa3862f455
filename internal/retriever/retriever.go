// Package retriever ties an embedder to a vector store: it builds the
// document index once and answers top-k queries against it.
package retriever

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"ragsum/internal/domain"
)

// Retriever embeds documents into a vector store and retrieves the
// nearest documents for a query. The index is built once per document
// collection; rebuilding replaces it wholesale.
type Retriever struct {
	embedder domain.Embedder
	store    domain.VectorStore
	built    bool
}

// New creates a retriever over the given embedder and store.
func New(embedder domain.Embedder, store domain.VectorStore) *Retriever {
	return &Retriever{embedder: embedder, store: store}
}

// BuildIndex embeds every document's content and stores the vectors in
// insertion order.
func (r *Retriever) BuildIndex(docs []domain.Document) error {
	if len(docs) == 0 {
		return fmt.Errorf("build index: empty document collection: %w", domain.ErrData)
	}
	start := time.Now()
	contents := make([]string, len(docs))
	for i, d := range docs {
		contents[i] = d.Content
	}
	if err := r.embedder.Prepare(contents); err != nil {
		return fmt.Errorf("prepare embedder: %w", err)
	}
	vectors, err := r.embedder.EmbedBatch(contents)
	if err != nil {
		return fmt.Errorf("embed documents: %w", err)
	}
	if err := r.store.Init(r.embedder.Dimension()); err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	if err := r.store.Upsert(docs, vectors); err != nil {
		return fmt.Errorf("store vectors: %w", err)
	}
	r.built = true
	log.Info().
		Int("documents", len(docs)).
		Int("dimension", r.embedder.Dimension()).
		Dur("took", time.Since(start)).
		Str("embedder", r.embedder.Name()).
		Msg("index built")
	return nil
}

// Retrieve embeds the query and returns the min(k, index size) closest
// documents, ascending by distance.
func (r *Retriever) Retrieve(query string, k int) ([]domain.SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("retrieve: k=%d: %w", k, domain.ErrConfig)
	}
	if !r.built {
		return nil, fmt.Errorf("retrieve: index not built: %w", domain.ErrData)
	}
	vec, err := r.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	results, err := r.store.Search(vec, k)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	log.Debug().Str("query", query).Int("k", k).Int("results", len(results)).Msg("retrieved")
	return results, nil
}

// Built reports whether an index is available for queries.
func (r *Retriever) Built() bool { return r.built }

// Size returns the number of indexed documents.
func (r *Retriever) Size() int { return r.store.Len() }
