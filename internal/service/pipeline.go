// Package service orchestrates the RAG pipeline: index a document
// collection once, then answer queries by retrieving the most relevant
// documents and summarizing their combined text.
package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"ragsum/internal/domain"
	"ragsum/internal/retriever"
	"ragsum/internal/summarizer"
)

// Result is the outcome of a retrieval-augmented summarization query.
type Result struct {
	Query     string
	Retrieved []domain.SearchResult
	Summary   string
	Method    summarizer.Kind
}

// Pipeline composes the retriever with the summarizer family.
type Pipeline struct {
	retriever   *retriever.Retriever
	summarizers map[summarizer.Kind]domain.Summarizer
}

// New creates a pipeline holding one instance of every summarizer.
func New(r *retriever.Retriever) *Pipeline {
	return &Pipeline{retriever: r, summarizers: summarizer.All()}
}

// IndexDocuments builds the retrieval index over the collection.
// Calling it again replaces the index wholesale.
func (p *Pipeline) IndexDocuments(docs []domain.Document) error {
	return p.retriever.BuildIndex(docs)
}

// Indexed reports whether an index is ready for queries.
func (p *Pipeline) Indexed() bool { return p.retriever.Built() }

// QueryAndSummarize retrieves the topK documents closest to query,
// joins their contents with newlines in retrieval order, and
// summarizes the combination with the named method.
func (p *Pipeline) QueryAndSummarize(query string, topK, targetSentences int, method summarizer.Kind) (*Result, error) {
	summ, ok := p.summarizers[method]
	if !ok {
		return nil, fmt.Errorf("query: unknown summarizer %q: %w", method, domain.ErrConfig)
	}
	retrieved, err := p.retriever.Retrieve(query, topK)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}
	summary, err := summ.Summarize(combine(retrieved), targetSentences)
	if err != nil {
		return nil, fmt.Errorf("summarize with %s: %w", method, err)
	}
	log.Debug().Str("query", query).Str("method", string(method)).Int("retrieved", len(retrieved)).Msg("query summarized")
	return &Result{Query: query, Retrieved: retrieved, Summary: summary, Method: method}, nil
}

// CompareMethods runs every summarizer on the same text and returns
// all results keyed by method. It is all-or-nothing: the first failing
// method fails the whole call.
func (p *Pipeline) CompareMethods(text string, targetSentences int) (map[summarizer.Kind]string, error) {
	out := make(map[summarizer.Kind]string, len(p.summarizers))
	for _, kind := range summarizer.Kinds() {
		summary, err := p.summarizers[kind].Summarize(text, targetSentences)
		if err != nil {
			return nil, fmt.Errorf("summarize with %s: %w", kind, err)
		}
		out[kind] = summary
	}
	return out, nil
}

// QueryAndCompare retrieves once and runs every summarizer on the
// combined retrieved text.
func (p *Pipeline) QueryAndCompare(query string, topK, targetSentences int) ([]domain.SearchResult, map[summarizer.Kind]string, error) {
	retrieved, err := p.retriever.Retrieve(query, topK)
	if err != nil {
		return nil, nil, fmt.Errorf("query %q: %w", query, err)
	}
	summaries, err := p.CompareMethods(combine(retrieved), targetSentences)
	if err != nil {
		return nil, nil, err
	}
	return retrieved, summaries, nil
}

// combine joins retrieved document contents in retrieval order with a
// newline as the document boundary.
func combine(results []domain.SearchResult) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Document.Content
	}
	return strings.Join(parts, "\n")
}
