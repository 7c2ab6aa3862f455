package domain

// Document is a single article in the collection. Documents are loaded
// once at startup and treated as read-only afterwards.
type Document struct {
	ID       string
	Title    string
	Content  string
	Category string
}

// SearchResult pairs a retrieved document with its distance from the
// query vector. Smaller distance means a closer match.
type SearchResult struct {
	Document Document
	Distance float64
}

// Similarity maps the distance onto (0, 1], higher is better. Used for
// display only; ordering is always by distance.
func (r SearchResult) Similarity() float64 {
	return 1 / (1 + r.Distance)
}

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
	EmbedBatch(texts []string) ([][]float64, error)
}

// VectorStore holds one vector per indexed document and answers
// nearest-neighbor queries.
type VectorStore interface {
	Init(dimension int) error
	Upsert(docs []Document, vectors [][]float64) error
	Search(vector []float64, k int) ([]SearchResult, error)
	Len() int
}

// Summarizer produces an extractive summary of the provided text.
type Summarizer interface {
	Name() string
	Summarize(text string, targetSentences int) (string, error)
}
