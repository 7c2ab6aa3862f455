package summarizer

import (
	"math"
)

// LexRankSummarizer ranks sentences with LexRank (Erkan & Radev):
// eigenvector centrality over a cosine-similarity graph of sentence
// TF-IDF vectors, thresholded and degree-normalized, solved with the
// damped power method.
type LexRankSummarizer struct {
	threshold float64
	damping   float64
	epsilon   float64
	maxRounds int
}

// NewLexRank creates a LexRank summarizer with the usual 0.1 cosine
// threshold.
func NewLexRank() *LexRankSummarizer {
	return &LexRankSummarizer{threshold: 0.1, damping: 0.85, epsilon: 1e-4, maxRounds: 100}
}

// Name returns the strategy identifier.
func (s *LexRankSummarizer) Name() string { return string(LexRank) }

// Summarize returns the top target sentences by LexRank centrality.
func (s *LexRankSummarizer) Summarize(text string, targetSentences int) (string, error) {
	return extract(text, targetSentences, s.score)
}

func (s *LexRankSummarizer) score(sentences []string) []float64 {
	n := len(sentences)
	vectors := sentenceTFIDF(sentences)

	// Thresholded adjacency, then row-normalize into a stochastic
	// matrix. Self-similarity is always 1 so no row is empty.
	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		adj[i][i] = 1
		for j := i + 1; j < n; j++ {
			if cosine(vectors[i], vectors[j]) >= s.threshold {
				adj[i][j] = 1
				adj[j][i] = 1
			}
		}
	}
	for i := 0; i < n; i++ {
		degree := 0.0
		for j := 0; j < n; j++ {
			degree += adj[i][j]
		}
		for j := 0; j < n; j++ {
			adj[i][j] /= degree
		}
	}

	// Damped power method on the transpose of the stochastic matrix.
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}
	next := make([]float64, n)
	uniform := (1 - s.damping) / float64(n)
	for round := 0; round < s.maxRounds; round++ {
		delta := 0.0
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += adj[j][i] * scores[j]
			}
			next[i] = uniform + s.damping*sum
			delta += math.Abs(next[i] - scores[i])
		}
		copy(scores, next)
		if delta < s.epsilon {
			break
		}
	}
	return scores
}

func cosine(a, b map[string]float64) float64 {
	// Both maps are already L2-normalized, so the dot product is the
	// cosine similarity.
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for tok, w := range a {
		dot += w * b[tok]
	}
	return dot
}
