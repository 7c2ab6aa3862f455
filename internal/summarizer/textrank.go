package summarizer

import (
	"math"

	"ragsum/internal/tokenize"
)

// TextRankSummarizer ranks sentences with the TextRank algorithm
// (Mihalcea & Tarau): a sentence-similarity graph weighted by shared
// content words, scored with PageRank-style iteration.
type TextRankSummarizer struct {
	damping   float64
	epsilon   float64
	maxRounds int
}

// NewTextRank creates a TextRank summarizer with the published
// constants.
func NewTextRank() *TextRankSummarizer {
	return &TextRankSummarizer{damping: 0.85, epsilon: 1e-4, maxRounds: 100}
}

// Name returns the strategy identifier.
func (s *TextRankSummarizer) Name() string { return string(TextRank) }

// Summarize returns the top target sentences by TextRank score.
func (s *TextRankSummarizer) Summarize(text string, targetSentences int) (string, error) {
	return extract(text, targetSentences, s.score)
}

func (s *TextRankSummarizer) score(sentences []string) []float64 {
	n := len(sentences)
	tokens := make([][]string, n)
	for i, sent := range sentences {
		tokens[i] = tokenize.ContentWords(sent)
	}
	weights := make([][]float64, n)
	weightSum := make([]float64, n)
	for i := range weights {
		weights[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := overlapSimilarity(tokens[i], tokens[j])
			weights[i][j] = w
			weights[j][i] = w
			weightSum[i] += w
			weightSum[j] += w
		}
	}
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0
	}
	next := make([]float64, n)
	for round := 0; round < s.maxRounds; round++ {
		delta := 0.0
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if weights[j][i] == 0 || weightSum[j] == 0 {
					continue
				}
				sum += weights[j][i] / weightSum[j] * scores[j]
			}
			next[i] = (1 - s.damping) + s.damping*sum
			delta += math.Abs(next[i] - scores[i])
		}
		copy(scores, next)
		if delta < s.epsilon {
			break
		}
	}
	return scores
}

// overlapSimilarity is the TextRank sentence similarity: shared unique
// content words normalized by the log lengths of both sentences.
func overlapSimilarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	denom := math.Log(float64(len(a))) + math.Log(float64(len(b)))
	if denom <= 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	seen := make(map[string]struct{}, len(b))
	common := 0
	for _, t := range b {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := set[t]; ok {
			common++
		}
	}
	return float64(common) / denom
}
