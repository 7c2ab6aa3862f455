package summarizer

import (
	"math"

	"ragsum/internal/tokenize"
)

// FrequencySummarizer ranks sentences by max-normalized word frequency
// with stopwords filtered out.
type FrequencySummarizer struct{}

// NewFrequency creates a frequency-based sentence ranker.
func NewFrequency() *FrequencySummarizer { return &FrequencySummarizer{} }

// Name returns the strategy identifier.
func (s *FrequencySummarizer) Name() string { return string(Frequency) }

// Summarize returns the top target sentences by token frequency.
func (s *FrequencySummarizer) Summarize(text string, targetSentences int) (string, error) {
	return extract(text, targetSentences, s.score)
}

func (s *FrequencySummarizer) score(sentences []string) []float64 {
	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, tok := range tokenize.ContentWords(sent) {
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}
	scores := make([]float64, len(sentences))
	for i, sent := range sentences {
		tokens := tokenize.ContentWords(sent)
		total := 0.0
		for _, tok := range tokens {
			total += freq[tok]
		}
		// Dampen the long-sentence bias
		if l := float64(len(tokens)); l > 0 {
			total /= math.Sqrt(l)
		}
		scores[i] = total
	}
	return scores
}
