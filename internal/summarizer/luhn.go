package summarizer

import (
	"ragsum/internal/tokenize"
)

// LuhnSummarizer implements Luhn's significant-word method: a sentence
// scores by the densest cluster of significant words it contains,
// where clusters may bridge up to maxGap insignificant words.
type LuhnSummarizer struct {
	// minFrequency is the occurrence count a content word needs to be
	// considered significant.
	minFrequency int
	// maxGap is the number of insignificant words allowed inside a
	// cluster before it is closed.
	maxGap int
}

// NewLuhn creates a Luhn summarizer with the classic parameters.
func NewLuhn() *LuhnSummarizer {
	return &LuhnSummarizer{minFrequency: 2, maxGap: 4}
}

// Name returns the strategy identifier.
func (s *LuhnSummarizer) Name() string { return string(Luhn) }

// Summarize returns the top target sentences by cluster score.
func (s *LuhnSummarizer) Summarize(text string, targetSentences int) (string, error) {
	return extract(text, targetSentences, s.score)
}

func (s *LuhnSummarizer) score(sentences []string) []float64 {
	freq := map[string]int{}
	for _, sent := range sentences {
		for _, tok := range tokenize.ContentWords(sent) {
			freq[tok]++
		}
	}
	significant := map[string]struct{}{}
	for tok, f := range freq {
		if f >= s.minFrequency {
			significant[tok] = struct{}{}
		}
	}
	// Very short inputs may repeat nothing; fall back to treating all
	// content words as significant so scores stay comparable.
	if len(significant) == 0 {
		for tok := range freq {
			significant[tok] = struct{}{}
		}
	}
	scores := make([]float64, len(sentences))
	for i, sent := range sentences {
		scores[i] = s.clusterScore(tokenize.Words(sent), significant)
	}
	return scores
}

// clusterScore finds the window with the highest density of
// significant words and returns significant² / span.
func (s *LuhnSummarizer) clusterScore(words []string, significant map[string]struct{}) float64 {
	best := 0.0
	start := -1
	count := 0
	gap := 0
	for i, w := range words {
		if _, ok := significant[w]; ok {
			if start < 0 {
				start = i
				count = 0
			}
			count++
			gap = 0
			span := float64(i - start + 1)
			if score := float64(count*count) / span; score > best {
				best = score
			}
			continue
		}
		if start >= 0 {
			gap++
			if gap > s.maxGap {
				start = -1
				gap = 0
			}
		}
	}
	return best
}
