package summarizer

import (
	"math"

	"ragsum/internal/tokenize"
)

// TFIDFSummarizer scores each sentence by the sum of its L2-normalized
// TF-IDF term weights, with IDF computed over the sentences of the
// input itself.
type TFIDFSummarizer struct{}

// NewTFIDF creates a TF-IDF weighted sentence scorer.
func NewTFIDF() *TFIDFSummarizer { return &TFIDFSummarizer{} }

// Name returns the strategy identifier.
func (s *TFIDFSummarizer) Name() string { return string(TFIDF) }

// Summarize returns the top target sentences by TF-IDF weight.
func (s *TFIDFSummarizer) Summarize(text string, targetSentences int) (string, error) {
	return extract(text, targetSentences, s.score)
}

func (s *TFIDFSummarizer) score(sentences []string) []float64 {
	vectors := sentenceTFIDF(sentences)
	scores := make([]float64, len(sentences))
	for i, vec := range vectors {
		sum := 0.0
		for _, w := range vec {
			sum += w
		}
		scores[i] = sum
	}
	return scores
}

// sentenceTFIDF builds an L2-normalized TF-IDF weight map per sentence,
// treating each sentence as a document for IDF purposes.
func sentenceTFIDF(sentences []string) []map[string]float64 {
	n := float64(len(sentences))
	df := map[string]float64{}
	tokenized := make([][]string, len(sentences))
	for i, sent := range sentences {
		tokenized[i] = tokenize.ContentWords(sent)
		seen := map[string]struct{}{}
		for _, tok := range tokenized[i] {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	vectors := make([]map[string]float64, len(sentences))
	for i, tokens := range tokenized {
		tf := map[string]float64{}
		for _, tok := range tokens {
			tf[tok]++
		}
		vec := make(map[string]float64, len(tf))
		norm := 0.0
		for tok, count := range tf {
			idf := math.Log((1+n)/(1+df[tok])) + 1.0
			w := count * idf
			vec[tok] = w
			norm += w * w
		}
		norm = math.Sqrt(norm)
		if norm > 0 {
			for tok := range vec {
				vec[tok] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors
}
