package summarizer

import (
	"ragsum/internal/tokenize"
)

// Metrics describes how much a summary compressed its input.
type Metrics struct {
	CompressionRatio  float64
	OriginalSentences int
	SummarySentences  int
	OriginalWords     int
	SummaryWords      int
}

// Measure computes comparison metrics between an original text and its
// summary. Empty inputs yield zero values.
func Measure(original, summary string) Metrics {
	m := Metrics{
		OriginalSentences: len(tokenize.Sentences(original)),
		SummarySentences:  len(tokenize.Sentences(summary)),
		OriginalWords:     len(tokenize.Words(original)),
		SummaryWords:      len(tokenize.Words(summary)),
	}
	if m.OriginalWords > 0 {
		m.CompressionRatio = float64(m.SummaryWords) / float64(m.OriginalWords)
	}
	return m
}
