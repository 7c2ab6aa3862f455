// Package summarizer implements a family of extractive summarization
// strategies behind a single contract: score the sentences of the
// input, keep the top-scoring ones, and return them in their original
// order of appearance.
package summarizer

import (
	"fmt"
	"sort"
	"strings"

	"ragsum/internal/domain"
	"ragsum/internal/tokenize"
)

// Kind names a summarization strategy.
type Kind string

const (
	TextRank  Kind = "textrank"
	LexRank   Kind = "lexrank"
	Luhn      Kind = "luhn"
	TFIDF     Kind = "tfidf"
	Frequency Kind = "frequency"
)

// Kinds lists every available strategy in a stable order.
func Kinds() []Kind {
	return []Kind{TextRank, LexRank, Luhn, TFIDF, Frequency}
}

// New returns the summarizer for the given kind.
func New(kind Kind) (domain.Summarizer, error) {
	switch kind {
	case TextRank:
		return NewTextRank(), nil
	case LexRank:
		return NewLexRank(), nil
	case Luhn:
		return NewLuhn(), nil
	case TFIDF:
		return NewTFIDF(), nil
	case Frequency:
		return NewFrequency(), nil
	default:
		return nil, fmt.Errorf("unknown summarizer %q: %w", kind, domain.ErrConfig)
	}
}

// All returns one instance of every summarizer keyed by kind.
func All() map[Kind]domain.Summarizer {
	out := make(map[Kind]domain.Summarizer, len(Kinds()))
	for _, k := range Kinds() {
		s, _ := New(k)
		out[k] = s
	}
	return out
}

// scoreFunc assigns an importance score to each sentence.
type scoreFunc func(sentences []string) []float64

// extract runs the shared extractive pipeline: validate, split into
// sentences, short-circuit when the target covers the whole input,
// score, and rejoin the top sentences in original order.
func extract(text string, targetSentences int, score scoreFunc) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("summarize: empty text: %w", domain.ErrInput)
	}
	if targetSentences <= 0 {
		return "", fmt.Errorf("summarize: target sentences %d: %w", targetSentences, domain.ErrConfig)
	}
	sentences := tokenize.Sentences(text)
	if targetSentences >= len(sentences) {
		return text, nil
	}
	scores := score(sentences)
	idxs := make([]int, len(sentences))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool { return scores[idxs[a]] > scores[idxs[b]] })
	selected := append([]int(nil), idxs[:targetSentences]...)
	sort.Ints(selected)
	parts := make([]string, len(selected))
	for i, idx := range selected {
		parts[i] = sentences[idx]
	}
	return strings.Join(parts, " "), nil
}
