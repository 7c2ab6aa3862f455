// Package tokenize provides the sentence and word splitting shared by
// the embedders and summarizers.
package tokenize

import (
	"regexp"
	"strings"
)

var (
	wordRe     = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
	sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?]+)`)
)

// Sentences splits text into trimmed sentences. Trailing text without
// terminal punctuation is kept as a final sentence.
func Sentences(text string) []string {
	matches := sentenceRe.FindAllStringIndex(text, -1)
	var out []string
	last := 0
	for _, m := range matches {
		s := strings.TrimSpace(text[m[0]:m[1]])
		if s != "" {
			out = append(out, s)
		}
		last = m[1]
	}
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		out = append(out, tail)
	}
	return out
}

// Words returns the lowercased word tokens of text, stopwords included.
func Words(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// ContentWords returns the lowercased word tokens with stopwords
// removed.
func ContentWords(text string) []string {
	raw := Words(text)
	out := raw[:0]
	for _, t := range raw {
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// IsStopword reports whether the lowercased token is a stopword.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now", "have", "has", "had", "do", "does", "did", "not", "no", "nor", "they", "them", "their", "we", "our", "you", "your", "he", "she", "his", "her", "i", "me", "my", "which", "who", "whom", "what", "when", "where", "why", "how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "only",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
