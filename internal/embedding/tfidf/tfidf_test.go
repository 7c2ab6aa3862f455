package tfidf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragsum/internal/domain"
	"ragsum/internal/embedding/tfidf"
)

func TestEmbedBeforePrepare(t *testing.T) {
	e := tfidf.New()

	_, err := e.Embed("some text")
	assert.ErrorIs(t, err, domain.ErrData)
}

func TestPrepareEmptyCorpus(t *testing.T) {
	e := tfidf.New()

	assert.ErrorIs(t, e.Prepare(nil), domain.ErrData)
}

func TestPrepareAndEmbed(t *testing.T) {
	e := tfidf.New()
	corpus := []string{
		"quantum computers need error correction",
		"sourdough bread needs a starter culture",
		"interest rates shape the bond market",
	}
	require.NoError(t, e.Prepare(corpus))

	assert.Greater(t, e.Dimension(), 0)

	vec, err := e.Embed("quantum error correction")
	require.NoError(t, err)
	assert.Len(t, vec, e.Dimension())

	again, err := e.Embed("quantum error correction")
	require.NoError(t, err)
	assert.Equal(t, vec, again)
}

func TestEmbedUnknownTokensYieldsZeroVector(t *testing.T) {
	e := tfidf.New()
	require.NoError(t, e.Prepare([]string{"alpha beta gamma"}))

	vec, err := e.Embed("unrelated words entirely")
	require.NoError(t, err)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestEmbedEmptyInput(t *testing.T) {
	e := tfidf.New()
	require.NoError(t, e.Prepare([]string{"alpha beta"}))

	_, err := e.Embed("")
	assert.ErrorIs(t, err, domain.ErrInput)
}
