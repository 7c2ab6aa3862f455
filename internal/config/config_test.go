package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragsum/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "hashing", cfg.Embedder.Type)
	assert.Equal(t, 384, cfg.Embedder.Dimension)
	assert.Equal(t, "exact", cfg.VectorStore.Type)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, "textrank", cfg.Summarizer.Default)
	assert.Equal(t, 3, cfg.Summarizer.TargetSentences)
}

func TestLoadAppliesDefaultsToPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summarizer:\n  default: lexrank\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lexrank", cfg.Summarizer.Default)
	assert.Equal(t, 3, cfg.Summarizer.TargetSentences)
	assert.Equal(t, "hashing", cfg.Embedder.Type)
	assert.Equal(t, 384, cfg.Embedder.Dimension)
}

func TestLoadOpenAIDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "embedder:\n  type: openai\n  openai:\n    model: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Embedder.OpenAI)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Embedder.OpenAI.BaseURL)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Embedder.OpenAI.APIKeyEnv)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedder.OpenAI.Model)
	assert.Equal(t, 30, cfg.Embedder.OpenAI.TimeoutSecs)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := &config.AppConfig{
		Embedder:    config.EmbedderConfig{Type: "tfidf"},
		VectorStore: config.VectorStoreConfig{Type: "chromem", Collection: "articles"},
		Retrieval:   config.RetrievalConfig{TopK: 7},
		Summarizer:  config.SummarizerConfig{Default: "luhn", TargetSentences: 5},
	}
	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tfidf", loaded.Embedder.Type)
	assert.Equal(t, "chromem", loaded.VectorStore.Type)
	assert.Equal(t, "articles", loaded.VectorStore.Collection)
	assert.Equal(t, 7, loaded.Retrieval.TopK)
	assert.Equal(t, "luhn", loaded.Summarizer.Default)
	assert.Equal(t, 5, loaded.Summarizer.TargetSentences)
}
