package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible
// embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the embedder implementation.
type EmbedderConfig struct {
	Type      string                `yaml:"type"`
	Dimension int                   `yaml:"dimension"`
	OpenAI    *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
}

// VectorStoreConfig selects the index storage backend.
type VectorStoreConfig struct {
	Type       string `yaml:"type"`
	Collection string `yaml:"collection,omitempty"`
}

// RetrievalConfig configures query-time retrieval.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// SummarizerConfig configures the default summarization method.
type SummarizerConfig struct {
	Default         string `yaml:"default"`
	TargetSentences int    `yaml:"target_sentences"`
}

// DataConfig points at the document collection.
type DataConfig struct {
	// CSVPath overrides the embedded sample articles when set.
	CSVPath string `yaml:"csv_path"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Embedder    EmbedderConfig    `yaml:"embedder"`
	VectorStore VectorStoreConfig `yaml:"vector_store"`
	Retrieval   RetrievalConfig   `yaml:"retrieval"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Data        DataConfig        `yaml:"data"`
}

// Load reads a config from a specified path. If the file does not
// exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then
// ~/.config/ragsum/config.yaml. If neither exists, it writes defaults
// to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as
// needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ragsum", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Embedder:    EmbedderConfig{Type: "hashing", Dimension: 384},
		VectorStore: VectorStoreConfig{Type: "exact"},
		Retrieval:   RetrievalConfig{TopK: 3},
		Summarizer:  SummarizerConfig{Default: "textrank", TargetSentences: 3},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "hashing"
	}
	if cfg.Embedder.Dimension == 0 {
		cfg.Embedder.Dimension = 384
	}
	if cfg.VectorStore.Type == "" {
		cfg.VectorStore.Type = "exact"
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 3
	}
	if cfg.Summarizer.Default == "" {
		cfg.Summarizer.Default = "textrank"
	}
	if cfg.Summarizer.TargetSentences == 0 {
		cfg.Summarizer.TargetSentences = 3
	}
	if cfg.Embedder.Type == "openai" && cfg.Embedder.OpenAI != nil {
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
	}
}
