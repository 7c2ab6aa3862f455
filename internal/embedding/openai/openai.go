// Package openai implements an embedder backed by an OpenAI-compatible
// embeddings endpoint. It exists for setups that want a real sentence
// encoder instead of the local hashing embedder; the rest of the
// system does not depend on it.
package openai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"ragsum/internal/domain"
)

// Client is an OpenAI-compatible embeddings client implementing the
// Embedder interface.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	dimension  int
	client     *http.Client
	maxRetries int
}

// Config configures the embeddings client.
type Config struct {
	BaseURL   string
	APIKeyEnv string
	Model     string
	Timeout   time.Duration
}

// NewClient creates an embeddings client. A missing API key is a
// startup dependency failure, not a per-call error.
func NewClient(cfg Config) (*Client, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s: %w", cfg.APIKeyEnv, domain.ErrDependency)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "text-embedding-3-small"
	}
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     key,
		model:      cfg.Model,
		client:     &http.Client{Timeout: t},
		maxRetries: 5,
	}, nil
}

// Name returns the identifier of this embedder implementation.
func (c *Client) Name() string { return "openai" }

// Prepare is not required for remote embedding; the dimension is set
// lazily on the first embed.
func (c *Client) Prepare(corpus []string) error { return nil }

// Dimension returns the dimensionality of the produced vectors.
func (c *Client) Dimension() int { return c.dimension }

// Embed returns an embedding vector for the given text.
func (c *Client) Embed(text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("embed: empty text: %w", domain.ErrInput)
	}
	vectors, err := c.request([]string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch embeds every text in one request, preserving order.
func (c *Client) EmbedBatch(texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embed batch: no texts: %w", domain.ErrInput)
	}
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("embed batch: empty text %d: %w", i, domain.ErrInput)
		}
	}
	return c.request(texts)
}

func (c *Client) request(inputs []string) ([][]float64, error) {
	type reqBody struct {
		Input []string `json:"input"`
		Model string   `json:"model"`
	}
	url := fmt.Sprintf("%s/embeddings", c.baseURL)
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		data, _ := json.Marshal(reqBody{Input: inputs, Model: c.model})
		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(retryDelay(attempt))
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			// Respect Retry-After if provided
			delay := retryDelay(attempt)
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if secs, err := strconv.Atoi(ra); err == nil {
					delay = time.Duration(secs) * time.Second
				}
			}
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("embeddings request failed: %s", resp.Status)
			time.Sleep(delay)
			continue
		}

		if resp.StatusCode >= 300 {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("embeddings request failed: %s", resp.Status)
		}

		payload, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = err
			time.Sleep(retryDelay(attempt))
			continue
		}
		var out struct {
			Data []struct {
				Index     int       `json:"index"`
				Embedding []float64 `json:"embedding"`
			} `json:"data"`
		}
		if err := json.Unmarshal(payload, &out); err != nil {
			return nil, err
		}
		if len(out.Data) != len(inputs) {
			return nil, fmt.Errorf("expected %d embeddings, got %d", len(inputs), len(out.Data))
		}
		vectors := make([][]float64, len(inputs))
		for _, d := range out.Data {
			if d.Index < 0 || d.Index >= len(vectors) {
				return nil, fmt.Errorf("embedding index %d out of range", d.Index)
			}
			vectors[d.Index] = d.Embedding
		}
		if c.dimension == 0 && len(vectors[0]) > 0 {
			c.dimension = len(vectors[0])
		}
		return vectors, nil
	}
	return nil, fmt.Errorf("embeddings request exhausted retries: %w", lastErr)
}

func retryDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	base := 200 * time.Millisecond
	// exponential backoff capped at 5s
	d := base << attempt
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
