package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	chromemgo "github.com/philippgille/chromem-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ragsum/internal/config"
	"ragsum/internal/data"
	"ragsum/internal/domain"
	"ragsum/internal/embedding/hashing"
	"ragsum/internal/embedding/openai"
	"ragsum/internal/embedding/tfidf"
	"ragsum/internal/retriever"
	"ragsum/internal/service"
	"ragsum/internal/summarizer"
	"ragsum/internal/tui"
	"ragsum/internal/vectorstore/chromem"
	"ragsum/internal/vectorstore/exact"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath   string
		query     string
		topK      int
		sentences int
		method    string
		compare   bool
		debug     bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/ragsum/config.yaml if not provided)")
	flag.StringVar(&query, "query", "", "Run a single query and print the result instead of starting the TUI")
	flag.IntVar(&topK, "k", 0, "Number of documents to retrieve (overrides config)")
	flag.IntVar(&sentences, "sentences", 0, "Target summary length in sentences (overrides config)")
	flag.StringVar(&method, "method", "", "Summarization method (overrides config)")
	flag.BoolVar(&compare, "compare", false, "Run every summarization method on the query result")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if topK <= 0 {
		topK = cfg.Retrieval.TopK
	}
	if sentences <= 0 {
		sentences = cfg.Summarizer.TargetSentences
	}
	if method == "" {
		method = cfg.Summarizer.Default
	}

	emb, err := buildEmbedder(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("embedder init failed")
	}
	store, err := buildStore(cfg, emb)
	if err != nil {
		log.Fatal().Err(err).Msg("vector store init failed")
	}

	docs, err := data.Load(cfg.Data.CSVPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load document collection")
	}
	log.Info().Int("documents", len(docs)).Strs("categories", data.Categories(docs)).Msg("collection loaded")

	pipeline := service.New(retriever.New(emb, store))
	if err := pipeline.IndexDocuments(docs); err != nil {
		log.Fatal().Err(err).Msg("failed to index documents")
	}

	if query != "" {
		runOnce(pipeline, query, topK, sentences, summarizer.Kind(method), compare)
		return
	}

	model := tui.New(pipeline, topK, sentences, summarizer.Kind(method))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal().Err(err).Msg("tui failed")
	}
}

func buildEmbedder(cfg *config.AppConfig) (domain.Embedder, error) {
	switch cfg.Embedder.Type {
	case "hashing", "":
		return hashing.New(cfg.Embedder.Dimension), nil
	case "tfidf":
		return tfidf.New(), nil
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			return nil, fmt.Errorf("openai embedder config missing: %w", domain.ErrConfig)
		}
		return openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown embedder %q: %w", cfg.Embedder.Type, domain.ErrConfig)
	}
}

func buildStore(cfg *config.AppConfig, emb domain.Embedder) (domain.VectorStore, error) {
	switch cfg.VectorStore.Type {
	case "exact", "":
		return exact.New(), nil
	case "chromem":
		embedFn := func(ctx context.Context, text string) ([]float32, error) {
			vec, err := emb.Embed(text)
			if err != nil {
				return nil, err
			}
			out := make([]float32, len(vec))
			for i, v := range vec {
				out[i] = float32(v)
			}
			return out, nil
		}
		return chromem.New(cfg.VectorStore.Collection, chromemgo.EmbeddingFunc(embedFn)), nil
	default:
		return nil, fmt.Errorf("unknown vector store %q: %w", cfg.VectorStore.Type, domain.ErrConfig)
	}
}

func runOnce(p *service.Pipeline, query string, topK, sentences int, method summarizer.Kind, compare bool) {
	if compare {
		retrieved, summaries, err := p.QueryAndCompare(query, topK, sentences)
		if err != nil {
			log.Fatal().Err(err).Msg("query failed")
		}
		printRetrieved(retrieved)
		for _, kind := range summarizer.Kinds() {
			fmt.Printf("\n[%s]\n%s\n", kind, summaries[kind])
		}
		return
	}
	res, err := p.QueryAndSummarize(query, topK, sentences, method)
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}
	printRetrieved(res.Retrieved)
	fmt.Printf("\n[%s]\n%s\n", res.Method, res.Summary)
	combined := ""
	for _, r := range res.Retrieved {
		combined += r.Document.Content + "\n"
	}
	m := summarizer.Measure(combined, res.Summary)
	fmt.Printf("\ncompression %.0f%%, %d -> %d sentences, %d -> %d words\n",
		m.CompressionRatio*100, m.OriginalSentences, m.SummarySentences, m.OriginalWords, m.SummaryWords)
}

func printRetrieved(results []domain.SearchResult) {
	for i, r := range results {
		fmt.Printf("%d. %s [%s] distance=%.4f similarity=%.3f\n",
			i+1, r.Document.Title, r.Document.Category, r.Distance, r.Similarity())
	}
}
