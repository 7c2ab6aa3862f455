package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragsum/internal/domain"
	"ragsum/internal/embedding/hashing"
	"ragsum/internal/retriever"
	"ragsum/internal/service"
	"ragsum/internal/summarizer"
	"ragsum/internal/vectorstore/exact"
)

var docs = []domain.Document{
	{ID: "1", Title: "Quantum", Category: "science", Content: "Quantum computing breakthroughs depend on error correction. Qubits lose their state through the slightest disturbance. Researchers spread logical information across many physical qubits."},
	{ID: "2", Title: "Cooking", Category: "food", Content: "Sourdough cooking starts with a living culture of yeast. Bakers feed the starter daily to keep it active. A hot oven gives the loaf its crackling crust."},
	{ID: "3", Title: "Finance", Category: "finance", Content: "Central banks raised interest rates to fight inflation. Bond yields climbed to decade highs. Heavily indebted companies face painful refinancing."},
}

func newPipeline(t *testing.T) *service.Pipeline {
	t.Helper()
	p := service.New(retriever.New(hashing.New(0), exact.New()))
	require.NoError(t, p.IndexDocuments(docs))
	return p
}

func TestQueryBeforeIndexing(t *testing.T) {
	p := service.New(retriever.New(hashing.New(0), exact.New()))

	_, err := p.QueryAndSummarize("quantum", 1, 2, summarizer.TextRank)
	assert.ErrorIs(t, err, domain.ErrData)
	assert.False(t, p.Indexed())
}

func TestQueryUnknownMethod(t *testing.T) {
	p := newPipeline(t)

	_, err := p.QueryAndSummarize("quantum", 1, 2, summarizer.Kind("abstractive"))
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestQueryAndSummarize(t *testing.T) {
	p := newPipeline(t)

	res, err := p.QueryAndSummarize("quantum computing breakthroughs", 1, 2, summarizer.TextRank)
	require.NoError(t, err)

	require.Len(t, res.Retrieved, 1)
	assert.Equal(t, "1", res.Retrieved[0].Document.ID)
	assert.NotEmpty(t, res.Summary)
	assert.LessOrEqual(t, len(res.Summary), len(res.Retrieved[0].Document.Content))
	assert.Equal(t, summarizer.TextRank, res.Method)
}

func TestQueryAndSummarizeCapsTopK(t *testing.T) {
	p := newPipeline(t)

	res, err := p.QueryAndSummarize("interest rates and inflation", 50, 2, summarizer.Frequency)
	require.NoError(t, err)
	assert.Len(t, res.Retrieved, len(docs))
}

func TestQueryRejectsNonPositiveK(t *testing.T) {
	p := newPipeline(t)

	_, err := p.QueryAndSummarize("quantum", 0, 2, summarizer.TextRank)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestCompareMethods(t *testing.T) {
	p := newPipeline(t)

	summaries, err := p.CompareMethods(docs[0].Content, 2)
	require.NoError(t, err)

	assert.Len(t, summaries, len(summarizer.Kinds()))
	for kind, summary := range summaries {
		assert.NotEmpty(t, summary, "kind %s", kind)
		assert.LessOrEqual(t, len(summary), len(docs[0].Content), "kind %s", kind)
	}
}

func TestCompareMethodsEmptyText(t *testing.T) {
	p := newPipeline(t)

	_, err := p.CompareMethods("  ", 2)
	assert.ErrorIs(t, err, domain.ErrInput)
}

func TestQueryAndCompare(t *testing.T) {
	p := newPipeline(t)

	retrieved, summaries, err := p.QueryAndCompare("sourdough starter cooking", 2, 2)
	require.NoError(t, err)

	assert.Len(t, retrieved, 2)
	assert.Equal(t, "2", retrieved[0].Document.ID)
	assert.Len(t, summaries, len(summarizer.Kinds()))
}

func TestReindexReplacesCollection(t *testing.T) {
	p := newPipeline(t)

	replacement := []domain.Document{
		{ID: "9", Title: "Ocean", Category: "science", Content: "Submersibles map the deep ocean floor. Most of the deep sea remains unexplored."},
	}
	require.NoError(t, p.IndexDocuments(replacement))

	res, err := p.QueryAndSummarize("deep ocean", 5, 1, summarizer.Frequency)
	require.NoError(t, err)
	require.Len(t, res.Retrieved, 1)
	assert.Equal(t, "9", res.Retrieved[0].Document.ID)
}
