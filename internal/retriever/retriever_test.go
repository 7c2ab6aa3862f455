package retriever_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragsum/internal/domain"
	"ragsum/internal/embedding/hashing"
	"ragsum/internal/retriever"
	"ragsum/internal/vectorstore/exact"
)

var sampleDocs = []domain.Document{
	{ID: "1", Title: "Quantum", Category: "science", Content: "Quantum computing breakthroughs rely on fragile qubits and error correction. Researchers race to scale quantum processors."},
	{ID: "2", Title: "Cooking", Category: "food", Content: "Cooking sourdough bread takes a lively starter and a long fermentation. The crust crackles out of a hot oven."},
	{ID: "3", Title: "Finance", Category: "finance", Content: "Finance markets react to rising interest rates. Bond yields climb while stocks swing."},
}

func newRetriever(t *testing.T) *retriever.Retriever {
	t.Helper()
	r := retriever.New(hashing.New(0), exact.New())
	require.NoError(t, r.BuildIndex(sampleDocs))
	return r
}

func TestBuildIndexEmptyCollection(t *testing.T) {
	r := retriever.New(hashing.New(0), exact.New())

	assert.ErrorIs(t, r.BuildIndex(nil), domain.ErrData)
	assert.False(t, r.Built())
}

func TestRetrieveBeforeBuild(t *testing.T) {
	r := retriever.New(hashing.New(0), exact.New())

	_, err := r.Retrieve("anything", 1)
	assert.ErrorIs(t, err, domain.ErrData)
}

func TestRetrieveRejectsNonPositiveK(t *testing.T) {
	r := newRetriever(t)

	_, err := r.Retrieve("quantum", 0)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestRetrieveEmptyQuery(t *testing.T) {
	r := newRetriever(t)

	_, err := r.Retrieve("  ", 1)
	assert.ErrorIs(t, err, domain.ErrInput)
}

func TestRetrieveTopicScenario(t *testing.T) {
	r := newRetriever(t)

	results, err := r.Retrieve("quantum computing breakthroughs", 1)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].Document.ID)
}

func TestRetrieveSortedAndCapped(t *testing.T) {
	r := newRetriever(t)

	results, err := r.Retrieve("interest rates", 10)
	require.NoError(t, err)

	assert.Len(t, results, len(sampleDocs))
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].Distance, results[i-1].Distance)
	}
}

func TestRetrieveRoundTrip(t *testing.T) {
	r := newRetriever(t)

	results, err := r.Retrieve("anything at all", len(sampleDocs))
	require.NoError(t, err)

	require.Len(t, results, len(sampleDocs))
	seen := map[string]int{}
	for _, res := range results {
		seen[res.Document.ID]++
	}
	for _, d := range sampleDocs {
		assert.Equal(t, 1, seen[d.ID], "document %s retrieved exactly once", d.ID)
	}
}

func TestRebuildReplacesIndex(t *testing.T) {
	r := newRetriever(t)

	replacement := []domain.Document{
		{ID: "9", Title: "Only", Category: "science", Content: "A single replacement document about telescopes."},
	}
	require.NoError(t, r.BuildIndex(replacement))

	results, err := r.Retrieve("telescopes", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "9", results[0].Document.ID)
}

func TestSimilarityInUnitRange(t *testing.T) {
	r := newRetriever(t)

	results, err := r.Retrieve("quantum computing", 3)
	require.NoError(t, err)
	for _, res := range results {
		assert.Greater(t, res.Similarity(), 0.0)
		assert.LessOrEqual(t, res.Similarity(), 1.0)
	}
}
