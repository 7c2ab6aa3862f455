package chromem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragsum/internal/domain"
	"ragsum/internal/vectorstore/chromem"
)

func newStore(t *testing.T, vectors [][]float64) *chromem.Store {
	t.Helper()
	s := chromem.New("articles", nil)
	require.NoError(t, s.Init(len(vectors[0])))
	docs := make([]domain.Document, len(vectors))
	for i := range docs {
		docs[i] = domain.Document{ID: string(rune('a' + i)), Title: "t", Content: "c", Category: "science"}
	}
	require.NoError(t, s.Upsert(docs, vectors))
	return s
}

func TestSearchAscendingDistance(t *testing.T) {
	s := newStore(t, [][]float64{
		{1, 0},
		{0, 1},
		{0.9, 0.1},
	})

	results, err := s.Search([]float64{1, 0}, 3)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Document.ID)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].Distance, results[i-1].Distance)
	}
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Distance, 0.0)
	}
}

func TestSearchCapsAtStoreSize(t *testing.T) {
	s := newStore(t, [][]float64{{1, 0}, {0, 1}})

	results, err := s.Search([]float64{1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchRejectsNonPositiveK(t *testing.T) {
	s := newStore(t, [][]float64{{1, 0}})

	_, err := s.Search([]float64{1, 0}, 0)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestSearchBeforeInit(t *testing.T) {
	s := chromem.New("articles", nil)

	_, err := s.Search([]float64{1, 0}, 1)
	assert.ErrorIs(t, err, domain.ErrData)
}

func TestUpsertBeforeInit(t *testing.T) {
	s := chromem.New("articles", nil)

	err := s.Upsert([]domain.Document{{ID: "a"}}, [][]float64{{1, 0}})
	assert.ErrorIs(t, err, domain.ErrData)
}

func TestUpsertLengthMismatch(t *testing.T) {
	s := chromem.New("articles", nil)
	require.NoError(t, s.Init(2))

	err := s.Upsert([]domain.Document{{ID: "a"}}, nil)
	assert.ErrorIs(t, err, domain.ErrData)
}

func TestUpsertDimensionMismatch(t *testing.T) {
	s := chromem.New("articles", nil)
	require.NoError(t, s.Init(2))

	err := s.Upsert([]domain.Document{{ID: "a"}}, [][]float64{{1, 0, 0}})
	assert.ErrorIs(t, err, domain.ErrData)
}

func TestInitRejectsBadDimension(t *testing.T) {
	s := chromem.New("articles", nil)
	assert.ErrorIs(t, s.Init(0), domain.ErrConfig)
}

func TestInitResetsStore(t *testing.T) {
	s := newStore(t, [][]float64{{1, 0}})
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.Init(3))
	assert.Equal(t, 0, s.Len())
}
