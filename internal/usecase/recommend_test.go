package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierec/internal/adapter/analyzer"
	"movierec/internal/adapter/memstore"
	"movierec/internal/adapter/retriever"
	"movierec/internal/domain"
	"movierec/internal/logging"
)

func sampleCorpus() domain.Corpus {
	return NewCorpusBuilder(FirstRow).Build([]domain.RawRow{
		row("Interstellar", 9, s("A team travels through space"), s("Sci-Fi, Adventure"), s("awe")),
		row("Heat", 8, s("A detective hunts a crew of thieves"), s("Action, Crime"), s("tense")),
		row("Notebook", 7, s("A summer romance"), s("Romance, Drama"), s("sad")),
	})
}

func newUseCase(history *memstore.MemoryHistory) *RecommendUseCase {
	ranker := retriever.NewCosineRanker(analyzer.NewTokenizer())
	if history == nil {
		return NewRecommendUseCase(ranker, nil)
	}
	return NewRecommendUseCase(ranker, history)
}

func TestRecommend_RanksBestFirst(t *testing.T) {
	uc := newUseCase(nil)

	rec, err := uc.Recommend(context.Background(), sampleCorpus(), "space adventure")

	require.NoError(t, err)
	require.Len(t, rec.Results, 3)
	assert.Equal(t, "Interstellar", rec.Results[0].Item.Name)
	assert.Equal(t, 1, rec.Results[0].Rank)
	assert.Greater(t, rec.Results[0].Score, 0.0)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "space adventure", rec.Query)
}

func TestRecommend_EmptyCorpus(t *testing.T) {
	rec, err := newUseCase(nil).Recommend(context.Background(), nil, "anything")

	require.NoError(t, err)
	assert.Empty(t, rec.Results)
}

func TestRecommend_KeepsRequestID(t *testing.T) {
	ctx := logging.ContextWithRequestID(context.Background(), "req-1")

	rec, err := newUseCase(nil).Recommend(ctx, sampleCorpus(), "romance")

	require.NoError(t, err)
	assert.Equal(t, "req-1", rec.ID)
}

func TestRecommend_RecordsHistory(t *testing.T) {
	history := memstore.NewMemoryHistory()
	uc := newUseCase(history)

	_, err := uc.Recommend(context.Background(), sampleCorpus(), "thieves crime")
	require.NoError(t, err)

	entries, err := history.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "thieves crime", entries[0].Query)
	require.Len(t, entries[0].Results, 3)
	assert.Equal(t, "Heat", entries[0].Results[0].Name)
}

type failingHistory struct{}

func (failingHistory) Record(domain.HistoryEntry) error         { return errors.New("disk full") }
func (failingHistory) List(int) ([]domain.HistoryEntry, error) { return nil, nil }
func (failingHistory) Close() error                             { return nil }

func TestRecommend_HistoryFailureIsNotFatal(t *testing.T) {
	uc := NewRecommendUseCase(retriever.NewCosineRanker(analyzer.NewTokenizer()), failingHistory{})

	rec, err := uc.Recommend(context.Background(), sampleCorpus(), "romance")

	require.NoError(t, err)
	assert.Equal(t, "Notebook", rec.Results[0].Item.Name)
}

func TestRecommend_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newUseCase(nil).Recommend(ctx, sampleCorpus(), "romance")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"quit", true},
		{"QUIT", true},
		{"  Quit \n", true},
		{"quitting", false},
		{"", false},
		{"exit", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsQuit(tt.input), tt.input)
	}
}
