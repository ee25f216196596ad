package cli

import (
	"context"
	"path/filepath"

	"movierec/internal/adapter/analyzer"
	"movierec/internal/adapter/dataset"
	"movierec/internal/adapter/memstore"
	"movierec/internal/adapter/retriever"
	"movierec/internal/adapter/store"
	"movierec/internal/domain"
	"movierec/internal/port"
	"movierec/internal/usecase"
)

// loadCorpus reads the configured dataset and aggregates it.
func loadCorpus(ctx context.Context) (domain.Corpus, error) {
	opts := []dataset.Option{dataset.WithDelimiter(cfg.DelimiterRune())}
	if cfg.Dataset.Progress {
		opts = append(opts, dataset.WithProgress(printer.err))
	}
	reader := dataset.NewCSVReader(cfg.Dataset.Path, opts...)

	policy, err := usecase.ParseFirstPolicy(cfg.Aggregation.FirstPolicy)
	if err != nil {
		return nil, err
	}
	return usecase.LoadCorpus(ctx, reader, usecase.NewCorpusBuilder(policy))
}

func newRanker() (*retriever.CosineRanker, error) {
	tokenizer, err := analyzer.NewTokenizerFor(cfg.Recommend.Stopwords)
	if err != nil {
		return nil, err
	}
	return retriever.NewCosineRanker(tokenizer), nil
}

func historyPath() string {
	if filepath.IsAbs(cfg.History.Path) {
		return cfg.History.Path
	}
	return filepath.Join(rootDir, cfg.History.Path)
}

// openHistory returns the persistent store when history is enabled. With
// session set, a disabled history falls back to an in-memory store;
// otherwise it returns nil.
func openHistory(session bool) (port.HistoryStore, error) {
	if cfg.History.Enabled {
		s, err := store.OpenBoltHistory(historyPath())
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	if session {
		return memstore.NewMemoryHistory(), nil
	}
	return nil, nil
}

func newRecommendUseCase(history port.HistoryStore) (*usecase.RecommendUseCase, error) {
	ranker, err := newRanker()
	if err != nil {
		return nil, err
	}
	return usecase.NewRecommendUseCase(ranker, history), nil
}
