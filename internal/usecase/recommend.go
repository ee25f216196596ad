package usecase

import (
	"context"
	"strings"
	"time"

	"movierec/internal/domain"
	"movierec/internal/logging"
	"movierec/internal/metrics"
	"movierec/internal/port"
)

// TopK is the number of recommendations returned per query.
const TopK = 5

// QuitCommand ends an interactive session.
const QuitCommand = "quit"

// RecommendUseCase ranks a corpus against free-text preferences.
type RecommendUseCase struct {
	ranker  port.Ranker
	history port.HistoryStore // nil disables recording
}

// NewRecommendUseCase creates a recommend use case. history may be nil.
func NewRecommendUseCase(ranker port.Ranker, history port.HistoryStore) *RecommendUseCase {
	return &RecommendUseCase{
		ranker:  ranker,
		history: history,
	}
}

// Recommendation is the outcome of one query.
type Recommendation struct {
	ID        string
	Query     string
	CreatedAt time.Time
	Results   []domain.RankedResult
}

// Recommend returns the TopK most similar corpus items to query.
func (u *RecommendUseCase) Recommend(ctx context.Context, corpus domain.Corpus, query string) (*Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := logging.RequestIDFromContext(ctx)
	if id == "" {
		id = logging.NewRequestID()
		ctx = logging.ContextWithRequestID(ctx, id)
	}
	log := logging.Ctx(ctx)
	start := time.Now()

	log.Debug().
		Str("query", query).
		Int("corpus_size", len(corpus)).
		Msg("recommend started")

	results := u.ranker.Rank(corpus, query, TopK)

	elapsed := time.Since(start)
	metrics.RecommendDuration.Observe(elapsed.Seconds())
	outcome := "ok"
	if len(results) == 0 {
		outcome = "empty"
	}
	metrics.RecommendationsTotal.WithLabelValues(outcome).Inc()

	var top float64
	for _, r := range results {
		if r.Score == 0 {
			metrics.ZeroScoreResults.Inc()
		}
		if r.Score > top {
			top = r.Score
		}
	}

	log.Info().
		Str("query", query).
		Int("results", len(results)).
		Float64("top_score", top).
		Dur("duration", elapsed).
		Msg("recommend finished")

	rec := &Recommendation{
		ID:        id,
		Query:     query,
		CreatedAt: start.UTC(),
		Results:   results,
	}

	if u.history != nil {
		if err := u.history.Record(rec.HistoryEntry()); err != nil {
			log.Warn().Err(err).Msg("failed to record history")
		}
	}

	return rec, nil
}

// HistoryEntry converts the recommendation into its stored form.
func (r *Recommendation) HistoryEntry() domain.HistoryEntry {
	entry := domain.HistoryEntry{
		ID:        r.ID,
		Query:     r.Query,
		CreatedAt: r.CreatedAt,
		Results:   make([]domain.HistoryResult, len(r.Results)),
	}
	for i, res := range r.Results {
		entry.Results[i] = domain.HistoryResult{
			Name:  res.Item.Name,
			Score: res.Score,
		}
	}
	return entry
}

// IsQuit reports whether input is the quit command, ignoring case and
// surrounding whitespace.
func IsQuit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), QuitCommand)
}
