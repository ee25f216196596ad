package port

import "movierec/internal/domain"

// Ranker scores every corpus item against a query and returns the best k.
type Ranker interface {
	// Rank never fails on content: empty corpora, queries or texts degrade to
	// empty or zero-scored results.
	Rank(corpus domain.Corpus, query string, k int) []domain.RankedResult
}
