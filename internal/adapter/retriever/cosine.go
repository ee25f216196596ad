package retriever

import (
	"sort"

	"movierec/internal/adapter/vectorizer"
	"movierec/internal/domain"
	"movierec/internal/port"
)

// CosineRanker ranks corpus items by bag-of-words cosine similarity to a
// query. The vocabulary is fitted per call over the corpus and the query.
type CosineRanker struct {
	vectorizer *vectorizer.CountVectorizer
}

func NewCosineRanker(tokenizer port.Tokenizer) *CosineRanker {
	return &CosineRanker{
		vectorizer: vectorizer.NewCountVectorizer(tokenizer),
	}
}

// Rank returns the min(k, len(corpus)) most similar items, best first.
// Equal scores keep corpus order.
func (r *CosineRanker) Rank(corpus domain.Corpus, query string, k int) []domain.RankedResult {
	if len(corpus) == 0 || k <= 0 {
		return nil
	}

	scores := r.Scores(corpus, query)

	results := make([]domain.RankedResult, len(corpus))
	for i, item := range corpus {
		results[i] = domain.RankedResult{
			Item:  item,
			Score: scores[i],
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	for i := range results {
		results[i].Rank = i + 1
	}

	return results
}

// Scores returns the similarity of every corpus item to query, in corpus order.
func (r *CosineRanker) Scores(corpus domain.Corpus, query string) []float64 {
	docs := make([]string, 0, len(corpus)+1)
	for _, item := range corpus {
		docs = append(docs, item.CombinedText)
	}
	docs = append(docs, query)

	vocab := r.vectorizer.Fit(docs)
	queryVec := vocab.Transform(query)

	scores := make([]float64, len(corpus))
	if queryVec.IsZero() {
		return scores
	}
	for i, item := range corpus {
		scores[i] = vectorizer.Cosine(queryVec, vocab.Transform(item.CombinedText))
	}
	return scores
}
