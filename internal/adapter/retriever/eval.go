package retriever

import "movierec/internal/domain"

// Evaluation summarizes ranking quality for one labelled query.
type Evaluation struct {
	Query          string
	Retrieved      []string
	Precision      float64
	Recall         float64
	ReciprocalRank float64
}

// Evaluate ranks corpus for query and scores the result against the
// expected item names.
func Evaluate(ranker *CosineRanker, corpus domain.Corpus, query string, expected []string, k int) Evaluation {
	results := ranker.Rank(corpus, query, k)
	retrieved := make([]string, len(results))
	for i, r := range results {
		retrieved[i] = r.Item.Name
	}

	eval := Evaluation{
		Query:     query,
		Retrieved: retrieved,
		Precision: PrecisionAtK(retrieved, expected),
		Recall:    RecallAtK(retrieved, expected),
	}
	for _, name := range expected {
		if rr := ReciprocalRank(retrieved, name); rr > eval.ReciprocalRank {
			eval.ReciprocalRank = rr
		}
	}
	return eval
}

func PrecisionAtK(retrieved, relevant []string) float64 {
	if len(retrieved) == 0 {
		return 0
	}
	return float64(hits(retrieved, relevant)) / float64(len(retrieved))
}

func RecallAtK(retrieved, relevant []string) float64 {
	if len(relevant) == 0 {
		return 0
	}
	return float64(hits(retrieved, relevant)) / float64(len(relevant))
}

func ReciprocalRank(retrieved []string, relevant string) float64 {
	for i, r := range retrieved {
		if r == relevant {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

func hits(retrieved, relevant []string) int {
	relevantSet := make(map[string]struct{}, len(relevant))
	for _, r := range relevant {
		relevantSet[r] = struct{}{}
	}
	n := 0
	for _, r := range retrieved {
		if _, ok := relevantSet[r]; ok {
			n++
		}
	}
	return n
}
