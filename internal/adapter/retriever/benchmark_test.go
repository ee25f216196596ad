package retriever

import (
	"fmt"
	"testing"

	"movierec/internal/domain"
)

func TestPrecisionAtK(t *testing.T) {
	cases := []struct {
		name      string
		retrieved []string
		relevant  []string
		wantP     float64
	}{
		{"perfect", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 1.0},
		{"partial", []string{"a", "b", "x"}, []string{"a", "b", "c"}, 0.666},
		{"none", []string{"x", "y", "z"}, []string{"a", "b", "c"}, 0.0},
		{"empty_retrieved", []string{}, []string{"a", "b"}, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := PrecisionAtK(tc.retrieved, tc.relevant)
			if diff := p - tc.wantP; diff > 0.01 || diff < -0.01 {
				t.Errorf("precision = %.3f, want %.3f", p, tc.wantP)
			}
		})
	}
}

func TestRecallAtK(t *testing.T) {
	cases := []struct {
		name      string
		retrieved []string
		relevant  []string
		wantR     float64
	}{
		{"perfect", []string{"a", "b", "c"}, []string{"a", "b", "c"}, 1.0},
		{"partial", []string{"a", "x"}, []string{"a", "b", "c"}, 0.333},
		{"empty_relevant", []string{"a", "b"}, []string{}, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := RecallAtK(tc.retrieved, tc.relevant)
			if diff := r - tc.wantR; diff > 0.01 || diff < -0.01 {
				t.Errorf("recall = %.3f, want %.3f", r, tc.wantR)
			}
		})
	}
}

func TestReciprocalRank(t *testing.T) {
	cases := []struct {
		name      string
		retrieved []string
		relevant  string
		want      float64
	}{
		{"first", []string{"a", "b", "c"}, "a", 1.0},
		{"second", []string{"x", "a", "c"}, "a", 0.5},
		{"missing", []string{"x", "y", "z"}, "a", 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := ReciprocalRank(tc.retrieved, tc.relevant)
			if diff := rr - tc.want; diff > 0.01 || diff < -0.01 {
				t.Errorf("RR = %.3f, want %.3f", rr, tc.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	corpus := domain.Corpus{
		item("Alien", "crew hunted by creature in space horror"),
		item("Notebook", "romantic drama summer love"),
		item("Gravity", "astronaut stranded in space drama"),
	}

	eval := Evaluate(newRanker(), corpus, "space horror", []string{"Alien"}, 2)

	if eval.ReciprocalRank != 1.0 {
		t.Errorf("expected Alien ranked first, got %v", eval.Retrieved)
	}
	if eval.Recall != 1.0 {
		t.Errorf("recall = %.3f, want 1", eval.Recall)
	}
}

func benchmarkCorpus(n int) domain.Corpus {
	genres := []string{"action", "drama", "comedy", "horror", "romance", "thriller", "animation"}
	corpus := make(domain.Corpus, n)
	for i := range corpus {
		text := fmt.Sprintf("story number %d about hero%d and villain%d %s %s",
			i, i%50, i%37, genres[i%len(genres)], genres[(i*3)%len(genres)])
		corpus[i] = item(fmt.Sprintf("movie-%04d", i), text)
	}
	return corpus
}

func BenchmarkRank(b *testing.B) {
	for _, n := range []int{100, 1000, 5000} {
		corpus := benchmarkCorpus(n)
		ranker := newRanker()
		b.Run(fmt.Sprintf("corpus=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ranker.Rank(corpus, "hero7 horror comedy", 5)
			}
		})
	}
}
