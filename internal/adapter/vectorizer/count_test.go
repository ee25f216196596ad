package vectorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movierec/internal/adapter/analyzer"
)

func newVectorizer() *CountVectorizer {
	return NewCountVectorizer(analyzer.NewTokenizer())
}

func TestFit_SortedVocabulary(t *testing.T) {
	voc := newVectorizer().Fit([]string{"space adventure action", "romantic drama", "space action"})

	assert.Equal(t, []string{"action", "adventure", "drama", "romantic", "space"}, voc.terms)
	assert.Equal(t, 5, voc.Size())

	i, ok := voc.index["space"]
	require.True(t, ok)
	assert.Equal(t, 4, i)

	_, ok = voc.index["the"]
	assert.False(t, ok, "stopwords never enter the vocabulary")
}

func TestTransform_Counts(t *testing.T) {
	voc := newVectorizer().Fit([]string{"space space action", "drama"})

	vec := voc.Transform("Space action, SPACE and drama")
	assert.Equal(t, []int{0, 1, 2}, vec.Indices)
	assert.Equal(t, []int{1, 1, 2}, vec.Counts)
	assert.Equal(t, 6, vec.SquaredNorm())
}

func TestTransform_IgnoresUnknownTerms(t *testing.T) {
	voc := newVectorizer().Fit([]string{"drama"})

	vec := voc.Transform("zombie musical")
	assert.True(t, vec.IsZero())
}

func TestFit_EmptyVocabulary(t *testing.T) {
	voc := newVectorizer().Fit([]string{"", " ", "the and of"})

	assert.Equal(t, 0, voc.Size())
	assert.True(t, voc.Transform("the").IsZero())
}

func TestDot(t *testing.T) {
	a := TermVector{Indices: []int{0, 2, 5}, Counts: []int{1, 3, 2}}
	b := TermVector{Indices: []int{2, 3, 5}, Counts: []int{2, 7, 1}}

	assert.Equal(t, 8, a.Dot(b))
	assert.Equal(t, a.Dot(b), b.Dot(a))
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b TermVector
		want float64
	}{
		{
			name: "identical",
			a:    TermVector{Indices: []int{0, 1}, Counts: []int{1, 1}},
			b:    TermVector{Indices: []int{0, 1}, Counts: []int{1, 1}},
			want: 1,
		},
		{
			name: "identical with repeats",
			a:    TermVector{Indices: []int{0, 3}, Counts: []int{2, 3}},
			b:    TermVector{Indices: []int{0, 3}, Counts: []int{2, 3}},
			want: 1,
		},
		{
			name: "disjoint",
			a:    TermVector{Indices: []int{0}, Counts: []int{1}},
			b:    TermVector{Indices: []int{1}, Counts: []int{1}},
			want: 0,
		},
		{
			name: "zero vector",
			a:    TermVector{},
			b:    TermVector{Indices: []int{1}, Counts: []int{1}},
			want: 0,
		},
		{
			name: "both zero",
			a:    TermVector{},
			b:    TermVector{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cosine(tt.a, tt.b))
		})
	}
}

func TestCosine_Partial(t *testing.T) {
	// [1,1,0] vs [1,0,1] -> 1/2
	a := TermVector{Indices: []int{0, 1}, Counts: []int{1, 1}}
	b := TermVector{Indices: []int{0, 2}, Counts: []int{1, 1}}

	assert.InDelta(t, 0.5, Cosine(a, b), 1e-12)
}
