// Package vectorizer turns text into bag-of-words count vectors.
//
// Vectorization is two-phase: Fit learns a Vocabulary from a set of
// documents, and Vocabulary.Transform maps any text onto it. Terms unknown
// to the vocabulary are ignored by Transform.
package vectorizer

import (
	"math"
	"sort"

	"movierec/internal/port"
)

// CountVectorizer builds vocabularies with a tokenizer.
type CountVectorizer struct {
	tokenizer port.Tokenizer
}

func NewCountVectorizer(tokenizer port.Tokenizer) *CountVectorizer {
	return &CountVectorizer{tokenizer: tokenizer}
}

// Vocabulary maps terms to vector indices.
// Indices follow ascending lexical term order.
type Vocabulary struct {
	tokenizer port.Tokenizer
	index     map[string]int
	terms     []string
}

// Fit builds a vocabulary over every term of every document.
func (v *CountVectorizer) Fit(docs []string) *Vocabulary {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, token := range v.tokenizer.Tokenize(doc) {
			seen[token] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	return &Vocabulary{
		tokenizer: v.tokenizer,
		index:     index,
		terms:     terms,
	}
}

// Size returns the number of distinct terms.
func (voc *Vocabulary) Size() int {
	return len(voc.terms)
}

// Transform counts the vocabulary terms occurring in text.
func (voc *Vocabulary) Transform(text string) TermVector {
	counts := make(map[int]int)
	for _, token := range voc.tokenizer.Tokenize(text) {
		if i, ok := voc.index[token]; ok {
			counts[i]++
		}
	}

	vec := TermVector{
		Indices: make([]int, 0, len(counts)),
		Counts:  make([]int, 0, len(counts)),
	}
	for i := range counts {
		vec.Indices = append(vec.Indices, i)
	}
	sort.Ints(vec.Indices)
	for _, i := range vec.Indices {
		vec.Counts = append(vec.Counts, counts[i])
	}
	return vec
}

// TermVector is a sparse term-frequency vector. Indices are strictly
// increasing and Counts[i] is the count at Indices[i].
type TermVector struct {
	Indices []int
	Counts  []int
}

// IsZero reports whether the vector has no non-zero coordinate.
func (v TermVector) IsZero() bool {
	return len(v.Indices) == 0
}

// SquaredNorm returns the sum of squared counts.
func (v TermVector) SquaredNorm() int {
	n := 0
	for _, c := range v.Counts {
		n += c * c
	}
	return n
}

// Dot returns the dot product of two vectors over the same vocabulary.
func (v TermVector) Dot(o TermVector) int {
	dot := 0
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			dot += v.Counts[i] * o.Counts[j]
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			i++
		default:
			j++
		}
	}
	return dot
}

// Cosine returns the cosine similarity of two count vectors, in [0, 1].
// Zero-magnitude vectors have similarity 0.
func Cosine(a, b TermVector) float64 {
	na, nb := a.SquaredNorm(), b.SquaredNorm()
	if na == 0 || nb == 0 {
		return 0
	}
	// sqrt(na*nb) keeps identical vectors at exactly 1.
	sim := float64(a.Dot(b)) / math.Sqrt(float64(na)*float64(nb))
	if sim > 1 {
		return 1
	}
	if sim < 0 {
		return 0
	}
	return sim
}
