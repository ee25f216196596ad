package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"movierec/internal/domain"
	"movierec/internal/logging"
	"movierec/internal/metrics"
	"movierec/internal/port"
)

// FirstPolicy selects how single-valued fields are taken from a group.
type FirstPolicy string

const (
	// FirstRow takes the group's first row value even when it is null.
	FirstRow FirstPolicy = "first_row"
	// FirstNonNull takes the first non-null value in the group.
	FirstNonNull FirstPolicy = "first_non_null"
)

// ParseFirstPolicy maps a configured policy name; "" means FirstRow.
func ParseFirstPolicy(s string) (FirstPolicy, error) {
	switch FirstPolicy(s) {
	case "", FirstRow:
		return FirstRow, nil
	case FirstNonNull:
		return FirstNonNull, nil
	default:
		return "", fmt.Errorf("unknown first policy: %q", s)
	}
}

// CorpusBuilder aggregates review rows into one record per movie.
type CorpusBuilder struct {
	policy FirstPolicy
}

func NewCorpusBuilder(policy FirstPolicy) *CorpusBuilder {
	if policy == "" {
		policy = FirstRow
	}
	return &CorpusBuilder{policy: policy}
}

// Build groups rows by name and folds each group in input order. Rows with
// a null name are dropped. The corpus is ordered by name.
func (b *CorpusBuilder) Build(rows []domain.RawRow) domain.Corpus {
	groups := make(map[string][]domain.RawRow)
	var keys []string
	for _, row := range rows {
		if row.Name == nil {
			continue
		}
		name := *row.Name
		if _, ok := groups[name]; !ok {
			keys = append(keys, name)
		}
		groups[name] = append(groups[name], row)
	}
	sort.Strings(keys)

	corpus := make(domain.Corpus, 0, len(keys))
	for _, name := range keys {
		corpus = append(corpus, b.fold(name, groups[name]))
	}
	return corpus
}

func (b *CorpusBuilder) fold(name string, group []domain.RawRow) domain.ItemRecord {
	rec := domain.ItemRecord{
		Name:          name,
		AverageRating: meanRating(group),
		Description:   b.first(group, func(r domain.RawRow) *string { return r.Description }),
		Genres:        b.first(group, func(r domain.RawRow) *string { return r.Genres }),
		Emotions:      distinctEmotions(group),
	}
	rec.CombinedText = CombinedText(rec.Description, rec.Genres)
	return rec
}

func (b *CorpusBuilder) first(group []domain.RawRow, field func(domain.RawRow) *string) *string {
	if b.policy == FirstNonNull {
		for _, row := range group {
			if v := field(row); v != nil {
				return v
			}
		}
		return nil
	}
	return field(group[0])
}

// CombinedText joins description and genres with a single space, treating
// null as empty. The result is never empty.
func CombinedText(description, genres *string) string {
	d, g := "", ""
	if description != nil {
		d = *description
	}
	if genres != nil {
		g = *genres
	}
	return d + " " + g
}

// meanRating averages the present ratings; NaN when none are present.
func meanRating(group []domain.RawRow) float64 {
	sum, n := 0.0, 0
	for _, row := range group {
		if math.IsNaN(row.Rating) {
			continue
		}
		sum += row.Rating
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

func distinctEmotions(group []domain.RawRow) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, row := range group {
		if row.Emotion == nil {
			continue
		}
		if _, ok := seen[*row.Emotion]; ok {
			continue
		}
		seen[*row.Emotion] = struct{}{}
		tags = append(tags, *row.Emotion)
	}
	sort.Strings(tags)
	return tags
}

// LoadCorpus reads rows from source and builds the corpus.
func LoadCorpus(ctx context.Context, source port.RowSource, builder *CorpusBuilder) (domain.Corpus, error) {
	start := time.Now()

	rows, err := source.Load(ctx)
	if err != nil {
		metrics.DatasetLoadErrors.Inc()
		return nil, err
	}
	metrics.DatasetRowsTotal.Add(float64(len(rows)))

	corpus := builder.Build(rows)
	metrics.CorpusItems.Set(float64(len(corpus)))

	logging.Ctx(ctx).Info().
		Int("rows", len(rows)).
		Int("items", len(corpus)).
		Dur("duration", time.Since(start)).
		Msg("corpus built")

	return corpus, nil
}
