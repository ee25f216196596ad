package domain

import (
	"math"
	"strings"
	"time"
)

// RawRow is a single review row as read from the dataset.
// Nil string pointers are null cells; a missing rating is NaN.
type RawRow struct {
	Name        *string
	Rating      float64
	Description *string
	Genres      *string
	Emotion     *string
}

// ItemRecord is the aggregate of every row sharing one movie name.
type ItemRecord struct {
	Name          string
	AverageRating float64
	Description   *string
	Genres        *string
	Emotions      []string
	CombinedText  string
}

// DescriptionText returns the description, or "" when it is null.
func (r ItemRecord) DescriptionText() string {
	return valueOr(r.Description, "")
}

// GenresText returns the genres, or "" when they are null.
func (r ItemRecord) GenresText() string {
	return valueOr(r.Genres, "")
}

// EmotionsText renders the emotion tags joined with ", ".
func (r ItemRecord) EmotionsText() string {
	return strings.Join(r.Emotions, ", ")
}

// HasRating reports whether the item carries a finite average rating.
// Infinite values from the dataset are treated like a missing rating.
func (r ItemRecord) HasRating() bool {
	return !math.IsNaN(r.AverageRating) && !math.IsInf(r.AverageRating, 0)
}

// Corpus is the ordered set of items a query is matched against.
type Corpus []ItemRecord

// Names returns the item names in corpus order.
func (c Corpus) Names() []string {
	names := make([]string, len(c))
	for i, item := range c {
		names[i] = item.Name
	}
	return names
}

type RankedResult struct {
	Rank  int
	Item  ItemRecord
	Score float64
}

// HistoryEntry is one recorded recommendation.
type HistoryEntry struct {
	ID        string          `json:"id"`
	Query     string          `json:"query"`
	CreatedAt time.Time       `json:"created_at"`
	Results   []HistoryResult `json:"results"`
}

type HistoryResult struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// StringPtr returns a pointer to s. Useful for building rows in code.
func StringPtr(s string) *string {
	return &s
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
