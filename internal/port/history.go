package port

import "movierec/internal/domain"

// HistoryStore keeps past recommendations, newest first on List.
type HistoryStore interface {
	Record(entry domain.HistoryEntry) error

	// List returns at most limit entries; limit <= 0 means all.
	List(limit int) ([]domain.HistoryEntry, error)

	Close() error
}
