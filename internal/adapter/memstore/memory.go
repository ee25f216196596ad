// Package memstore keeps recommendation history for the life of the process.
package memstore

import (
	"sync"

	"movierec/internal/domain"
)

type MemoryHistory struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (s *MemoryHistory) Record(entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns entries newest first. limit <= 0 returns all of them.
func (s *MemoryHistory) List(limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.HistoryEntry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

func (s *MemoryHistory) Close() error {
	return nil
}
