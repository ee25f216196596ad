// Package store persists recommendation history in a bbolt file.
package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"go.etcd.io/bbolt"

	"movierec/internal/domain"
)

var (
	bucketHistory = []byte("history")
	bucketMeta    = []byte("meta")
)

// BoltHistory is a port.HistoryStore backed by bbolt.
type BoltHistory struct {
	db *bbolt.DB
}

// OpenBoltHistory opens or creates the history file at path, creating
// parent directories as needed.
func OpenBoltHistory(path string) (*BoltHistory, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketHistory, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &BoltHistory{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// historyKey orders entries by time, with the id breaking ties.
func historyKey(entry domain.HistoryEntry) []byte {
	key := make([]byte, 8, 8+len(entry.ID))
	binary.BigEndian.PutUint64(key, uint64(entry.CreatedAt.UnixNano()))
	return append(key, entry.ID...)
}

func (s *BoltHistory) Record(entry domain.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketHistory).Put(historyKey(entry), data)
	})
}

// List returns entries newest first. limit <= 0 returns all of them.
func (s *BoltHistory) List(limit int) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketHistory).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var entry domain.HistoryEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to decode history entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}

// Count returns the number of stored entries.
func (s *BoltHistory) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketHistory).Stats().KeyN
		return nil
	})
	return n, err
}

func (s *BoltHistory) Close() error {
	return s.db.Close()
}
