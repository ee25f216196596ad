package store

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the layout of the history bucket.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// schemaVersion returns the stored schema version, 0 for a fresh file.
func (s *BoltHistory) schemaVersion() (int, error) {
	var version int
	err := s.db.View(func(tx *bbolt.Tx) error {
		version = readVersion(tx)
		return nil
	})
	return version, err
}

func readVersion(tx *bbolt.Tx) int {
	data := tx.Bucket(bucketMeta).Get(keySchemaVersion)
	if len(data) != 8 {
		return 0
	}
	return int(binary.BigEndian.Uint64(data))
}

// migrate stamps a fresh file with the current version. History written
// under any other version is discarded.
func (s *BoltHistory) migrate() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		version := readVersion(tx)
		if version == CurrentSchemaVersion {
			return nil
		}
		if version != 0 {
			if err := resetBucket(tx, bucketHistory); err != nil {
				return fmt.Errorf("history reset from v%d failed: %w", version, err)
			}
		}
		data := make([]byte, 8)
		binary.BigEndian.PutUint64(data, uint64(CurrentSchemaVersion))
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, data)
	})
}

func resetBucket(tx *bbolt.Tx, name []byte) error {
	if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
		return err
	}
	_, err := tx.CreateBucket(name)
	return err
}

// Clear removes every history entry.
func (s *BoltHistory) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return resetBucket(tx, bucketHistory)
	})
}
