// Package bboltstore implements ports.Storage using bbolt (embedded B+ tree).
// Each lexicon fingerprint gets its own top-level bucket holding the
// JSON-serialized snapshot. Writes are transactional — a crash mid-write
// cannot corrupt a previously committed snapshot.
package bboltstore

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/sutra/internal/ports"
)

// Bucket keys
var (
	keyEntries = []byte("entries")
	keyCharMap = []byte("charmap")
)

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveLexicon persists a compiled lexicon snapshot under its fingerprint.
func (s *Store) SaveLexicon(fingerprint string, snap *ports.LexiconSnapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	entriesJSON, err := json.Marshal(snap.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	charMapJSON, err := json.Marshal(snap.CharMap)
	if err != nil {
		return fmt.Errorf("marshal charmap: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(fingerprint))
		if err != nil {
			return err
		}
		if err := b.Put(keyEntries, entriesJSON); err != nil {
			return err
		}
		return b.Put(keyCharMap, charMapJSON)
	})
}

// LoadLexicon retrieves the snapshot for a fingerprint.
// Returns nil, nil if no snapshot exists.
func (s *Store) LoadLexicon(fingerprint string) (*ports.LexiconSnapshot, error) {
	var entriesJSON, charMapJSON []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(fingerprint))
		if b == nil {
			return nil
		}
		// Copy out: bbolt values are only valid inside the transaction.
		if v := b.Get(keyEntries); v != nil {
			entriesJSON = append([]byte(nil), v...)
		}
		if v := b.Get(keyCharMap); v != nil {
			charMapJSON = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if entriesJSON == nil {
		return nil, nil
	}

	snap := &ports.LexiconSnapshot{}
	if err := json.Unmarshal(entriesJSON, &snap.Entries); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}
	if charMapJSON != nil {
		if err := json.Unmarshal(charMapJSON, &snap.CharMap); err != nil {
			return nil, fmt.Errorf("unmarshal charmap: %w", err)
		}
	}
	return snap, nil
}

// DeleteLexicon removes the snapshot for a fingerprint. Idempotent.
func (s *Store) DeleteLexicon(fingerprint string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(fingerprint)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(fingerprint))
	})
}
