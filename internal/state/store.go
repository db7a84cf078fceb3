// ABOUTME: Badger KV wrapper for on-device state snapshots.
// ABOUTME: Each snapshot lives under its own key; corrupt values read as absent.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

const (
	keyCurrentWorkout = "state:current_workout"
	keyPattern        = "state:pattern"
	keyLastMeal       = "state:last_meal"
	keyRecovery       = "state:recovery"
)

// Store is a thin wrapper over a local Badger database holding the small
// pieces of state that must survive process restart.
type Store struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens or creates the state store at the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// set stores v as JSON under key.
func (s *Store) set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// get loads the value under key into v. Returns false when the key is
// absent. A value that no longer unmarshals is discarded and treated as
// absent rather than surfaced as an error.
func (s *Store) get(key string, v any) (bool, error) {
	s.mu.RLock()

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	s.mu.RUnlock()

	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		// Corrupted snapshot: drop it and start fresh.
		_ = s.del(key)
		return false, nil
	}
	return true, nil
}

// del removes a key. Deleting an absent key is a no-op.
func (s *Store) del(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// setRaw stores raw bytes under key. Used by tests to simulate corruption.
func (s *Store) setRaw(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}
