// Package cache provides a Badger-backed response cache for the
// placesearch CLI, so repeated queries do not burn API quota.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"
)

// Entry is one cached API response.
type Entry struct {
	Key      string `badgerhold:"key"`
	Payload  []byte
	StoredAt time.Time
}

// Store is a response cache keyed by endpoint path and encoded query.
type Store struct {
	store  *badgerhold.Store
	logger arbor.ILogger
	ttl    time.Duration
}

// Open opens (or creates) the cache database at path. A ttl of zero
// disables expiry.
func Open(path string, ttl time.Duration, logger arbor.ILogger) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil // Disable default badger logger to use arbor

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	logger.Debug().Str("path", path).Msg("Response cache opened")

	return &Store{
		store:  store,
		logger: logger,
		ttl:    ttl,
	}, nil
}

// Key derives a stable cache key from an endpoint path and its encoded
// query parameters. The API key must not be part of the input.
func Key(endpoint, query string) string {
	sum := sha256.Sum256([]byte(endpoint + "?" + query))
	return hex.EncodeToString(sum[:])
}

// Get unmarshals the cached payload for key into out. The first return is
// false when the key is absent or the entry has expired.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	var entry Entry
	err := s.store.Get(key, &entry)
	if err == badgerhold.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if s.ttl > 0 && time.Since(entry.StoredAt) > s.ttl {
		if err := s.store.Delete(key, Entry{}); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("Failed to evict expired cache entry")
		}
		return false, nil
	}

	if err := json.Unmarshal(entry.Payload, out); err != nil {
		return false, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	return true, nil
}

// Put stores v under key, replacing any previous entry.
func (s *Store) Put(key string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	entry := Entry{
		Key:      key,
		Payload:  payload,
		StoredAt: time.Now(),
	}
	if err := s.store.Upsert(key, entry); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

// Close closes the cache database.
func (s *Store) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
