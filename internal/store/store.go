package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mmcdole/bookshelf/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketState = []byte("state")
)

const dbFileName = "bookshelf.db"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SlotStore implements domain.Store using BoltDB.
type SlotStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory copy of every slot; authoritative for the session
	cache  map[string][]byte
	closed bool
}

// NewSlotStore opens (or creates) the slot database under baseDir.
// An empty baseDir yields a memory-only store. A non-empty profile gets its
// own subdirectory so separate catalogs never share state.
func NewSlotStore(baseDir, profile string) (*SlotStore, error) {
	if baseDir == "" {
		// Memory-only mode (no persistence)
		return &SlotStore{cache: make(map[string][]byte)}, nil
	}

	dir := baseDir
	if profile != "" {
		dir = filepath.Join(baseDir, hashProfile(profile))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, dbFileName)
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SlotStore{db: db, cache: make(map[string][]byte)}, nil
}

func hashProfile(profile string) string {
	normalized := strings.TrimSpace(strings.ToLower(profile))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

// Close releases the database. Reads keep serving the in-memory copy.
func (s *SlotStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Read decodes the slot at key into dest.
func (s *SlotStore) Read(key string, dest any) bool {
	data, ok := s.load(key)
	if !ok {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Write encodes value and stores it under key.
func (s *SlotStore) Write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	s.mu.Lock()
	s.cache[key] = data
	closed := s.closed
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}
	if closed {
		return domain.ErrStoreClosed
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketState)
		return b.Put([]byte(key), data)
	})
}

// Delete removes the slot at key. Deleting an absent slot is not an error.
func (s *SlotStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.cache, key)
	closed := s.closed
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	if closed {
		return domain.ErrStoreClosed
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketState)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// Keys returns every stored slot name in ascending order.
func (s *SlotStore) Keys() []string {
	seen := make(map[string]bool)

	s.mu.RLock()
	for k := range s.cache {
		seen[k] = true
	}
	closed := s.closed
	s.mu.RUnlock()

	if s.db != nil && !closed {
		s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketState)
			if b == nil {
				return nil
			}
			return b.ForEach(func(k, _ []byte) error {
				seen[string(k)] = true
				return nil
			})
		})
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// load returns the raw bytes for key, promoting disk reads into the cache.
func (s *SlotStore) load(key string) ([]byte, bool) {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return data, true
	}
	closed := s.closed
	s.mu.RUnlock()

	if s.db == nil || closed {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketState)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return nil, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return data, true
}
