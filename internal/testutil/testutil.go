// Package testutil provides test utilities and helpers.
package testutil

import (
	"errors"
	"sync"
	"time"
)

// MemoryStorage is an in-memory kvstore.Storage implementation for handler
// tests. It honors TTLs and mirrors the gofiber storage convention of
// returning (nil, nil) on a miss.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// FailNext makes the next operation return an error, for exercising
	// the generic-failure paths.
	FailNext bool
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string]memoryEntry)}
}

var errForcedFailure = errors.New("forced storage failure")

// Get returns the value for key, or (nil, nil) if absent or expired.
func (m *MemoryStorage) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailNext {
		m.FailNext = false
		return nil, errForcedFailure
	}

	entry, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	if !entry.expires.IsZero() && time.Now().After(entry.expires) {
		delete(m.entries, key)
		return nil, nil
	}
	return entry.value, nil
}

// Set stores val under key with the given expiration (zero means no expiry).
func (m *MemoryStorage) Set(key string, val []byte, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailNext {
		m.FailNext = false
		return errForcedFailure
	}

	entry := memoryEntry{value: val}
	if exp > 0 {
		entry.expires = time.Now().Add(exp)
	}
	m.entries[key] = entry
	return nil
}

// Delete removes key.
func (m *MemoryStorage) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Close is a no-op.
func (m *MemoryStorage) Close() error { return nil }

// Len returns the number of stored entries.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
