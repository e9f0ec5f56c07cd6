package repository

import (
	"context"
	"sync"

	"github.com/davidkarpay/tokenvault/internal/errors"
)

// MemoryStore is an in-memory key-value store.
//
// Used as a test double and as the fallback when the file store cannot be
// opened (operate-without-persistence mode). Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[string]string{}}
}

// Put stores value under key, replacing any previous value.
func (m *MemoryStore) Put(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

// Get returns the value stored under key.
// Returns errors.ErrNotFound if the key is absent.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[key]
	if !ok {
		return "", errors.Wrapf(errors.ErrNotFound, "slot %q", key)
	}
	return value, nil
}

// Remove deletes the value stored under key. Removing an absent key is not an error.
func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
