package kvstore

import (
	"context"
	"sync"

	appErrors "github.com/noah-isme/sma-mobile-sdk/pkg/errors"
)

// MemStore is an in-memory Store used by tests and demo mode.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites forces Set to fail, simulating a storage hiccup.
	FailWrites bool
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "key not found: "+key)
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemStore) Set(_ context.Context, key string, value []byte) error {
	if s.FailWrites {
		return appErrors.Clone(appErrors.ErrStorage, "simulated write failure")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *MemStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
