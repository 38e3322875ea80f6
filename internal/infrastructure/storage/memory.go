// Package storage provides the durable token slot behind
// ports.TokenStore: a file under the user config dir by default, an
// in-memory slot for tests, and a Redis slot for shared setups.
package storage

import (
	"context"
	"sync"
)

// MemoryTokenStore keeps the token in memory only. Used in tests and as a
// fallback when no durable location is available.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Get(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
