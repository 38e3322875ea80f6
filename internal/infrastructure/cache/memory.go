// Package cache implements ports.CollectionCache: one raw JSON payload
// per collection key, dropped wholesale on invalidation. There are no
// partial updates; mutations always force a refetch of the whole
// collection.
package cache

import (
	"context"
	"sync"

	"github.com/freshcart/store-console/internal/metrics"
)

// Memory is the per-process cache used by the interactive dashboard.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	payload, ok := m.entries[key]
	m.mu.RUnlock()

	if ok {
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}
	return payload, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = payload
	return nil
}

func (m *Memory) Invalidate(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	metrics.CacheInvalidationsTotal.WithLabelValues(key).Inc()
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string][]byte)
	metrics.CacheInvalidationsTotal.WithLabelValues("*").Inc()
	return nil
}
