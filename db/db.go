// Package db caches fingering search results keyed by chord and search
// settings.
package db

import (
	"sync"

	"github.com/jsphweid/fretfinder/fingering"
)

type Entry struct {
	Found      bool
	Fingering  fingering.Fingering
	Candidates int
}

type Cache interface {
	Get(key string) (Entry, bool, error)
	Put(key string, e Entry) error
}

type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]Entry)}
}

func (m *MemoryCache) Get(key string) (Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	return e, ok, nil
}

func (m *MemoryCache) Put(key string, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = e
	return nil
}
