package kv

import (
	"context"
	"sync"
)

// MemoryBackend keeps entries in process memory
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]map[string]string
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: map[string]map[string]string{}}
}

// NewMemoryStore returns a single-user in-memory store
func NewMemoryStore() Store {
	return NewMemoryBackend().Scope("")
}

func (b *MemoryBackend) Scope(userID string) Store {
	return &memoryStore{backend: b, userID: userID}
}

type memoryStore struct {
	backend *MemoryBackend
	userID  string
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()
	v, ok := s.backend.entries[s.userID][key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	m, ok := s.backend.entries[s.userID]
	if !ok {
		m = map[string]string{}
		s.backend.entries[s.userID] = m
	}
	m[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()
	delete(s.backend.entries[s.userID], key)
	return nil
}
