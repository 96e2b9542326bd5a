package repository

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in a map. quota caps the total size of all
// values in bytes; zero or less means unlimited.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string][]byte
	quota int
}

func NewMemoryStore(quota int) *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}, quota: quota}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota > 0 {
		used := 0
		for k, v := range s.data {
			if k != key {
				used += len(v)
			}
		}
		if used+len(value) > s.quota {
			return ErrQuotaExceeded
		}
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
