package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps the token in process memory. It is the default
// store and the equivalent of tab-local browser storage.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryStore) Clear(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := s.set
	s.token = ""
	s.set = false
	return removed, nil
}
