// Package memory provides an in-memory blob store for tests and ephemeral
// runs. State is lost when the process exits.
package memory

import (
	"context"
	"sync"
)

// Store is a storage.KV holding the blob in memory.
type Store struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Load returns a copy of the stored blob, or ok=false when nothing has been
// stored yet.
func (s *Store) Load(_ context.Context) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

// Store replaces the blob.
func (s *Store) Store(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.set = true
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }
