package memory

import (
	"context"
	"sync"

	"github.com/sandevgo/argand/internal/core"
)

// Store is a process-local BlobStore. Nothing survives a restart.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewStore() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, core.ErrBlobNotFound
	}
	return append([]byte(nil), blob...), nil
}

func (s *Store) Write(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	s.blobs[key] = append([]byte(nil), blob...)
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
	return nil
}
