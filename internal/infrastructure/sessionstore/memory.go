// Package sessionstore implementa repository.SessionStorage sobre distintos backends
// (memoria, archivo bbolt, SQLite y Redis). Solo guarda cadenas bajo claves fijas.
package sessionstore

import (
	"context"
	"sync"

	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
)

var _ repository.SessionStorage = (*MemoryStorage)(nil)

// MemoryStorage almacenamiento volátil; útil en tests y con SESSION_BACKEND=memory.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStorage construye un almacenamiento vacío.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStorage) Close() error { return nil }
