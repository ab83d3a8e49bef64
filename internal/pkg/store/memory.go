package store

import (
	"context"
	"sync"

	"github.com/endeavored/classwatch/internal/pkg/models"
)

// MemoryStore keeps the watch list for the life of the process.
type MemoryStore struct {
	mu sync.RWMutex
	wl models.WatchList
}

func NewMemoryStore(initial models.WatchList) *MemoryStore {
	return &MemoryStore{wl: initial.Clone()}
}

func (s *MemoryStore) Load(ctx context.Context) (models.WatchList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wl.Clone(), nil
}

func (s *MemoryStore) Update(ctx context.Context, fn func(*models.WatchList) error) (models.WatchList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.wl.Clone()
	if err := fn(&next); err != nil {
		return s.wl.Clone(), err
	}
	s.wl = next
	return next.Clone(), nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }
