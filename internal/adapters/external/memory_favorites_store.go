package external

import (
	"context"
	"sync"
)

// MemoryFavoritesStore keeps favorites in process memory
type MemoryFavoritesStore struct {
	locations []string
	mutex     sync.RWMutex
}

func NewMemoryFavoritesStore() *MemoryFavoritesStore {
	return &MemoryFavoritesStore{locations: []string{}}
}

func (s *MemoryFavoritesStore) Load(ctx context.Context) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return append([]string{}, s.locations...), nil
}

func (s *MemoryFavoritesStore) Save(ctx context.Context, locations []string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.locations = append([]string{}, locations...)
	return nil
}

// Ping always succeeds
func (s *MemoryFavoritesStore) Ping(ctx context.Context) error {
	return nil
}
