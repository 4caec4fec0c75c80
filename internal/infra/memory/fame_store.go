package memory

import (
	"context"
	"sync"

	"ethics-quiz-service/internal/domain"
)

// FameStore is an in-memory app.FameStore for tests and the no-redis
// deployment. Lists are copied on the way in and out so callers can never
// alias the stored state.
type FameStore struct {
	mu    sync.RWMutex
	lists map[domain.Tier][]domain.HallOfFameEntry
}

func NewFameStore() *FameStore {
	return &FameStore{
		lists: make(map[domain.Tier][]domain.HallOfFameEntry),
	}
}

func (s *FameStore) Load(_ context.Context, tier domain.Tier) ([]domain.HallOfFameEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.lists[tier]
	if !ok {
		return nil, nil
	}
	out := make([]domain.HallOfFameEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *FameStore) Save(_ context.Context, tier domain.Tier, entries []domain.HallOfFameEntry) error {
	stored := make([]domain.HallOfFameEntry, len(entries))
	copy(stored, entries)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[tier] = stored
	return nil
}
