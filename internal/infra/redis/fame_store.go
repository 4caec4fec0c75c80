package redis

import (
	"context"
	"encoding/json"
	"log"

	"ethics-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// FameStore persists each tier's hall-of-fame list as one JSON array value
// (fame:low, fame:high). Missing or corrupt data reads as an empty list so
// a bad record can never take the game down.
type FameStore struct {
	client *redis.Client
}

func NewFameStore(client *redis.Client) *FameStore {
	return &FameStore{client: client}
}

func (s *FameStore) Load(ctx context.Context, tier domain.Tier) ([]domain.HallOfFameEntry, error) {
	raw, err := s.client.Get(ctx, s.key(tier)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []domain.HallOfFameEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Printf("corrupt hall of fame data for tier %s, treating as empty: %v", tier, err)
		return nil, nil
	}
	return entries, nil
}

func (s *FameStore) Save(ctx context.Context, tier domain.Tier, entries []domain.HallOfFameEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	// Lists are kept forever; only the top-100 truncation removes entries.
	return s.client.Set(ctx, s.key(tier), raw, 0).Err()
}

func (s *FameStore) key(tier domain.Tier) string {
	return "fame:" + string(tier)
}
