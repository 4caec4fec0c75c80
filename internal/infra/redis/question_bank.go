package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"ethics-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// CatalogLoader fetches the full question catalog from a backing store
// (e.g., postgres).
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.Question, error)
}

const catalogKey = "quiz:catalog"

// QuestionBank caches the question catalog in Redis as one JSON value and
// falls back to the loader on a miss. Sampling filters the cached catalog
// by tier, shuffles, and takes the first count elements.
type QuestionBank struct {
	client *redis.Client
	loader CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuestionBank(client *redis.Client, loader CatalogLoader, ttl time.Duration) *QuestionBank {
	return &QuestionBank{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *QuestionBank) Sample(ctx context.Context, tier domain.Tier, count int) ([]domain.Question, error) {
	catalog, err := b.catalog(ctx)
	if err != nil {
		return nil, err
	}

	picked := make([]domain.Question, 0, count)
	for _, q := range catalog {
		if q.Tier == tier {
			picked = append(picked, q)
		}
	}

	b.mu.Lock()
	b.rnd.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	b.mu.Unlock()

	if count < len(picked) {
		picked = picked[:count]
	}
	return picked, nil
}

func (b *QuestionBank) catalog(ctx context.Context) ([]domain.Question, error) {
	if catalog, ok := b.cached(ctx); ok {
		return catalog, nil
	}

	result, err, _ := b.sf.Do(catalogKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if catalog, ok := b.cached(ctx); ok {
			return catalog, nil
		}

		catalog, err := b.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}

		if raw, err := json.Marshal(catalog); err == nil {
			_ = b.client.Set(ctx, catalogKey, raw, b.ttlWithJitter()).Err()
		}
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (b *QuestionBank) cached(ctx context.Context) ([]domain.Question, bool) {
	raw, err := b.client.Get(ctx, catalogKey).Bytes()
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	var catalog []domain.Question
	if err := json.Unmarshal(raw, &catalog); err != nil || len(catalog) == 0 {
		return nil, false
	}
	return catalog, true
}

func (b *QuestionBank) ttlWithJitter() time.Duration {
	if b.ttl <= 0 {
		return 0
	}
	jitterMax := int64(b.ttl) / 10
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ttl + time.Duration(b.rnd.Int63n(jitterMax+1))
}
