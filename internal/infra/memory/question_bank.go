package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"ethics-quiz-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// CatalogLoader fetches the full question catalog from a backing store.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]domain.Question, error)
}

// StaticCatalogLoader serves a fixed in-memory catalog (tests/demos and the
// no-database deployment).
type StaticCatalogLoader struct {
	questions []domain.Question
}

func NewStaticCatalogLoader(questions []domain.Question) *StaticCatalogLoader {
	return &StaticCatalogLoader{questions: questions}
}

func (l *StaticCatalogLoader) LoadCatalog(context.Context) ([]domain.Question, error) {
	return l.questions, nil
}

// QuestionBank caches the catalog with TTL to avoid repeated loader hits
// and samples rounds from it: filter by tier, uniform shuffle, take the
// first count. The catalog itself is never mutated.
type QuestionBank struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu        sync.Mutex
	rnd       *rand.Rand
	catalog   []domain.Question
	expiresAt time.Time
}

func NewQuestionBank(loader CatalogLoader, ttl time.Duration) *QuestionBank {
	return &QuestionBank{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (b *QuestionBank) Sample(ctx context.Context, tier domain.Tier, count int) ([]domain.Question, error) {
	catalog, err := b.load(ctx)
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

func (b *QuestionBank) load(ctx context.Context) ([]domain.Question, error) {
	now := b.clock()

	b.mu.Lock()
	if b.catalog != nil && b.expiresAt.After(now) {
		catalog := b.catalog
		b.mu.Unlock()
		return catalog, nil
	}
	b.mu.Unlock()

	result, err, _ := b.sf.Do("catalog", func() (interface{}, error) {
		now := b.clock()
		b.mu.Lock()
		if b.catalog != nil && b.expiresAt.After(now) {
			catalog := b.catalog
			b.mu.Unlock()
			return catalog, nil
		}
		b.mu.Unlock()

		catalog, err := b.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}

		ttl := b.ttlWithJitter()
		b.mu.Lock()
		b.catalog = catalog
		b.expiresAt = now.Add(ttl)
		b.mu.Unlock()
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (b *QuestionBank) ttlWithJitter() time.Duration {
	if b.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(b.ttl) / 10
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ttl + time.Duration(b.rnd.Int63n(jitterMax+1))
}
