package redis

import (
	"context"
	"testing"

	"ethics-quiz-service/internal/domain"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestFameStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewFameStore(newClient(mr))
	ctx := context.Background()

	if entries, err := store.Load(ctx, domain.TierLow); err != nil || len(entries) != 0 {
		t.Fatalf("expected empty load for missing key, got %v, err %v", entries, err)
	}

	saved := []domain.HallOfFameEntry{
		{Name: "Jun", Grade: 2, Score: 300, Date: 111},
		{Name: "민수", Grade: 5, Score: 200, Date: 222},
	}
	if err := store.Save(ctx, domain.TierLow, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("fame:low") {
		t.Fatalf("expected fame:low key to be set")
	}

	loaded, err := store.Load(ctx, domain.TierLow)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 || loaded[1].Name != "민수" || loaded[1].Date != 222 {
		t.Fatalf("unexpected load: %+v", loaded)
	}
}

func TestFameStoreCorruptDataReadsEmpty(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	mr.Set("fame:high", "{not json")

	store := NewFameStore(newClient(mr))
	entries, err := store.Load(context.Background(), domain.TierHigh)
	if err != nil {
		t.Fatalf("corrupt data must fail open, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty list, got %+v", entries)
	}
}

func TestFameStoreTierKeysAreIndependent(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewFameStore(newClient(mr))
	ctx := context.Background()

	_ = store.Save(ctx, domain.TierLow, []domain.HallOfFameEntry{{Name: "Low", Grade: 1, Score: 1, Date: 1}})
	_ = store.Save(ctx, domain.TierHigh, []domain.HallOfFameEntry{{Name: "High", Grade: 6, Score: 2, Date: 2}})

	low, _ := store.Load(ctx, domain.TierLow)
	high, _ := store.Load(ctx, domain.TierHigh)
	if len(low) != 1 || low[0].Name != "Low" {
		t.Fatalf("unexpected low list: %+v", low)
	}
	if len(high) != 1 || high[0].Name != "High" {
		t.Fatalf("unexpected high list: %+v", high)
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
