package app

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"

	"ethics-quiz-service/internal/domain"
)

// MaxFameEntries caps each tier's persisted list.
const MaxFameEntries = 100

// FameStore is the persistence capability behind the hall of fame. A read
// of missing data returns an empty list; implementations log and fail open
// on corrupt payloads.
type FameStore interface {
	Load(ctx context.Context, tier domain.Tier) ([]domain.HallOfFameEntry, error)
	Save(ctx context.Context, tier domain.Tier, entries []domain.HallOfFameEntry) error
}

// HallOfFame ranks and persists per-tier best scores. The
// load-merge-sort-truncate-save sequence for a tier runs as one atomic
// unit so concurrent submissions cannot lose updates.
type HallOfFame struct {
	store FameStore
	mu    sync.Mutex
}

func NewHallOfFame(store FameStore) *HallOfFame {
	return &HallOfFame{store: store}
}

// Upsert merges entry into the tier's list keyed by (name, grade): an
// existing record is replaced only by a strictly higher score; a new
// identity is appended. Returns the updated top-100 list. Persistence
// failures are best-effort and never fail the session.
func (h *HallOfFame) Upsert(ctx context.Context, tier domain.Tier, entry domain.HallOfFameEntry) []domain.HallOfFameEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.store.Load(ctx, tier)
	if err != nil {
		log.Printf("hall of fame read failed for tier %s, starting empty: %v", tier, err)
		entries = nil
	}

	entries = mergeEntry(entries, entry)
	sortEntries(entries)
	if len(entries) > MaxFameEntries {
		entries = entries[:MaxFameEntries]
	}

	if err := h.store.Save(ctx, tier, entries); err != nil {
		log.Printf("hall of fame write failed for tier %s: %v", tier, err)
	}
	return entries
}

// TopK returns the first k entries of the tier's ranked list, or fewer if
// the list is shorter. Missing data reads as an empty list, never an error.
func (h *HallOfFame) TopK(ctx context.Context, tier domain.Tier, k int) []domain.HallOfFameEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.store.Load(ctx, tier)
	if err != nil {
		log.Printf("hall of fame read failed for tier %s: %v", tier, err)
		return nil
	}
	if k < len(entries) {
		entries = entries[:k]
	}
	return entries
}

// Best returns each tier's leading entry for the start screen, nil where a
// tier has no records yet.
func (h *HallOfFame) Best(ctx context.Context) map[domain.Tier]*domain.HallOfFameEntry {
	best := make(map[domain.Tier]*domain.HallOfFameEntry, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		best[tier] = nil
		if top := h.TopK(ctx, tier, 1); len(top) > 0 {
			entry := top[0]
			best[tier] = &entry
		}
	}
	return best
}

// Export serializes the tier's full list as pretty-printed JSON for
// download. An empty list yields ErrNoEntries so callers can show a notice
// instead of an empty file.
func (h *HallOfFame) Export(ctx context.Context, tier domain.Tier) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.store.Load(ctx, tier)
	if err != nil {
		log.Printf("hall of fame read failed for tier %s: %v", tier, err)
		entries = nil
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoEntries
	}
	return json.MarshalIndent(entries, "", "  ")
}

func mergeEntry(entries []domain.HallOfFameEntry, entry domain.HallOfFameEntry) []domain.HallOfFameEntry {
	for i := range entries {
		if entries[i].SameIdentity(entry) {
			if entry.Score > entries[i].Score {
				entries[i] = entry
			}
			return entries
		}
	}
	return append(entries, entry)
}

// sortEntries orders by score descending, ties broken by earlier
// submission time.
func sortEntries(entries []domain.HallOfFameEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Date < entries[j].Date
	})
}
