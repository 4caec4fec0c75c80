package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"ethics-quiz-service/internal/app"
	"ethics-quiz-service/internal/domain"
	"ethics-quiz-service/internal/infra/memory"
)

func newFameHandler(t *testing.T, entries ...domain.HallOfFameEntry) *FameHandler {
	t.Helper()
	fame := app.NewHallOfFame(memory.NewFameStore())
	for _, e := range entries {
		fame.Upsert(context.Background(), domain.TierLow, e)
	}
	return NewFameHandler(fame)
}

func TestTopKEndpoint(t *testing.T) {
	handler := newFameHandler(t,
		domain.HallOfFameEntry{Name: "A", Grade: 1, Score: 100, Date: 1},
		domain.HallOfFameEntry{Name: "B", Grade: 2, Score: 300, Date: 2},
		domain.HallOfFameEntry{Name: "C", Grade: 3, Score: 200, Date: 3},
	)

	rec := httptest.NewRecorder()
	handler.TopK(rec, httptest.NewRequest("GET", "/halloffame?tier=low&k=2", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []domain.HallOfFameEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Name != "B" || got[1].Name != "C" {
		t.Fatalf("unexpected ranking: %+v", got)
	}
}

func TestTopKEmptyTierReturnsEmptyArray(t *testing.T) {
	handler := newFameHandler(t)

	rec := httptest.NewRecorder()
	handler.TopK(rec, httptest.NewRequest("GET", "/halloffame?tier=high", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestTopKRejectsBadInput(t *testing.T) {
	handler := newFameHandler(t)

	rec := httptest.NewRecorder()
	handler.TopK(rec, httptest.NewRequest("GET", "/halloffame?tier=medium", nil))
	if rec.Code != 400 {
		t.Fatalf("expected 400 for unknown tier, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.TopK(rec, httptest.NewRequest("GET", "/halloffame?tier=low&k=zero", nil))
	if rec.Code != 400 {
		t.Fatalf("expected 400 for bad k, got %d", rec.Code)
	}
}

func TestExportEndpoint(t *testing.T) {
	handler := newFameHandler(t,
		domain.HallOfFameEntry{Name: "Jun", Grade: 4, Score: 500, Date: 99},
	)

	rec := httptest.NewRecorder()
	handler.Export(rec, httptest.NewRequest("GET", "/halloffame/export?tier=low", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "ethics-quiz-hall-of-fame.json") {
		t.Fatalf("unexpected disposition: %q", disposition)
	}
	var got []domain.HallOfFameEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Jun" {
		t.Fatalf("unexpected export: %+v", got)
	}
}

func TestExportEmptyTierIsNoticeNotFile(t *testing.T) {
	handler := newFameHandler(t)

	rec := httptest.NewRecorder()
	handler.Export(rec, httptest.NewRequest("GET", "/halloffame/export?tier=low", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Disposition") != "" {
		t.Fatalf("empty export must not offer a download")
	}
	if !strings.Contains(rec.Body.String(), "notice") {
		t.Fatalf("expected notice body, got %q", rec.Body.String())
	}
}
