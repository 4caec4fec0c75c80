package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ethics-quiz-service/internal/app"
	"ethics-quiz-service/internal/domain"
)

// exportFilename names the downloadable hall-of-fame snapshot.
const exportFilename = "ethics-quiz-hall-of-fame.json"

// FameHandler serves the hall-of-fame read side over plain HTTP.
type FameHandler struct {
	fame *app.HallOfFame
}

func NewFameHandler(fame *app.HallOfFame) *FameHandler {
	return &FameHandler{fame: fame}
}

// TopK returns the tier's top entries: GET /halloffame?tier=low&k=3
func (h *FameHandler) TopK(w http.ResponseWriter, r *http.Request) {
	tier, err := domain.ParseTier(r.URL.Query().Get("tier"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	k := 10
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "k must be a positive integer", http.StatusBadRequest)
			return
		}
		k = parsed
	}

	entries := h.fame.TopK(r.Context(), tier, k)
	if entries == nil {
		entries = []domain.HallOfFameEntry{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}

// Export offers the tier's full list as a downloadable pretty-printed JSON
// file, or a notice when there is nothing to export.
func (h *FameHandler) Export(w http.ResponseWriter, r *http.Request) {
	tier, err := domain.ParseTier(r.URL.Query().Get("tier"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.fame.Export(r.Context(), tier)
	if err == domain.ErrNoEntries {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"notice": "hall of fame is empty"})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	_, _ = w.Write(data)
}
