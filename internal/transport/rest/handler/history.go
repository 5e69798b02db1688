package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"brainybunch/internal/repository"
)

// HistoryHandler serves archived game summaries.
type HistoryHandler struct {
	history repository.HistoryRepo
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history repository.HistoryRepo) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// Recent handles GET /v1/history?limit=N
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	summaries, err := h.history.GetRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"games": summaries,
	})
}

// ByRoom handles GET /v1/history/{code}
func (h *HistoryHandler) ByRoom(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	summaries, err := h.history.GetByRoomCode(r.Context(), code)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"roomCode": code,
		"games":    summaries,
	})
}
