package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"brainybunch/internal/cache"
	"brainybunch/internal/game"
)

// RoomHandler serves read-only room state. Rooms are created and driven over
// the websocket; REST only observes.
type RoomHandler struct {
	svc         *game.Service
	leaderboard cache.LeaderboardCache
	rooms       cache.RoomCache
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(svc *game.Service, leaderboard cache.LeaderboardCache, rooms cache.RoomCache) *RoomHandler {
	return &RoomHandler{
		svc:         svc,
		leaderboard: leaderboard,
		rooms:       rooms,
	}
}

// Get handles GET /v1/rooms/{code}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	room, err := h.svc.Lookup(code)
	if err != nil {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	writeJSON(w, http.StatusOK, room.Snapshot())
}

// GetMeta handles GET /v1/rooms/{code}/meta. It reads the Redis mirror, so it
// stays usable for ops even if this instance does not own the room.
func (h *RoomHandler) GetMeta(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	meta, err := h.rooms.GetMeta(r.Context(), code)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if meta == nil {
		writeError(w, http.StatusNotFound, "room not found")
		return
	}

	writeJSON(w, http.StatusOK, meta)
}

// Leaderboard handles GET /v1/rooms/{code}/leaderboard?limit=N
func (h *RoomHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.leaderboard.GetTop(r.Context(), code, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"roomCode": code,
		"entries":  entries,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
