package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"brainybunch/internal/cache"
	"brainybunch/internal/game"
	"brainybunch/internal/repository"
	"brainybunch/internal/transport/rest/handler"
	"brainybunch/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Game        *game.Service
	Leaderboard cache.LeaderboardCache
	Rooms       cache.RoomCache
	History     repository.HistoryRepo
	Gateway     *ws.Gateway
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	roomHandler := handler.NewRoomHandler(c.Game, c.Leaderboard, c.Rooms)
	catalogHandler := handler.NewCatalogHandler(c.Game.Catalog())
	historyHandler := handler.NewHistoryHandler(c.History)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Gameplay runs over the websocket; REST is read-only observation.
	v1.HandleFunc("/ws", c.Gateway.ServeWS).Methods("GET")

	v1.HandleFunc("/categories", catalogHandler.Categories).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{code}", roomHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/meta", roomHandler.GetMeta).Methods("GET", "OPTIONS")
	v1.HandleFunc("/rooms/{code}/leaderboard", roomHandler.Leaderboard).Methods("GET", "OPTIONS")
	v1.HandleFunc("/history", historyHandler.Recent).Methods("GET", "OPTIONS")
	v1.HandleFunc("/history/{code}", historyHandler.ByRoom).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
