package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brainybunch/config"
	"brainybunch/internal/cache"
	"brainybunch/internal/catalog"
	"brainybunch/internal/common/clock"
	"brainybunch/internal/game"
	"brainybunch/internal/repository"
	"brainybunch/internal/transport/rest"
	"brainybunch/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	questionRepo := repository.NewQuestionRepo(mongoClient)
	historyRepo := repository.NewHistoryRepo(mongoClient)

	// Initialize caches
	leaderboard := cache.NewLeaderboardCache(rdb)
	roomCache := cache.NewRoomCache(rdb)

	// Pick the question source. The embedded bank needs no seeding; the mongo
	// source serves decks inserted by cmd/seed.
	var questions catalog.Catalog
	switch cfg.QuestionSource {
	case "mongo":
		questions = questionRepo
		log.Println("Question source: mongodb")
	default:
		questions = catalog.NewStatic()
		log.Println("Question source: embedded bank")
	}

	// Initialize WebSocket hub
	hub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize game service
	svc := game.NewService(game.NewRegistry(), questions, &clock.DefaultClock{}, game.DefaultConfig())
	svc.SetBroadcaster(hub)
	svc.SetScoreBoard(leaderboard)
	svc.SetMirror(roomCache)
	svc.SetArchiver(historyRepo)

	tokens := ws.NewTokenManager(cfg.TokenSecret)
	gateway := ws.NewGateway(hub, svc, tokens)

	// Create router with container
	container := &rest.Container{
		Game:        svc,
		Leaderboard: leaderboard,
		Rooms:       roomCache,
		History:     historyRepo,
		Gateway:     gateway,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  WS   /v1/ws")
		log.Println("  GET  /v1/categories")
		log.Println("  GET  /v1/rooms/{code}")
		log.Println("  GET  /v1/rooms/{code}/meta")
		log.Println("  GET  /v1/rooms/{code}/leaderboard")
		log.Println("  GET  /v1/history")
		log.Println("  GET  /v1/history/{code}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
