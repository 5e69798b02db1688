// Command seed loads the embedded question bank into MongoDB so the server
// can run with QUESTION_SOURCE=mongo.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brainybunch/config"
	"brainybunch/internal/catalog"
	"brainybunch/internal/repository"
)

func main() {
	wipe := flag.Bool("wipe", false, "delete existing questions before seeding")
	flag.Parse()

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	repo := repository.NewQuestionRepo(client)

	if *wipe {
		if err := repo.DeleteAll(ctx); err != nil {
			log.Fatal("Failed to wipe questions:", err)
		}
		log.Println("Wiped existing questions")
	}

	questions := catalog.Bank()
	if err := repo.InsertMany(ctx, questions); err != nil {
		log.Fatal("Failed to insert questions:", err)
	}

	log.Printf("Seeded %d questions", len(questions))
}
