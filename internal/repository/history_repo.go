package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brainybunch/internal/model"
)

// HistoryRepo archives finished games. The archive is write-mostly; the
// engine never reads it back, but ops and future stats endpoints do.
// Implements game.Archiver.
type HistoryRepo interface {
	Save(ctx context.Context, summary *model.GameSummary) error
	GetByRoomCode(ctx context.Context, code string) ([]*model.GameSummary, error)
	GetRecent(ctx context.Context, limit int) ([]*model.GameSummary, error)
}

type historyRepo struct {
	collection *mongo.Collection
}

func NewHistoryRepo(client *mongo.Client) HistoryRepo {
	db := client.Database("brainybunch")
	return &historyRepo{
		collection: db.Collection("game_history"),
	}
}

func (r *historyRepo) Save(ctx context.Context, summary *model.GameSummary) error {
	_, err := r.collection.InsertOne(ctx, summary)
	return err
}

func (r *historyRepo) GetByRoomCode(ctx context.Context, code string) ([]*model.GameSummary, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"roomCode": code})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []*model.GameSummary
	if err = cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (r *historyRepo) GetRecent(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	opts := options.Find().
		SetSort(bson.M{"finishedAt": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []*model.GameSummary
	if err = cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}
