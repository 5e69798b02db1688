package repository

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"brainybunch/internal/catalog"
	"brainybunch/internal/model"
)

// QuestionRepo serves the question catalog from MongoDB. It satisfies
// catalog.Catalog so the engine can run on a seeded database instead of the
// embedded bank.
type QuestionRepo interface {
	catalog.Catalog

	// Seeding / management
	InsertMany(ctx context.Context, questions []*model.Question) error
	GetByID(ctx context.Context, id string) (*model.Question, error)
	CountByCategory(ctx context.Context, category string) (int64, error)
	DeleteAll(ctx context.Context) error
}

type questionRepo struct {
	collection *mongo.Collection
}

func NewQuestionRepo(client *mongo.Client) QuestionRepo {
	db := client.Database("brainybunch")
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) Categories(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values)+1)
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)

	// The mixed deck is virtual: it samples across every stored category.
	return append(categories, catalog.CategoryMix), nil
}

func (r *questionRepo) Fetch(ctx context.Context, category string, n int) ([]*model.Question, error) {
	filter := bson.M{"category": category}
	if category == catalog.CategoryMix {
		filter = bson.M{}
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, catalog.ErrUnknownCategory
	}
	if count < int64(n) {
		return nil, catalog.ErrNotEnoughQuestions
	}

	// $sample shuffles server-side, so every game draws a fresh deck.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sample", Value: bson.M{"size": n}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *questionRepo) InsertMany(ctx context.Context, questions []*model.Question) error {
	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		docs[i] = q
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Question not found
		}
		return nil, err
	}

	return &question, nil
}

func (r *questionRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"category": category})
}

func (r *questionRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
