// Package catalog supplies pre-shuffled multiple-choice question records.
// The round engine only ever asks for "n questions of category x"; question
// content carries no game state.
package catalog

import (
	"context"
	"errors"

	"brainybunch/internal/model"
)

// Catalog is the question source the round engine draws from at game start.
type Catalog interface {
	// Categories lists the selectable category identifiers.
	Categories(ctx context.Context) ([]string, error)
	// Fetch returns n questions of the category in random order, each with
	// its answer list pre-shuffled.
	Fetch(ctx context.Context, category string, n int) ([]*model.Question, error)
}

var (
	ErrUnknownCategory    = errors.New("catalog: unknown category")
	ErrNotEnoughQuestions = errors.New("catalog: not enough questions for category")
)

// CategoryMix samples across every category instead of drawing from one.
const CategoryMix = "mix_it_up"
