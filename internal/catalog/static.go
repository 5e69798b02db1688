package catalog

import (
	"context"
	"math/rand"
	"sort"

	"brainybunch/internal/model"
)

// Static serves the embedded question bank. It needs no external storage and
// is the default source; cmd/seed loads the same bank into MongoDB for the
// repository-backed catalog.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Categories(_ context.Context) ([]string, error) {
	cats := make([]string, 0, len(bank)+1)
	for name := range bank {
		cats = append(cats, name)
	}
	sort.Strings(cats)
	return append(cats, CategoryMix), nil
}

func (s *Static) Fetch(_ context.Context, category string, n int) ([]*model.Question, error) {
	var pool []*model.Question
	if category == CategoryMix {
		for _, qs := range bank {
			pool = append(pool, qs...)
		}
	} else {
		qs, ok := bank[category]
		if !ok {
			return nil, ErrUnknownCategory
		}
		pool = append(pool, qs...)
	}

	if len(pool) < n {
		return nil, ErrNotEnoughQuestions
	}

	shuffled := make([]*model.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n], nil
}

// Bank exposes the embedded questions for seeding.
func Bank() []*model.Question {
	var all []*model.Question
	for _, qs := range bank {
		all = append(all, qs...)
	}
	return all
}
