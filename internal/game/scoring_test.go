package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		correct      bool
		elapsedMs    int64
		streakBefore int
		wantPoints   float64
		wantSpeed    bool
		wantStreak   bool
		wantCounter  int
	}{
		{
			name:        "incorrect scores zero and resets streak",
			correct:     false,
			elapsedMs:   1000,
			wantPoints:  0,
			wantCounter: 0,
		},
		{
			name:         "incorrect resets an active streak",
			correct:      false,
			elapsedMs:    500,
			streakBefore: 5,
			wantPoints:   0,
			wantCounter:  0,
		},
		{
			name:        "slow correct earns base only",
			correct:     true,
			elapsedMs:   4000,
			wantPoints:  1.0,
			wantCounter: 1,
		},
		{
			name:        "fast correct earns speed bonus",
			correct:     true,
			elapsedMs:   2000,
			wantPoints:  1.5,
			wantSpeed:   true,
			wantCounter: 1,
		},
		{
			name:        "exactly at the window is not fast",
			correct:     true,
			elapsedMs:   3000,
			wantPoints:  1.0,
			wantCounter: 1,
		},
		{
			name:        "zero elapsed is fast",
			correct:     true,
			elapsedMs:   0,
			wantPoints:  1.5,
			wantSpeed:   true,
			wantCounter: 1,
		},
		{
			name:         "third consecutive fast answer earns everything",
			correct:      true,
			elapsedMs:    2000,
			streakBefore: 2,
			wantPoints:   2.5,
			wantSpeed:    true,
			wantStreak:   true,
			wantCounter:  3,
		},
		{
			name:         "streak bonus keeps firing past three",
			correct:      true,
			elapsedMs:    5000,
			streakBefore: 7,
			wantPoints:   2.0,
			wantStreak:   true,
			wantCounter:  8,
		},
		{
			name:         "second in a row has no streak bonus yet",
			correct:      true,
			elapsedMs:    5000,
			streakBefore: 1,
			wantPoints:   1.0,
			wantCounter:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, counter := Score(tt.correct, tt.elapsedMs, tt.streakBefore)

			assert.Equal(t, tt.correct, outcome.Correct)
			assert.Equal(t, tt.wantPoints, outcome.Points)
			assert.Equal(t, tt.wantSpeed, outcome.SpeedBonus)
			assert.Equal(t, tt.wantStreak, outcome.StreakBonus)
			assert.Equal(t, tt.wantCounter, counter)
		})
	}
}

func TestGrade(t *testing.T) {
	// 20 rounds cap at 50 points.
	tests := []struct {
		name   string
		score  float64
		rounds int
		want   string
	}{
		{"perfect game", 50, 20, "A+"},
		{"ninety percent", 45, 20, "A+"},
		{"just under ninety", 44.5, 20, "A"},
		{"eighty percent", 40, 20, "A"},
		{"seventy percent", 35, 20, "B"},
		{"sixty percent", 30, 20, "C"},
		{"fifty percent", 25, 20, "D"},
		{"under fifty", 24.5, 20, "F"},
		{"zero", 0, 20, "F"},
		{"no rounds", 10, 0, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(tt.score, tt.rounds))
		})
	}
}
