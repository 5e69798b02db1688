package model

import "time"

// TimeoutAnswer is the sentinel submitted in place of user silence when a
// round deadline passes. It always scores as incorrect and is never eligible
// for the speed bonus.
const TimeoutAnswer = "__timeout__"

// AnswerRecord is one entry in a round's ledger.
type AnswerRecord struct {
	PlayerID   string  `json:"playerId"`
	PlayerName string  `json:"playerName"`
	Team       Team    `json:"team,omitempty"`
	Answer     string  `json:"answer"`
	TimeMs     int64   `json:"timeMs"`
	Correct    bool    `json:"correct"`
	Points     float64 `json:"points"`
}

// AnswerOutcome is the private ack returned to the submitting player. Other
// players learn nothing about it until round resolution.
type AnswerOutcome struct {
	Correct     bool    `json:"correct"`
	Points      float64 `json:"points"`
	SpeedBonus  bool    `json:"speedBonus"`
	StreakBonus bool    `json:"streakBonus"`
}

// RoundResults is the immutable snapshot produced when a round resolves.
// This is the first moment the correct answer is allowed to reach clients.
type RoundResults struct {
	Round         int                `json:"round"`
	CorrectAnswer string             `json:"correctAnswer"`
	Answers       []AnswerRecord     `json:"answers"`
	Scores        TeamScores         `json:"scores"`
	PlayerScores  map[string]float64 `json:"playerScores"`
	Streaks       map[string]int     `json:"streaks"`
	Mode          Mode               `json:"mode"`
}

// Standing is one row of the end-of-game ranking in individual mode. Ties
// keep join order.
type Standing struct {
	PlayerID string  `json:"playerId"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Rank     int     `json:"rank"`
}

// GameSummary is the archive record written when a room finishes.
type GameSummary struct {
	ID           string             `json:"id" bson:"_id"`
	RoomCode     string             `json:"roomCode" bson:"roomCode"`
	Mode         Mode               `json:"mode" bson:"mode"`
	Category     string             `json:"category" bson:"category"`
	Scores       TeamScores         `json:"scores" bson:"scores"`
	PlayerScores map[string]float64 `json:"playerScores" bson:"playerScores"`
	Winner       string             `json:"winner,omitempty" bson:"winner,omitempty"` // team name, player id, or "" on tie
	Grade        string             `json:"grade,omitempty" bson:"grade,omitempty"`   // solo mode only
	Rounds       int                `json:"rounds" bson:"rounds"`
	FinishedAt   time.Time          `json:"finishedAt" bson:"finishedAt"`
}
