package model

import "time"

// Team is a side in team mode. Players in individual or solo mode carry
// TeamNone for the whole game.
type Team string

const (
	TeamNone Team = ""
	TeamRed  Team = "red"
	TeamBlue Team = "blue"
)

// Opponent returns the other team. TeamNone has no opponent.
func (t Team) Opponent() Team {
	switch t {
	case TeamRed:
		return TeamBlue
	case TeamBlue:
		return TeamRed
	}
	return TeamNone
}

// Player represents a participant in a room
type Player struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Team           Team      `json:"team"`
	IsHost         bool      `json:"isHost"`
	Connected      bool      `json:"connected"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	FastestAnswer  int64     `json:"fastestAnswerMs,omitempty"` // 0 until the first correct answer
	JoinedAt       time.Time `json:"joinedAt"`
}
