package model

import "time"

type RoomStatus string

const (
	RoomLobby    RoomStatus = "lobby"
	RoomPlaying  RoomStatus = "playing"
	RoomFinished RoomStatus = "finished"
)

// Mode selects how answers are scored and how the game ends.
type Mode string

const (
	ModeTeam       Mode = "team"       // red vs blue, 2-4 per side
	ModeIndividual Mode = "individual" // free-for-all ranking
	ModeSolo       Mode = "solo"       // single player, letter-graded
)

func (m Mode) Valid() bool {
	return m == ModeTeam || m == ModeIndividual || m == ModeSolo
}

const (
	MaxPlayers  = 8
	MaxPerTeam  = 4
	TotalRounds = 20
)

// TeamScores holds the two team totals. Half-point speed bonuses make these
// floats.
type TeamScores struct {
	Red  float64 `json:"red"`
	Blue float64 `json:"blue"`
}

// RoomState is the broadcastable snapshot of a room. It is what every
// room-level event carries; it never includes the current question's correct
// answer.
type RoomState struct {
	Code         string             `json:"code"`
	HostID       string             `json:"hostId"`
	Players      []*Player          `json:"players"`
	Category     string             `json:"category,omitempty"`
	Mode         Mode               `json:"mode"`
	Status       RoomStatus         `json:"status"`
	CurrentRound int                `json:"currentRound"`
	TotalRounds  int                `json:"totalRounds"`
	Scores       TeamScores         `json:"scores"`
	PlayerScores map[string]float64 `json:"playerScores"`
	Streaks      map[string]int     `json:"streaks"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// RoomMeta is the slim Redis mirror of a room, kept for REST reads and
// operational inspection; the in-memory registry stays authoritative.
type RoomMeta struct {
	Code        string     `json:"code"`
	Status      RoomStatus `json:"status"`
	Mode        Mode       `json:"mode"`
	Category    string     `json:"category,omitempty"`
	PlayerCount int        `json:"playerCount"`
	Round       int        `json:"round"`
	CreatedAt   time.Time  `json:"createdAt"`
}
