package game

import (
	"context"

	"brainybunch/internal/model"
)

// Event names on the session gateway. Events the service pushes go through
// the Broadcaster; direct replies (room-created, room-joined,
// answer-received, error) are written by the gateway itself.
const (
	EventRoomCreated     = "room-created"
	EventRoomJoined      = "room-joined"
	EventRosterUpdated   = "roster-updated"
	EventCategoryUpdated = "category-updated"
	EventModeUpdated     = "mode-updated"
	EventGameStarting    = "game-starting"
	EventGameStarted     = "game-started"
	EventAnswerReceived  = "answer-received"
	EventAnswerProgress  = "answer-progress"
	EventRoundResults    = "round-results"
	EventNextQuestion    = "next-question"
	EventGameEnded       = "game-ended"
	EventError           = "error"
)

// RoomEvent carries a fresh room snapshot (roster-updated, category-updated,
// mode-updated).
type RoomEvent struct {
	Room *model.RoomState `json:"room"`
}

// CountdownEvent is the pre-start countdown tick.
type CountdownEvent struct {
	Countdown int `json:"countdown"`
}

// QuestionEvent announces the active question (game-started, next-question).
// The question is the sanitized client view.
type QuestionEvent struct {
	Room     *model.RoomState    `json:"room"`
	Question *model.QuestionView `json:"question"`
}

// AnswerProgressEvent tells the room how many players have answered without
// revealing what anyone chose.
type AnswerProgressEvent struct {
	AnsweredCount int `json:"answeredCount"`
	TotalPlayers  int `json:"totalPlayers"`
}

// RoundResultsEvent reveals the correct answer and everyone's submissions
// once a round resolves.
type RoundResultsEvent struct {
	Room    *model.RoomState    `json:"room"`
	Results *model.RoundResults `json:"results"`
}

// GameEndedEvent is the terminal broadcast. Winner is a team name in team
// mode, a player id in individual mode, and empty on a tie or in solo mode.
type GameEndedEvent struct {
	Room      *model.RoomState `json:"room"`
	Winner    string           `json:"winner,omitempty"`
	Standings []model.Standing `json:"standings,omitempty"`
	Grade     string           `json:"grade,omitempty"`
}

// Broadcaster pushes events to connected clients. Implemented by the
// WebSocket hub; declared here to avoid an import cycle.
type Broadcaster interface {
	BroadcastToRoom(roomCode string, event string, payload interface{})
	BroadcastToPlayer(roomCode, playerID string, event string, payload interface{})
}

// ScoreBoard publishes live per-member scores (Redis ZSET in production).
// Best-effort: failures are logged, never surfaced to players.
type ScoreBoard interface {
	UpdateScore(ctx context.Context, roomCode, member string, score float64) error
}

// Mirror keeps a slim copy of room metadata in external storage for REST
// reads and operational inspection. The in-memory registry stays
// authoritative.
type Mirror interface {
	SetMeta(ctx context.Context, meta *model.RoomMeta) error
	Delete(ctx context.Context, code string) error
}

// Archiver records a finished game's summary. Write-only observability; the
// engine never reads it back.
type Archiver interface {
	Save(ctx context.Context, summary *model.GameSummary) error
}
