package game

import (
	"sync"
	"time"

	"brainybunch/internal/model"
)

// Room is one game's authoritative state. Every mutation goes through the
// room's mutex: intents against the same room are strictly serialized, rooms
// never share mutable state with each other.
type Room struct {
	mu sync.Mutex

	Code         string
	HostID       string
	Players      []*model.Player // join order
	Mode         model.Mode
	Category     string
	Status       model.RoomStatus
	CurrentRound int
	TotalRounds  int
	Scores       model.TeamScores
	PlayerScores map[string]float64
	Streaks      map[string]int // keyed by scoring subject: team name or player id
	CreatedAt    time.Time

	// Round engine state, valid only while playing.
	questions []*model.Question
	current   *model.Question
	ledger    []model.AnswerRecord
	answered  map[string]bool
	resolved  bool
	deadline  *time.Timer
	advance   *time.Timer

	// closed is set when the room leaves the registry. A pending countdown
	// must never arm timers on a torn-down room.
	closed bool
}

func newRoom(code string, mode model.Mode, now time.Time) *Room {
	return &Room{
		Code:         code,
		Mode:         mode,
		Status:       model.RoomLobby,
		TotalRounds:  model.TotalRounds,
		PlayerScores: make(map[string]float64),
		Streaks:      make(map[string]int),
		CreatedAt:    now,
		answered:     make(map[string]bool),
	}
}

// Snapshot returns a broadcastable copy of the room state. Safe for
// concurrent callers.
func (r *Room) Snapshot() *model.RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() *model.RoomState {
	players := make([]*model.Player, len(r.Players))
	for i, p := range r.Players {
		cp := *p
		players[i] = &cp
	}
	scores := make(map[string]float64, len(r.PlayerScores))
	for k, v := range r.PlayerScores {
		scores[k] = v
	}
	streaks := make(map[string]int, len(r.Streaks))
	for k, v := range r.Streaks {
		streaks[k] = v
	}
	return &model.RoomState{
		Code:         r.Code,
		HostID:       r.HostID,
		Players:      players,
		Category:     r.Category,
		Mode:         r.Mode,
		Status:       r.Status,
		CurrentRound: r.CurrentRound,
		TotalRounds:  r.TotalRounds,
		Scores:       r.Scores,
		PlayerScores: scores,
		Streaks:      streaks,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *Room) metaLocked() *model.RoomMeta {
	return &model.RoomMeta{
		Code:        r.Code,
		Status:      r.Status,
		Mode:        r.Mode,
		Category:    r.Category,
		PlayerCount: len(r.Players),
		Round:       r.CurrentRound,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *Room) playerLocked(id string) *model.Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) teamSizeLocked(t model.Team) int {
	n := 0
	for _, p := range r.Players {
		if p.Team == t {
			n++
		}
	}
	return n
}

// subjectLocked names the scoring subject an answer by p affects.
func (r *Room) subjectLocked(p *model.Player) string {
	if r.Mode == model.ModeTeam {
		return string(p.Team)
	}
	return p.ID
}

// allConnectedAnsweredLocked reports whether every connected player has an
// entry in this round's ledger. Disconnected players never delay early
// resolution; the deadline timer covers them.
func (r *Room) allConnectedAnsweredLocked() bool {
	if len(r.answered) == 0 {
		return false
	}
	for _, p := range r.Players {
		if p.Connected && !r.answered[p.ID] {
			return false
		}
	}
	return true
}

func (r *Room) stopTimersLocked() {
	if r.deadline != nil {
		r.deadline.Stop()
		r.deadline = nil
	}
	if r.advance != nil {
		r.advance.Stop()
		r.advance = nil
	}
}
