package ws

import "brainybunch/internal/model"

// Client intents.
const (
	IntentCreateRoom     = "create-room"
	IntentJoinRoom       = "join-room"
	IntentResume         = "resume"
	IntentSelectCategory = "select-category"
	IntentSelectMode     = "select-mode"
	IntentStartGame      = "start-game"
	IntentSubmitAnswer   = "submit-answer"
	IntentLeaveRoom      = "leave-room"
)

type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

type ResumeRequest struct {
	Token string `json:"token"`
}

type SelectCategoryRequest struct {
	RoomCode string `json:"roomCode"`
	Category string `json:"category"`
}

type SelectModeRequest struct {
	RoomCode string     `json:"roomCode"`
	Mode     model.Mode `json:"mode"`
}

type StartGameRequest struct {
	RoomCode string `json:"roomCode"`
}

type SubmitAnswerRequest struct {
	RoomCode  string `json:"roomCode"`
	Answer    string `json:"answer"`
	ElapsedMs int64  `json:"elapsedMs"`
}

type LeaveRoomRequest struct {
	RoomCode string `json:"roomCode"`
}

// WelcomePayload answers create-room, join-room, and resume: the room
// snapshot, the seat's id, and a token that can reclaim the seat after a
// dropped connection.
type WelcomePayload struct {
	Room     *model.RoomState `json:"room"`
	PlayerID string           `json:"playerId"`
	Token    string           `json:"token"`
}

// ErrorPayload is the structured error reply for a failed intent.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
