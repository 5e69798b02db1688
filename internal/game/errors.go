package game

import "errors"

// Expected failure modes of room and round operations. All of these are
// recoverable: the gateway reports them to the originating client and room
// state is left untouched.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrNotAuthorized       = errors.New("only the host may do that")
	ErrInvalidState        = errors.New("action not valid in the room's current state")
	ErrRoomFull            = errors.New("room is full")
	ErrInsufficientPlayers = errors.New("not enough players to start")
	ErrCategoryRequired    = errors.New("a category must be selected before starting")
	ErrInvalidSubmission   = errors.New("answer already submitted this round")
	ErrCatalogUnavailable  = errors.New("question catalog cannot supply this category")
	ErrInvalidName         = errors.New("player name must be 1-20 characters")
	ErrInvalidMode         = errors.New("unknown game mode")
	ErrPlayerNotFound      = errors.New("player not in this room")
)

// ErrorCode maps an operation error to the stable code sent in error events.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "ROOM_NOT_FOUND"
	case errors.Is(err, ErrNotAuthorized):
		return "NOT_AUTHORIZED"
	case errors.Is(err, ErrInvalidState):
		return "INVALID_STATE"
	case errors.Is(err, ErrRoomFull):
		return "ROOM_FULL"
	case errors.Is(err, ErrInsufficientPlayers):
		return "INSUFFICIENT_PLAYERS"
	case errors.Is(err, ErrCategoryRequired):
		return "CATEGORY_REQUIRED"
	case errors.Is(err, ErrInvalidSubmission):
		return "INVALID_SUBMISSION"
	case errors.Is(err, ErrCatalogUnavailable):
		return "CATALOG_UNAVAILABLE"
	case errors.Is(err, ErrInvalidName):
		return "INVALID_NAME"
	case errors.Is(err, ErrInvalidMode):
		return "INVALID_MODE"
	case errors.Is(err, ErrPlayerNotFound):
		return "PLAYER_NOT_FOUND"
	}
	return "INTERNAL"
}
