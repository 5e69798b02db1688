package ws

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// seatClaims scope a resume token to one seat in one room.
type seatClaims struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates seat-resume tokens. A token lets a
// dropped client reclaim its player after reconnecting; it is session
// continuity, not authentication.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue creates a room-scoped token for a player's seat.
func (m *TokenManager) Issue(roomCode, playerID string) (string, error) {
	claims := &seatClaims{
		RoomCode: roomCode,
		PlayerID: playerID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate checks a token and returns the seat it names.
func (m *TokenManager) Validate(tokenString string) (roomCode, playerID string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &seatClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*seatClaims)
	if !ok || !token.Valid {
		return "", "", ErrInvalidToken
	}
	return claims.RoomCode, claims.PlayerID, nil
}
