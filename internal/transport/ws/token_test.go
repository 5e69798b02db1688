package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Issue("ABC234", "player-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	roomCode, playerID, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ABC234", roomCode)
	assert.Equal(t, "player-1", playerID)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a")
	validator := NewTokenManager("secret-b")

	token, err := issuer.Issue("ABC234", "player-1")
	require.NoError(t, err)

	_, _, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager("test-secret")

	_, _, err := m.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
