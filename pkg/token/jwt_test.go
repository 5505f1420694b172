package token_test

import (
	"testing"
	"time"

	"hirelens-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func newManager() *token.Manager {
	return token.NewManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenRoundTrip(t *testing.T) {
	m := newManager()

	access, err := m.GenerateAccessToken("user-1")
	assert.NoError(t, err)

	claims, err := m.ParseAccessToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenSecretsAreNotInterchangeable(t *testing.T) {
	m := newManager()

	refresh, err := m.GenerateRefreshToken("user-1")
	assert.NoError(t, err)

	// A refresh token must never pass as an access token
	_, err = m.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, token.ErrInvalid)

	_, err = m.ParseRefreshToken(refresh)
	assert.NoError(t, err)
}

func TestExpiredToken(t *testing.T) {
	m := token.NewManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	expired, err := m.GenerateAccessToken("user-1")
	assert.NoError(t, err)

	_, err = m.ParseAccessToken(expired)
	assert.ErrorIs(t, err, token.ErrExpired)
}

func TestGarbageToken(t *testing.T) {
	m := newManager()
	_, err := m.ParseAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, token.ErrInvalid)
}
