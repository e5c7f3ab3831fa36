package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionToken(t *testing.T) {
	tok, err := NewSessionToken("secret", 42, "alice", "a@x.com", 30)
	require.NoError(t, err)
	assert.True(t, tok.Exp.After(time.Now().UTC().Add(29*time.Minute)))

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "a@x.com", claims["email"])
}

func TestSessionTokenExpires(t *testing.T) {
	tok, err := NewSessionToken("secret", 1, "u", "u@x.com", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
