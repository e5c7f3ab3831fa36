package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the signed credential returned by login.  The Token field
// contains the serialized JWT; Exp records when it stops being accepted.
// The token is signed, not encrypted: its claims are readable by anyone.
type SessionToken struct {
	Token string
	Exp   time.Time
}

// NewSessionToken builds and signs an HS256 JWT asserting the user's
// identity.  The claims carry the user id, username and email together with
// standard exp/iat timestamps.
func NewSessionToken(secret string, userID uint64, username, email string, ttlMin int) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"id":       userID,
		"username": username,
		"email":    email,
		"exp":      exp.Unix(),
		"iat":      now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
