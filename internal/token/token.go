// Package token issues and verifies the signed bearer tokens that stand in
// for sessions. Tokens are stateless: nothing is stored server-side, so a
// token is valid exactly while its signature checks out and its expiry is
// in the future.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired marks a token whose expiry instant has passed. Kept
	// separate from ErrInvalid so the user can be told to log in again.
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers malformed tokens, bad signatures, and anything
	// else that fails verification for a non-expiry reason.
	ErrInvalid = errors.New("invalid token")
)

// Claims embeds the registered claim set and adds the user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Manager signs and verifies HS256 tokens with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token embedding userID, expiring after the
// configured lifetime.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})
	return tok.SignedString(m.secret)
}

// Verify parses and validates tokenString and returns the embedded user id.
// Expired tokens yield ErrExpired; every other failure yields ErrInvalid.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}
	if !tok.Valid || claims.UserID == "" {
		return "", ErrInvalid
	}

	return claims.UserID, nil
}
