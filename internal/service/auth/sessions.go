// Package auth issues and verifies the signed session tokens the HTTP layer
// carries in a cookie. Sessions are stateless: everything the server needs
// is inside the token, so logout is just clearing the cookie.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a session stays valid after login.
const DefaultTTL = 7 * 24 * time.Hour

// minSecretLength guards against HS256 secrets short enough to brute force.
const minSecretLength = 32

// ErrInvalidSession covers every way a token can fail verification: bad
// signature, expiry, malformed claims. Callers treat them all the same.
var ErrInvalidSession = errors.New("invalid session")

// Sessions signs and parses session tokens with a shared HS256 secret.
type Sessions struct {
	secret []byte
	ttl    time.Duration
}

// NewSessions creates a session signer. The secret must be at least 32
// bytes; a zero ttl falls back to DefaultTTL.
func NewSessions(secret string, ttl time.Duration) (*Sessions, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSecretLength)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Sessions{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// Issue signs a new session token for the given user id and returns it with
// its expiry time.
func (s *Sessions) Issue(userID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the token and returns the user id it was issued for.
// Expired or tampered tokens come back as ErrInvalidSession.
func (s *Sessions) Parse(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidSession
	}
	if claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}
