package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sessions signs and verifies stateless session tokens with a single HMAC
// secret. There is no server-side session table; everything a request
// needs is in the claims.
type Sessions struct {
	secret []byte
	issuer string
	ttl    time.Duration

	// now is swappable for expiry tests.
	now func() time.Time
}

// NewSessions creates a session token issuer/verifier. A zero ttl falls
// back to DefaultSessionTTL.
func NewSessions(secret []byte, issuer string, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue produces a signed, time-bounded token encoding user id and email.
func (s *Sessions) Issue(userID, email string) (string, error) {
	claims := NewSessionClaims(userID, email, s.issuer, s.ttl, s.now().UTC())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token. Absent, malformed, unsigned and
// wrong-issuer tokens all come back as ErrInvalid (or ErrMissing for the
// empty string); only genuinely out-of-window tokens are ErrExpired.
func (s *Sessions) Verify(raw string) (SessionClaims, error) {
	if raw == "" {
		return SessionClaims{}, ErrMissing
	}

	var claims SessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaims{}, ErrExpired
		}
		return SessionClaims{}, ErrInvalid
	}

	return claims, nil
}
