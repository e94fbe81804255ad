package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens. Sessions
// are stateless, so there is no server-side revocation before expiry.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionClaims are the claims carried by a session token. The subject is
// the user id; email rides along so handlers can identify the caller
// without a user lookup.
type SessionClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// NewSessionClaims builds minimally-correct claims for a user session.
func NewSessionClaims(userID, email, issuer string, ttl time.Duration, now time.Time) SessionClaims {
	return SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email: email,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
