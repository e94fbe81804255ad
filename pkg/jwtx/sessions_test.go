package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testSessions(ttl time.Duration) *Sessions {
	return NewSessions([]byte("test-secret-at-least-32-bytes-long"), "moneta", ttl)
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	s := testSessions(time.Hour)

	token, err := s.Issue("01JABCDEF0123456789ABCDEFG", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01JABCDEF0123456789ABCDEFG", claims.Subject)
	require.Equal(t, "a@x.com", claims.Email)
	require.Equal(t, "moneta", claims.Issuer)
	require.NotEmpty(t, claims.ID, "jti should be set")
}

func TestVerifyRejectsMissingToken(t *testing.T) {
	t.Parallel()

	_, err := testSessions(time.Hour).Verify("")
	require.ErrorIs(t, err, ErrMissing)
}

func TestVerifyRejectsMalformedAndForgedTokens(t *testing.T) {
	t.Parallel()

	s := testSessions(time.Hour)

	_, err := s.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalid)

	// Signed with a different secret.
	other := NewSessions([]byte("a-completely-different-hmac-secret"), "moneta", time.Hour)
	forged, err := other.Issue("user", "a@x.com")
	require.NoError(t, err)

	_, err = s.Verify(forged)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	s := testSessions(time.Hour)
	other := NewSessions([]byte("test-secret-at-least-32-bytes-long"), "someone-else", time.Hour)

	token, err := other.Issue("user", "a@x.com")
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	s := testSessions(time.Hour)

	token, err := s.Issue("user", "a@x.com")
	require.NoError(t, err)

	// Jump past the validity window.
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	t.Parallel()

	s := testSessions(0)
	require.Equal(t, DefaultSessionTTL, s.ttl)
}
