package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monetahq/moneta/internal/domain"
	"github.com/monetahq/moneta/internal/store"
)

func registerTestUser(t *testing.T, st store.Store, reg *RegistrationService, email, password string) domain.User {
	t.Helper()

	code := "LOGIN-" + strings.ToUpper(email)
	seedInvitation(t, st, domain.Invitation{Code: code, Email: email})
	user, _, err := reg.Register(context.Background(), email, password, code)
	require.NoError(t, err)
	return user
}

func TestLoginHappyPath(t *testing.T) {
	st := newTestStore(t)
	sessions := newTestSessions(t)
	reg := &RegistrationService{Store: st, Sessions: sessions}
	svc := &UserService{Store: st, Sessions: sessions}

	created := registerTestUser(t, st, reg, "alice@example.com", "long enough pw")

	user, token, err := svc.Login(context.Background(), "Alice@Example.com", "long enough pw")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	claims, err := sessions.Verify(token)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.Subject)
	require.Equal(t, "alice@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	st := newTestStore(t)
	sessions := newTestSessions(t)
	reg := &RegistrationService{Store: st, Sessions: sessions}
	svc := &UserService{Store: st, Sessions: sessions}

	registerTestUser(t, st, reg, "alice@example.com", "long enough pw")

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st, Sessions: newTestSessions(t)}

	// Indistinguishable from a wrong password.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsEmptyInput(t *testing.T) {
	st := newTestStore(t)
	svc := &UserService{Store: st, Sessions: newTestSessions(t)}

	_, _, err := svc.Login(context.Background(), "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
