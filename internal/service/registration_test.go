package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/monetahq/moneta/internal/domain"
	"github.com/monetahq/moneta/internal/store"
)

func newRegistrationService(t *testing.T) (*RegistrationService, store.Store) {
	t.Helper()

	st := newTestStore(t)
	return &RegistrationService{Store: st, Sessions: newTestSessions(t)}, st
}

func TestRegisterHappyPath(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()

	seedInvitation(t, st, domain.Invitation{Code: "WELCOME1", Email: "alice@example.com"})

	user, token, err := svc.Register(ctx, "Alice@Example.com", "correct horse battery", "WELCOME1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEmpty(t, user.ID)

	// The token is immediately usable.
	claims, err := svc.Sessions.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, user.Email, claims.Email)

	// The user is persisted with a hash, never the plaintext.
	stored, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotContains(t, stored.PasswordHash, "correct horse battery")

	// The invitation is consumed and attributed.
	got, err := st.Invitations().GetInvitationByCode(ctx, "WELCOME1")
	require.NoError(t, err)
	require.True(t, got.Used)
	require.Equal(t, user.ID, got.UsedBy)
	require.NotNil(t, got.UsedAt)
}

func TestRegisterUnknownCode(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, _, err := svc.Register(context.Background(), "a@example.com", "long enough pw", "NOSUCH")
	require.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestRegisterUsedCode(t *testing.T) {
	svc, st := newRegistrationService(t)

	usedAt := time.Now().UTC()
	seedInvitation(t, st, domain.Invitation{Code: "SPENT", Email: "a@example.com", Used: true, UsedAt: &usedAt})

	_, _, err := svc.Register(context.Background(), "a@example.com", "long enough pw", "SPENT")
	require.ErrorIs(t, err, ErrInvitationUsed)
}

func TestRegisterExpiredCode(t *testing.T) {
	svc, st := newRegistrationService(t)

	past := time.Now().UTC().Add(-time.Minute)
	seedInvitation(t, st, domain.Invitation{Code: "STALE", Email: "a@example.com", ExpiresAt: &past})

	_, _, err := svc.Register(context.Background(), "a@example.com", "long enough pw", "STALE")
	require.ErrorIs(t, err, ErrInvitationExpired)
}

func TestRegisterEmailMismatch(t *testing.T) {
	svc, st := newRegistrationService(t)

	seedInvitation(t, st, domain.Invitation{Code: "BOUND", Email: "alice@example.com"})

	_, _, err := svc.Register(context.Background(), "mallory@example.com", "long enough pw", "BOUND")
	require.ErrorIs(t, err, ErrInvitationEmailMismatch)

	// A rejected attempt must not consume the code.
	got, err := st.Invitations().GetInvitationByCode(context.Background(), "BOUND")
	require.NoError(t, err)
	require.False(t, got.Used)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, st := newRegistrationService(t)

	seedInvitation(t, st, domain.Invitation{Code: "SHORTPW", Email: "a@example.com"})

	_, _, err := svc.Register(context.Background(), "a@example.com", "short", "SHORTPW")
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterDuplicateEmailRollsBack(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()

	seedInvitation(t, st, domain.Invitation{Code: "FIRST", Email: "alice@example.com"})
	_, _, err := svc.Register(ctx, "alice@example.com", "long enough pw", "FIRST")
	require.NoError(t, err)

	// A second invitation for the same email: registration must fail on the
	// duplicate email and leave this invitation untouched.
	seedInvitation(t, st, domain.Invitation{Code: "SECOND", Email: "alice@example.com"})
	_, _, err = svc.Register(ctx, "alice@example.com", "long enough pw", "SECOND")
	require.ErrorIs(t, err, ErrEmailTaken)

	got, err := st.Invitations().GetInvitationByCode(ctx, "SECOND")
	require.NoError(t, err)
	require.False(t, got.Used)
	require.Empty(t, got.UsedBy)
}

// A single-use code under concurrent redemption admits exactly one
// winner; every loser gets a clean rejection and no partial writes.
func TestRegisterConcurrentSingleUse(t *testing.T) {
	svc, st := newRegistrationService(t)
	ctx := context.Background()

	seedInvitation(t, st, domain.Invitation{Code: "RACE1", Email: "alice@example.com"})

	const attempts = 6
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Register(ctx, "alice@example.com", "long enough pw", "RACE1")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errorsIsAny(err, ErrInvitationUsed, ErrEmailTaken):
			// expected loser outcomes
		default:
			t.Fatalf("unexpected registration error: %v", err)
		}
	}
	require.Equal(t, 1, wins)

	// Exactly one account exists and the code is attributed to it.
	user, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)

	got, err := st.Invitations().GetInvitationByCode(ctx, "RACE1")
	require.NoError(t, err)
	require.True(t, got.Used)
	require.Equal(t, user.ID, got.UsedBy)
}

func errorsIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
