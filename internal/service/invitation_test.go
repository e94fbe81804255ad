package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/monetahq/moneta/internal/domain"
	"github.com/monetahq/moneta/internal/store"
	"github.com/monetahq/moneta/internal/store/sqlite"
	"github.com/monetahq/moneta/pkg/cryptox"
	"github.com/monetahq/moneta/pkg/idx"
	"github.com/monetahq/moneta/pkg/jwtx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestSessions(t *testing.T) *jwtx.Sessions {
	t.Helper()
	return jwtx.NewSessions([]byte("0123456789abcdef0123456789abcdef"), "moneta-test", 0)
}

// seedInvitation writes an invitation row directly, bypassing the service,
// so tests can construct used/expired states.
func seedInvitation(t *testing.T, st store.Store, inv domain.Invitation) domain.Invitation {
	t.Helper()

	if inv.ID == "" {
		inv.ID = idx.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	require.NoError(t, st.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}

func TestIssueGeneratesCode(t *testing.T) {
	st := newTestStore(t)
	svc := &InvitationService{Store: st}

	inv, err := svc.Issue(context.Background(), "", "Alice@Example.com", 0)
	require.NoError(t, err)

	require.Len(t, inv.Code, cryptox.InviteCodeLength)
	require.Equal(t, "alice@example.com", inv.Email)
	require.False(t, inv.Used)

	require.NotNil(t, inv.ExpiresAt)
	wantExpiry := time.Now().UTC().Add(domain.DefaultInvitationTTL)
	require.WithinDuration(t, wantExpiry, *inv.ExpiresAt, time.Minute)
}

func TestIssueCustomCodeAndExpiry(t *testing.T) {
	st := newTestStore(t)
	svc := &InvitationService{Store: st}

	inv, err := svc.Issue(context.Background(), "friends24", "bob@example.com", 7)
	require.NoError(t, err)

	require.Equal(t, "FRIENDS24", inv.Code)
	require.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), *inv.ExpiresAt, time.Minute)
}

func TestIssueRejectsDuplicateCode(t *testing.T) {
	st := newTestStore(t)
	svc := &InvitationService{Store: st}

	_, err := svc.Issue(context.Background(), "TWICE", "a@example.com", 0)
	require.NoError(t, err)

	_, err = svc.Issue(context.Background(), "twice", "b@example.com", 0)
	require.ErrorIs(t, err, ErrDuplicateCode)
}

func TestIssueRejectsEmptyEmail(t *testing.T) {
	st := newTestStore(t)
	svc := &InvitationService{Store: st}

	_, err := svc.Issue(context.Background(), "", "   ", 0)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestListIncludesConsumedInvitations(t *testing.T) {
	st := newTestStore(t)
	svc := &InvitationService{Store: st}

	seedInvitation(t, st, domain.Invitation{Code: "OPEN1", Email: "a@example.com"})
	usedAt := time.Now().UTC()
	seedInvitation(t, st, domain.Invitation{
		Code:   "SPENT",
		Email:  "b@example.com",
		Used:   true,
		UsedAt: &usedAt,
	})

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestVerify(t *testing.T) {
	st := newTestStore(t)
	svc := &InvitationService{Store: st}
	ctx := context.Background()

	past := time.Now().UTC().Add(-time.Hour)
	usedAt := time.Now().UTC()

	seedInvitation(t, st, domain.Invitation{Code: "GOOD1", Email: "a@example.com"})
	seedInvitation(t, st, domain.Invitation{Code: "SPENT", Email: "b@example.com", Used: true, UsedAt: &usedAt})
	seedInvitation(t, st, domain.Invitation{Code: "STALE", Email: "c@example.com", ExpiresAt: &past})
	// Used wins over expired when both apply.
	seedInvitation(t, st, domain.Invitation{Code: "BOTH1", Email: "d@example.com", Used: true, UsedAt: &usedAt, ExpiresAt: &past})

	inv, err := svc.Verify(ctx, "good1")
	require.NoError(t, err)
	require.Equal(t, "a@example.com", inv.Email)

	_, err = svc.Verify(ctx, "NOPE")
	require.ErrorIs(t, err, ErrInvitationNotFound)

	_, err = svc.Verify(ctx, "SPENT")
	require.ErrorIs(t, err, ErrInvitationUsed)

	_, err = svc.Verify(ctx, "STALE")
	require.ErrorIs(t, err, ErrInvitationExpired)

	_, err = svc.Verify(ctx, "BOTH1")
	require.ErrorIs(t, err, ErrInvitationUsed)
}

func TestValidateForRedemptionEmailBinding(t *testing.T) {
	now := time.Now().UTC()
	inv := domain.Invitation{Code: "BOUND", Email: "alice@example.com"}

	require.NoError(t, validateForRedemption(inv, "ALICE@example.com", now))
	require.ErrorIs(t, validateForRedemption(inv, "mallory@example.com", now), ErrInvitationEmailMismatch)
	require.NoError(t, validateForRedemption(inv, "", now))
}

func TestEmailDomain(t *testing.T) {
	require.Equal(t, "example.com", EmailDomain("alice@example.com"))
	require.Equal(t, "", EmailDomain("not-an-email"))
}
