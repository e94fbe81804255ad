package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInvitationExpiredBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	t.Run("nil expiry never expires", func(t *testing.T) {
		inv := Invitation{}
		require.False(t, inv.Expired(now))
		require.False(t, inv.Expired(now.Add(100*365*24*time.Hour)))
	})

	t.Run("one instant before expiry is still valid", func(t *testing.T) {
		exp := now.Add(time.Nanosecond)
		inv := Invitation{ExpiresAt: &exp}
		require.False(t, inv.Expired(now))
	})

	t.Run("exactly at expiry is expired", func(t *testing.T) {
		exp := now
		inv := Invitation{ExpiresAt: &exp}
		require.True(t, inv.Expired(now))
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		exp := now.Add(-24 * time.Hour)
		inv := Invitation{ExpiresAt: &exp}
		require.True(t, inv.Expired(now))
	})
}
