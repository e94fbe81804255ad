package domain

import "time"

// Invitation is a pre-issued, single-use permission token bound to one
// email address. It transitions used=false -> used=true at most once, only
// as part of a successful registration, and is never deleted: consumed
// invitations are the audit trail of who joined via which code.
type Invitation struct {
	ID        string
	Code      string
	Email     string // the only address permitted to redeem this code
	Used      bool
	UsedBy    string     // user id; empty until redeemed
	UsedAt    *time.Time // set iff Used
	ExpiresAt *time.Time // nil means the code never expires
	CreatedAt time.Time
}

// DefaultInvitationTTL is applied when an invitation is issued without an
// explicit expiry.
const DefaultInvitationTTL = 30 * 24 * time.Hour

// Expired reports whether the invitation is expired at now. The boundary
// is inclusive: a code whose expiry equals now is already expired.
func (i Invitation) Expired(now time.Time) bool {
	if i.ExpiresAt == nil {
		return false
	}
	return !now.Before(*i.ExpiresAt)
}
