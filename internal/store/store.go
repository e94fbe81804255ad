package store

import (
	"context"
	"errors"

	"github.com/monetahq/moneta/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Invitations() Invitations
	LinkedAccounts() LinkedAccounts

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Registration
	// is the one operation that must run through this: the invitation
	// check-and-mark and the user insert may not interleave with a
	// concurrent registration using the same code.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store. It exposes the same repos plus
// Commit/Rollback; nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is already registered.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Invitations interface {
	// CreateInvitation writes a new invitation. Returns ErrAlreadyExists
	// when the code is already issued.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByCode returns an invitation by its exact code string,
	// regardless of used/expired state; callers decide redeemability.
	GetInvitationByCode(ctx context.Context, code string) (domain.Invitation, error)

	// ListInvitations returns all invitations, newest first.
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)

	// MarkInvitationUsed sets used=1, used_by and used_at, guarded by
	// "AND used = 0". Returns ErrAlreadyExists if the row was already
	// consumed, which is the concurrency fallback for two registrations
	// racing on one code. Call only inside the registration transaction.
	MarkInvitationUsed(ctx context.Context, invitationID, usedByUserID string) error
}

type LinkedAccounts interface {
	// CreateLinkedAccount stores an access token obtained from the
	// aggregator token exchange.
	CreateLinkedAccount(ctx context.Context, la domain.LinkedAccount) error

	// ListLinkedAccountsByUser returns all of a user's linked accounts,
	// oldest first.
	ListLinkedAccountsByUser(ctx context.Context, userID string) ([]domain.LinkedAccount, error)
}
