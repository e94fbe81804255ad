package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/monetahq/moneta/internal/domain"
	"github.com/monetahq/moneta/internal/store"
	"github.com/monetahq/moneta/pkg/cryptox"
	"github.com/monetahq/moneta/pkg/idx"
	"github.com/monetahq/moneta/pkg/jwtx"
	"github.com/monetahq/moneta/pkg/slogx"
)

var (
	ErrEmailTaken   = errors.New("email is already registered")
	ErrWeakPassword = errors.New("password does not meet the minimum length")
)

// MinPasswordLength follows the OWASP floor for memorized secrets.
const MinPasswordLength = 8

// RegistrationService performs the invitation-gated account creation. The
// whole flow runs inside a single transaction so that a failure at any
// step leaves no user row behind and the invitation untouched.
type RegistrationService struct {
	Store    store.Store
	Sessions *jwtx.Sessions
}

// Register redeems an invitation code and creates the account in one
// atomic step, returning the new user and a session token.
//
// Validation precedence is fixed: unknown code, already used, expired,
// email mismatch, weak password, then duplicate email. Two concurrent
// calls with the same code cannot both succeed; the loser observes the
// consumed row (or loses the guarded update) and gets ErrInvitationUsed.
func (s *RegistrationService) Register(
	ctx context.Context,
	email string,
	password string,
	code string,
) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	code = strings.ToUpper(strings.TrimSpace(code))
	if email == "" || code == "" {
		return domain.User{}, "", ErrInvalidRequest
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, "", ErrWeakPassword
	}

	// Hashing is the slow part; do it before taking the write transaction
	// so the single sqlite writer isn't held for ~100ms of argon2.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := tx.Invitations().GetInvitationByCode(ctx, code)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationNotFound
			}
			return err
		}

		if err := validateForRedemption(inv, email, time.Now().UTC()); err != nil {
			return err
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}

		if err := tx.Invitations().MarkInvitationUsed(ctx, inv.ID, user.ID); err != nil {
			// A concurrent registration consumed the code between our read
			// and the guarded update. Roll everything back.
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrInvitationUsed
			}
			return err
		}

		return nil
	})
	if err != nil {
		if isRegistrationError(err) {
			log.Warn("registration rejected",
				slog.String("email", email),
				slog.String("reason", err.Error()),
			)
		} else {
			log.Error("registration failed", slog.Any("error", err))
		}
		return domain.User{}, "", err
	}

	token, err := s.Sessions.Issue(user.ID, user.Email)
	if err != nil {
		log.Error("failed to issue session token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, token, nil
}

// isRegistrationError reports whether err is a client-caused rejection
// rather than an infrastructure failure.
func isRegistrationError(err error) bool {
	return errors.Is(err, ErrInvitationNotFound) ||
		errors.Is(err, ErrInvitationUsed) ||
		errors.Is(err, ErrInvitationExpired) ||
		errors.Is(err, ErrInvitationEmailMismatch) ||
		errors.Is(err, ErrEmailTaken)
}
