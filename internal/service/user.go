package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/monetahq/moneta/internal/domain"
	"github.com/monetahq/moneta/internal/store"
	"github.com/monetahq/moneta/pkg/cryptox"
	"github.com/monetahq/moneta/pkg/jwtx"
	"github.com/monetahq/moneta/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// UserService handles authentication for existing accounts.
type UserService struct {
	Store    store.Store
	Sessions *jwtx.Sessions
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password collapse into the same ErrInvalidCredentials so the
// endpoint never reveals which half was wrong.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, "", ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a verification anyway so the unknown-email path costs
			// roughly the same as a wrong password.
			_ = cryptox.VerifyPassword(password, dummyHash)
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user for login", slog.Any("error", err))
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login rejected", slog.String("email", email))
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.Sessions.Issue(user.ID, user.Email)
	if err != nil {
		log.Error("failed to issue session token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))

	return user, token, nil
}

// dummyHash is a throwaway argon2id digest used to equalize timing on the
// unknown-email path. The plaintext is not a valid password anywhere.
var dummyHash = func() string {
	h, err := cryptox.HashPassword("timing-equalizer-not-a-password")
	if err != nil {
		panic(err)
	}
	return h
}()
