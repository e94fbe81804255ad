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
	"github.com/monetahq/moneta/pkg/slogx"
)

var (
	ErrInvalidRequest          = errors.New("invalid request")
	ErrInvitationNotFound      = errors.New("invitation code not found")
	ErrInvitationUsed          = errors.New("invitation code has already been used")
	ErrInvitationExpired       = errors.New("invitation code has expired")
	ErrInvitationEmailMismatch = errors.New("invitation code is bound to a different email")
	ErrDuplicateCode           = errors.New("invitation code already exists")
)

// InvitationService owns the invitation ledger: issuing codes, listing
// them for admins, and deciding redeemability.
type InvitationService struct {
	Store store.Store
}

// Issue creates a new invitation bound to an email. An empty code asks the
// service to generate one; expiresInDays <= 0 applies the 30-day default.
func (s *InvitationService) Issue(
	ctx context.Context,
	code string,
	email string,
	expiresInDays int,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" {
		return domain.Invitation{}, ErrInvalidRequest
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		generated, err := cryptox.GenerateInviteCode()
		if err != nil {
			log.Error("failed to generate invitation code", slog.Any("error", err))
			return domain.Invitation{}, err
		}
		code = generated
	}

	if expiresInDays <= 0 {
		expiresInDays = int(domain.DefaultInvitationTTL / (24 * time.Hour))
	}
	expiresAt := time.Now().UTC().Add(time.Duration(expiresInDays) * 24 * time.Hour)

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Code:      code,
		Email:     email,
		Used:      false,
		ExpiresAt: &expiresAt,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("attempted to issue duplicate invitation code",
				slog.String("code", code),
			)
			return domain.Invitation{}, ErrDuplicateCode
		}
		log.Error("failed to create invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("email", email),
		slog.Time("expires_at", expiresAt),
	)

	return inv, nil
}

// List returns every invitation, consumed ones included; the ledger is the
// audit trail of who was invited and who joined.
func (s *InvitationService) List(ctx context.Context) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListInvitations(ctx)
}

// Verify checks whether a code could currently be redeemed, without an
// email to compare against. Used by the pre-registration check endpoint.
func (s *InvitationService) Verify(ctx context.Context, code string) (domain.Invitation, error) {
	inv, err := s.lookup(ctx, code)
	if err != nil {
		return domain.Invitation{}, err
	}

	if err := validateForRedemption(inv, "", time.Now().UTC()); err != nil {
		return domain.Invitation{}, err
	}
	return inv, nil
}

func (s *InvitationService) lookup(ctx context.Context, code string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.Invitation{}, ErrInvitationNotFound
	}

	inv, err := s.Store.Invitations().GetInvitationByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	return inv, nil
}

// validateForRedemption applies the redeemability checks in a fixed
// precedence: used before expired before email mismatch, so a caller
// holding a stale code learns the most actionable failure first. An empty
// email skips the binding check.
func validateForRedemption(inv domain.Invitation, email string, now time.Time) error {
	if inv.Used {
		return ErrInvitationUsed
	}
	if inv.Expired(now) {
		return ErrInvitationExpired
	}
	if email != "" && !strings.EqualFold(inv.Email, email) {
		return ErrInvitationEmailMismatch
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomain returns the domain part of the invitation's bound email.
// The verify endpoint exposes this instead of the full address so a code
// alone doesn't leak who it was issued to.
func EmailDomain(email string) string {
	if at := strings.LastIndex(email, "@"); at >= 0 {
		return email[at+1:]
	}
	return ""
}
