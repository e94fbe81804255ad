package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/monetahq/moneta/internal/aggregator"
	"github.com/monetahq/moneta/internal/domain"
	"github.com/monetahq/moneta/internal/store"
	"github.com/monetahq/moneta/pkg/idx"
	"github.com/monetahq/moneta/pkg/slogx"
)

// DefaultTransactionWindow is applied when the caller gives no date range.
const DefaultTransactionWindow = 30 * 24 * time.Hour

// AccountService proxies financial data from the aggregator across every
// institution the user has linked. Results are fetched fresh on each call;
// nothing from the aggregator is persisted except access tokens.
type AccountService struct {
	Store   store.Store
	Gateway aggregator.Gateway
}

// CreateLinkToken starts the institution-linking handshake for a user.
func (s *AccountService) CreateLinkToken(ctx context.Context, userID string) (aggregator.LinkToken, error) {
	return s.Gateway.CreateLinkToken(ctx, userID)
}

// ExchangePublicToken trades the public token from a completed link flow
// for a permanent access token and records the new linked institution.
func (s *AccountService) ExchangePublicToken(
	ctx context.Context,
	userID string,
	publicToken string,
	institutionName string,
) (domain.LinkedAccount, error) {
	log := slogx.FromContext(ctx)

	res, err := s.Gateway.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		log.Error("public token exchange failed", slog.Any("error", err))
		return domain.LinkedAccount{}, err
	}

	la := domain.LinkedAccount{
		ID:              idx.New().String(),
		UserID:          userID,
		AccessToken:     res.AccessToken,
		ItemID:          res.ItemID,
		InstitutionName: institutionName,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Store.LinkedAccounts().CreateLinkedAccount(ctx, la); err != nil {
		log.Error("failed to store linked account", slog.Any("error", err))
		return domain.LinkedAccount{}, err
	}

	log.Info("institution linked",
		slog.String("user_id", userID),
		slog.String("item_id", res.ItemID),
		slog.String("institution", institutionName),
	)

	return la, nil
}

// Accounts returns the user's accounts across all linked institutions.
// A user with nothing linked gets an empty slice, not an error.
func (s *AccountService) Accounts(ctx context.Context, userID string) ([]aggregator.Account, error) {
	linked, err := s.Store.LinkedAccounts().ListLinkedAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []aggregator.Account{}
	for _, la := range linked {
		accounts, err := s.Gateway.GetAccounts(ctx, la.AccessToken)
		if err != nil {
			return nil, err
		}
		out = append(out, accounts...)
	}
	return out, nil
}

// Transactions returns the user's transactions across all linked
// institutions for the given date range (YYYY-MM-DD, inclusive). An empty
// range defaults to the trailing 30 days.
func (s *AccountService) Transactions(
	ctx context.Context,
	userID string,
	startDate string,
	endDate string,
) ([]aggregator.Transaction, error) {
	now := time.Now().UTC()
	if endDate == "" {
		endDate = now.Format(time.DateOnly)
	}
	if startDate == "" {
		startDate = now.Add(-DefaultTransactionWindow).Format(time.DateOnly)
	}

	linked, err := s.Store.LinkedAccounts().ListLinkedAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []aggregator.Transaction{}
	for _, la := range linked {
		txns, err := s.Gateway.GetTransactions(ctx, la.AccessToken, startDate, endDate)
		if err != nil {
			return nil, err
		}
		out = append(out, txns...)
	}
	return out, nil
}

// Liabilities returns the user's debt obligations across all linked
// institutions.
func (s *AccountService) Liabilities(ctx context.Context, userID string) ([]aggregator.Liability, error) {
	linked, err := s.Store.LinkedAccounts().ListLinkedAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []aggregator.Liability{}
	for _, la := range linked {
		liabilities, err := s.Gateway.GetLiabilities(ctx, la.AccessToken)
		if err != nil {
			return nil, err
		}
		out = append(out, liabilities...)
	}
	return out, nil
}
