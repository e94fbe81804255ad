package aggregator

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/shopspring/decimal"
)

// Mock is an in-memory Gateway for tests and local development. Every
// method can be overridden per test; unset methods return small canned
// fixtures.
type Mock struct {
	CreateLinkTokenFn     func(ctx context.Context, clientUserID string) (LinkToken, error)
	ExchangePublicTokenFn func(ctx context.Context, publicToken string) (ExchangeResult, error)
	GetAccountsFn         func(ctx context.Context, accessToken string) ([]Account, error)
	GetTransactionsFn     func(ctx context.Context, accessToken, startDate, endDate string) ([]Transaction, error)
	GetLiabilitiesFn      func(ctx context.Context, accessToken string) ([]Liability, error)

	exchanges atomic.Int64
}

var _ Gateway = (*Mock)(nil)

func (m *Mock) CreateLinkToken(ctx context.Context, clientUserID string) (LinkToken, error) {
	if m.CreateLinkTokenFn != nil {
		return m.CreateLinkTokenFn(ctx, clientUserID)
	}
	return LinkToken{
		LinkToken:  "link-sandbox-" + clientUserID,
		Expiration: "2030-01-01T00:00:00Z",
	}, nil
}

func (m *Mock) ExchangePublicToken(ctx context.Context, publicToken string) (ExchangeResult, error) {
	if m.ExchangePublicTokenFn != nil {
		return m.ExchangePublicTokenFn(ctx, publicToken)
	}
	n := m.exchanges.Add(1)
	return ExchangeResult{
		AccessToken: fmt.Sprintf("access-sandbox-%d", n),
		ItemID:      fmt.Sprintf("item-%d", n),
	}, nil
}

func (m *Mock) GetAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	if m.GetAccountsFn != nil {
		return m.GetAccountsFn(ctx, accessToken)
	}
	return []Account{
		{
			AccountID: "acc-checking",
			Name:      "Everyday Checking",
			Type:      "depository",
			Subtype:   "checking",
			Mask:      "0001",
			Balances: Balances{
				Available:       decimal.NewFromFloat(1204.56),
				Current:         decimal.NewFromFloat(1304.56),
				ISOCurrencyCode: "USD",
			},
		},
	}, nil
}

func (m *Mock) GetTransactions(ctx context.Context, accessToken, startDate, endDate string) ([]Transaction, error) {
	if m.GetTransactionsFn != nil {
		return m.GetTransactionsFn(ctx, accessToken, startDate, endDate)
	}
	return []Transaction{
		{
			TransactionID:   "txn-1",
			AccountID:       "acc-checking",
			Name:            "Coffee Roasters",
			Amount:          decimal.NewFromFloat(4.50),
			ISOCurrencyCode: "USD",
			Date:            startDate,
			Category:        []string{"Food and Drink", "Coffee"},
		},
	}, nil
}

func (m *Mock) GetLiabilities(ctx context.Context, accessToken string) ([]Liability, error) {
	if m.GetLiabilitiesFn != nil {
		return m.GetLiabilitiesFn(ctx, accessToken)
	}
	return []Liability{
		{
			AccountID:          "acc-credit",
			Type:               "credit",
			OutstandingBalance: decimal.NewFromFloat(420.00),
			MinimumPayment:     decimal.NewFromFloat(25.00),
			NextPaymentDueDate: "2026-09-15",
			APRPercentage:      decimal.NewFromFloat(23.99),
		},
	}, nil
}
