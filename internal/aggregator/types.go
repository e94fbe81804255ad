package aggregator

import "github.com/shopspring/decimal"

// Balances is the point-in-time balance set the aggregator reports for an
// account. Amounts are decimals; float64 would corrupt cents.
type Balances struct {
	Available       decimal.Decimal `json:"available"`
	Current         decimal.Decimal `json:"current"`
	ISOCurrencyCode string          `json:"iso_currency_code"`
}

// Account is a bank or brokerage account inside one linked institution.
type Account struct {
	AccountID string   `json:"account_id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`    // depository, credit, loan, investment
	Subtype   string   `json:"subtype"` // checking, savings, credit card, ...
	Mask      string   `json:"mask"`
	Balances  Balances `json:"balances"`
}

// Transaction is a single posted or pending transaction.
type Transaction struct {
	TransactionID   string          `json:"transaction_id"`
	AccountID       string          `json:"account_id"`
	Name            string          `json:"name"`
	MerchantName    string          `json:"merchant_name,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	ISOCurrencyCode string          `json:"iso_currency_code"`
	Date            string          `json:"date"` // YYYY-MM-DD
	Pending         bool            `json:"pending"`
	Category        []string        `json:"category,omitempty"`
}

// Liability describes the debt position of a credit or loan account.
type Liability struct {
	AccountID          string          `json:"account_id"`
	Type               string          `json:"type"` // credit, student, mortgage
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	MinimumPayment     decimal.Decimal `json:"minimum_payment"`
	NextPaymentDueDate string          `json:"next_payment_due_date,omitempty"`
	APRPercentage      decimal.Decimal `json:"apr_percentage"`
}

// LinkToken is a short-lived token the frontend hands to the aggregator's
// link widget to start the account-linking flow.
type LinkToken struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration"`
}

// ExchangeResult is the durable credential returned when a public token
// from a completed link flow is exchanged.
type ExchangeResult struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}
