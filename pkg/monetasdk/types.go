// Package monetasdk carries the wire types for the Moneta API and a small
// HTTP client for consuming it. Server handlers and external callers share
// these definitions so the contract lives in one place.
package monetasdk

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	// Error is a stable machine-readable code, e.g. "invitation_used".
	Error string `json:"error"`

	// Message is a human-readable description safe to show to users.
	Message string `json:"message,omitempty"`
}

// Stable error codes returned in ErrorResponse.Error.
const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeInvalidInvitation  = "invalid_invitation"
	ErrCodeInvitationUsed     = "invitation_used"
	ErrCodeInvitationExpired  = "invitation_expired"
	ErrCodeEmailMismatch      = "email_mismatch"
	ErrCodeEmailTaken         = "email_taken"
	ErrCodeWeakPassword       = "weak_password"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeDuplicateCode      = "duplicate_code"
	ErrCodeUpstream           = "upstream_error"
	ErrCodeServer             = "server_error"
)

// RegisterRequest is the body for POST /v1/auth/register.
type RegisterRequest struct {
	Email          string `json:"email"            validate:"required,email"`
	Password       string `json:"password"         validate:"required,min=8,max=512"`
	InvitationCode string `json:"invitation_code"  validate:"required,max=64"`
}

// LoginRequest is the body for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the public projection of a user record.
type UserInfo struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login: a bearer session token
// plus the authenticated user.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// VerifyInvitationRequest is the body for POST /v1/invitations/verify.
type VerifyInvitationRequest struct {
	InvitationCode string `json:"invitation_code" validate:"required,max=64"`
}

// VerifyInvitationResponse reports whether a code is currently redeemable.
// Only the domain of the bound email is exposed, never the full address.
type VerifyInvitationResponse struct {
	Valid       bool   `json:"valid"`
	EmailDomain string `json:"email_domain,omitempty"`
	Error       string `json:"error,omitempty"`
}

// CreateInvitationRequest is the admin body for POST /v1/admin/invitations.
// An empty code asks the server to generate one; zero expiry days applies
// the 30-day default.
type CreateInvitationRequest struct {
	Code          string `json:"code,omitempty"            validate:"omitempty,max=64"`
	Email         string `json:"email"                     validate:"required,email"`
	ExpiresInDays int    `json:"expires_in_days,omitempty" validate:"omitempty,min=1,max=365"`
}

// InvitationInfo is the admin projection of an invitation. Codes appear in
// full here; the admin surface is the issuing side.
type InvitationInfo struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Email     string     `json:"email"`
	Used      bool       `json:"used"`
	UsedBy    string     `json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// LinkTokenResponse is returned by POST /v1/link/token.
type LinkTokenResponse struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration,omitempty"`
}

// ExchangeTokenRequest is the body for POST /v1/link/exchange.
type ExchangeTokenRequest struct {
	PublicToken     string `json:"public_token"     validate:"required"`
	InstitutionName string `json:"institution_name" validate:"omitempty,max=128"`
}

// LinkedAccountInfo describes a linked institution. The access token never
// leaves the server.
type LinkedAccountInfo struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	InstitutionName string    `json:"institution_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// BalancesInfo mirrors the aggregator's balance block.
type BalancesInfo struct {
	Available       decimal.Decimal `json:"available"`
	Current         decimal.Decimal `json:"current"`
	Limit           decimal.Decimal `json:"limit,omitempty"`
	ISOCurrencyCode string          `json:"iso_currency_code,omitempty"`
}

// AccountInfo is one account at a linked institution.
type AccountInfo struct {
	AccountID string       `json:"account_id"`
	Name      string       `json:"name"`
	Type      string       `json:"type"`
	Subtype   string       `json:"subtype,omitempty"`
	Mask      string       `json:"mask,omitempty"`
	Balances  BalancesInfo `json:"balances"`
}

// TransactionInfo is one transaction from a linked institution.
type TransactionInfo struct {
	TransactionID   string          `json:"transaction_id"`
	AccountID       string          `json:"account_id"`
	Name            string          `json:"name"`
	MerchantName    string          `json:"merchant_name,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	ISOCurrencyCode string          `json:"iso_currency_code,omitempty"`
	Date            string          `json:"date"`
	Pending         bool            `json:"pending,omitempty"`
	Category        []string        `json:"category,omitempty"`
}

// LiabilityInfo is one debt obligation from a linked institution.
type LiabilityInfo struct {
	AccountID          string          `json:"account_id"`
	Type               string          `json:"type"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	MinimumPayment     decimal.Decimal `json:"minimum_payment,omitempty"`
	NextPaymentDueDate string          `json:"next_payment_due_date,omitempty"`
	APRPercentage      decimal.Decimal `json:"apr_percentage,omitempty"`
}

// HealthChecks reports per-dependency status in readiness responses.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
