package monetasdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal HTTP client for the Moneta API. Construct it with
// NewClient, then authenticate with Login or Register; authenticated calls
// reuse the stored session token.
type Client struct {
	baseURL string
	hc      *http.Client

	token    string
	adminKey string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithToken seeds the client with an existing session token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithAdminKey enables the admin invitation endpoints.
func WithAdminKey(key string) Option {
	return func(c *Client) { c.adminKey = key }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the session token currently held by the client.
func (c *Client) Token() string { return c.token }

// Register redeems an invitation code and creates an account. On success
// the client stores the returned session token.
func (c *Client) Register(ctx context.Context, email, password, invitationCode string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/register", RegisterRequest{
		Email:          email,
		Password:       password,
		InvitationCode: invitationCode,
	}, &out)
	if err != nil {
		return AuthResponse{}, err
	}
	c.token = out.Token
	return out, nil
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return AuthResponse{}, err
	}
	c.token = out.Token
	return out, nil
}

// VerifyInvitation checks a code before starting registration.
func (c *Client) VerifyInvitation(ctx context.Context, code string) (VerifyInvitationResponse, error) {
	var out VerifyInvitationResponse
	err := c.do(ctx, http.MethodPost, "/v1/invitations/verify", VerifyInvitationRequest{
		InvitationCode: code,
	}, &out)
	if err != nil {
		return VerifyInvitationResponse{}, err
	}
	return out, nil
}

// CreateInvitation issues a new invitation. Requires WithAdminKey.
func (c *Client) CreateInvitation(ctx context.Context, req CreateInvitationRequest) (InvitationInfo, error) {
	var out InvitationInfo
	if err := c.do(ctx, http.MethodPost, "/v1/admin/invitations", req, &out); err != nil {
		return InvitationInfo{}, err
	}
	return out, nil
}

// ListInvitations returns the full invitation ledger. Requires WithAdminKey.
func (c *Client) ListInvitations(ctx context.Context) ([]InvitationInfo, error) {
	var out []InvitationInfo
	if err := c.do(ctx, http.MethodGet, "/v1/admin/invitations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLinkToken starts the institution-linking handshake.
func (c *Client) CreateLinkToken(ctx context.Context) (LinkTokenResponse, error) {
	var out LinkTokenResponse
	if err := c.do(ctx, http.MethodPost, "/v1/link/token", nil, &out); err != nil {
		return LinkTokenResponse{}, err
	}
	return out, nil
}

// ExchangePublicToken completes a link flow.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken, institutionName string) (LinkedAccountInfo, error) {
	var out LinkedAccountInfo
	err := c.do(ctx, http.MethodPost, "/v1/link/exchange", ExchangeTokenRequest{
		PublicToken:     publicToken,
		InstitutionName: institutionName,
	}, &out)
	if err != nil {
		return LinkedAccountInfo{}, err
	}
	return out, nil
}

// Accounts returns accounts across every linked institution.
func (c *Client) Accounts(ctx context.Context) ([]AccountInfo, error) {
	var out []AccountInfo
	if err := c.do(ctx, http.MethodGet, "/v1/accounts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Transactions returns transactions for the given date range (YYYY-MM-DD);
// empty bounds default server-side to the trailing 30 days.
func (c *Client) Transactions(ctx context.Context, startDate, endDate string) ([]TransactionInfo, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	path := "/v1/transactions"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []TransactionInfo
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Liabilities returns debt obligations across every linked institution.
func (c *Client) Liabilities(ctx context.Context) ([]LiabilityInfo, error) {
	var out []LiabilityInfo
	if err := c.do(ctx, http.MethodGet, "/v1/liabilities", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Livez probes service liveness.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", nil, &out); err != nil {
		return HealthResponse{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.adminKey != "" {
		req.Header.Set("X-Admin-Key", c.adminKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("moneta api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
	} else {
		apiErr.Code = ErrCodeServer
	}
	return apiErr
}
