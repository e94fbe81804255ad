package aggregator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Gateway is the aggregator surface the rest of the service consumes.
// There is deliberately no caching behind it: every fetch re-queries the
// external service so balances and transactions are always current.
type Gateway interface {
	CreateLinkToken(ctx context.Context, clientUserID string) (LinkToken, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (ExchangeResult, error)
	GetAccounts(ctx context.Context, accessToken string) ([]Account, error)
	GetTransactions(ctx context.Context, accessToken, startDate, endDate string) ([]Transaction, error)
	GetLiabilities(ctx context.Context, accessToken string) ([]Liability, error)
}

// Client talks to the financial-data aggregation API. Credentials ride in
// each request body, matching the aggregator's convention.
type Client struct {
	hc       *http.Client
	baseURL  string
	clientID string
	secret   string
	log      *slog.Logger
}

type Config struct {
	BaseURL  string
	ClientID string
	Secret   string
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		hc:       &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		secret:   cfg.Secret,
		log:      logger.With("component", "aggregator"),
	}
}

func (c *Client) CreateLinkToken(ctx context.Context, clientUserID string) (LinkToken, error) {
	body := map[string]any{
		"client_name": "moneta",
		"user": map[string]string{
			"client_user_id": clientUserID,
		},
		"products":       []string{"transactions", "liabilities"},
		"country_codes":  []string{"US"},
		"language":       "en",
	}

	var out LinkToken
	if err := c.post(ctx, "/link/token/create", body, &out); err != nil {
		return LinkToken{}, err
	}
	return out, nil
}

func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (ExchangeResult, error) {
	body := map[string]any{"public_token": publicToken}

	var out ExchangeResult
	if err := c.post(ctx, "/item/public_token/exchange", body, &out); err != nil {
		return ExchangeResult{}, err
	}
	return out, nil
}

func (c *Client) GetAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	body := map[string]any{"access_token": accessToken}

	var out struct {
		Accounts []Account `json:"accounts"`
	}
	if err := c.post(ctx, "/accounts/get", body, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

func (c *Client) GetTransactions(ctx context.Context, accessToken, startDate, endDate string) ([]Transaction, error) {
	body := map[string]any{
		"access_token": accessToken,
		"start_date":   startDate,
		"end_date":     endDate,
	}

	var out struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := c.post(ctx, "/transactions/get", body, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

func (c *Client) GetLiabilities(ctx context.Context, accessToken string) ([]Liability, error) {
	body := map[string]any{"access_token": accessToken}

	var out struct {
		Liabilities []Liability `json:"liabilities"`
	}
	if err := c.post(ctx, "/liabilities/get", body, &out); err != nil {
		return nil, err
	}
	return out.Liabilities, nil
}

// post sends an authenticated JSON POST and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body map[string]any, out any) error {
	log := c.log.With(slog.String("endpoint", path))

	// Credentials are injected here so call sites never handle them.
	body["client_id"] = c.clientID
	body["secret"] = c.secret

	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	t1 := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error("aggregator request failed", slog.String("error", err.Error()))
		return fmt.Errorf("aggregator: %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("aggregator: read response: %w", err)
	}

	log.Debug("aggregator request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(t1)),
	)

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.ErrorType == "" {
			apiErr.ErrorType = "API_ERROR"
			apiErr.ErrorCode = fmt.Sprintf("HTTP_%d", resp.StatusCode)
			apiErr.Message = string(raw)
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("aggregator: decode response: %w", err)
	}
	return nil
}
