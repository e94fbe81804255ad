package aggregator

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:  srv.URL,
		ClientID: "client-id",
		Secret:   "client-secret",
	}, slog.Default())
}

func TestClientInjectsCredentials(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/get", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{"accounts": []Account{}})
	})

	_, err := c.GetAccounts(context.Background(), "access-token")
	require.NoError(t, err)
	require.Equal(t, "client-id", got["client_id"])
	require.Equal(t, "client-secret", got["secret"])
	require.Equal(t, "access-token", got["access_token"])
}

func TestClientDecodesAmountsAsDecimals(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transactions":[
			{"transaction_id":"t1","account_id":"a1","name":"Rent",
			 "amount":"1450.10","iso_currency_code":"USD","date":"2026-08-01"}
		]}`))
	})

	txns, err := c.GetTransactions(context.Background(), "tok", "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	require.Equal(t, "1450.1", txns[0].Amount.String())
}

func TestClientMapsStructuredErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_type":"INVALID_INPUT","error_code":"INVALID_ACCESS_TOKEN","error_message":"bad token"}`))
	})

	_, err := c.GetAccounts(context.Background(), "nope")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "INVALID_ACCESS_TOKEN", apiErr.ErrorCode)
}

func TestClientMapsUnstructuredErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := c.GetLiabilities(context.Background(), "tok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "API_ERROR", apiErr.ErrorType)
	require.Equal(t, "HTTP_502", apiErr.ErrorCode)
}
