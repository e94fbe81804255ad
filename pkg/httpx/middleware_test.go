package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/monetahq/moneta/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func strReader(s string) *strings.Reader { return strings.NewReader(s) }

func TestAuthnMiddleware(t *testing.T) {
	sessions := jwtx.NewSessions([]byte("test-secret-at-least-32-bytes-long"), "moneta", time.Hour)

	var gotUserID, gotEmail string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
		gotEmail, _ = EmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}), AuthnMiddleware(sessions))

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("malformed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token injects identity", func(t *testing.T) {
		token, err := sessions.Issue("user-1", "a@x.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", gotUserID)
		require.Equal(t, "a@x.com", gotEmail)
	})
}

func TestAdminKeyMiddleware(t *testing.T) {
	h := Chain(okHandler(), AdminKeyMiddleware("super-secret"))

	t.Run("missing key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(AdminKeyHeader, "guess")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("header key accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(AdminKeyHeader, "super-secret")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("query key accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?key=super-secret", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty configured key disables admin surface", func(t *testing.T) {
		disabled := Chain(okHandler(), AdminKeyMiddleware(""))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(AdminKeyHeader, "")
		rec := httptest.NewRecorder()
		disabled.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDecodeJSONValidation(t *testing.T) {
	type body struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/",
			strReader(`{"email":"a@x.com","password":"longenough"}`))
		var b body
		require.NoError(t, DecodeJSON(req, &b))
		require.Equal(t, "a@x.com", b.Email)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strReader(`{`))
		var b body
		require.EqualError(t, DecodeJSON(req, &b), "invalid JSON body")
	})

	t.Run("field errors use json names", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/",
			strReader(`{"email":"nope","password":"short"}`))
		var b body
		err := DecodeJSON(req, &b)
		require.Error(t, err)
		require.Contains(t, err.Error(), "email")
		require.Contains(t, err.Error(), "password")
	})
}
