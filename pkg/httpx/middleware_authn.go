package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/monetahq/moneta/pkg/jwtx"
	"github.com/monetahq/moneta/pkg/slogx"
)

// Verifier validates a raw bearer token and returns its session claims.
// *jwtx.Sessions satisfies this.
type Verifier interface {
	Verify(raw string) (jwtx.SessionClaims, error)
}

// AuthnMiddleware enforces a valid bearer session token and injects the
// caller's identity into the request context. Missing, malformed and
// expired tokens are all rejected as 401 with the same shape so callers
// cannot probe which failure occurred.
func AuthnMiddleware(v Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				if !errors.Is(err, jwtx.ErrExpired) {
					log.Warn("session verify failed", "err", err)
				}
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyEmail, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized", desc)
}
