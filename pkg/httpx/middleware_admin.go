package httpx

import (
	"net/http"

	"github.com/monetahq/moneta/pkg/cryptox"
	"github.com/monetahq/moneta/pkg/slogx"
)

// AdminKeyHeader carries the shared administrative secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyMiddleware guards administrative endpoints with a shared secret
// supplied via header or, as a fallback, the "key" query parameter. The
// comparison is constant time so the key cannot be recovered byte by byte
// from response timing.
func AdminKeyMiddleware(adminKey string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			// A service deployed without an admin key has no admin surface.
			if adminKey == "" {
				WriteError(w, http.StatusUnauthorized, "unauthorized", "admin access disabled")
				return
			}

			supplied := r.Header.Get(AdminKeyHeader)
			if supplied == "" {
				supplied = r.URL.Query().Get("key")
			}

			if !cryptox.SecureCompare(supplied, adminKey) {
				log.Warn("admin key mismatch", "path", r.URL.Path)
				WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid admin key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
