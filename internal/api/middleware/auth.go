// Package middleware provides the HTTP middleware chain: caller
// identity and request metrics.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Cris-Baez/CharteredCatch-sub000/internal/api/handlers"
)

// userIDHeader carries the authenticated caller's identity. Session
// authentication lives in the marketplace frontend; by the time a
// request reaches this service the identity is already resolved.
const userIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth requires a numeric X-User-ID header and stores the caller's
// identity in the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the caller identity stored by Auth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
