// Package auth resolves the caller identity from the Authorization header.
//
// The bearer token is treated as an opaque identity string: the server never
// interprets its structure, which keeps a real credential verifier swappable
// without touching handler or usecase code.
package auth

import (
	"context"
	"net/http"
	"strings"

	"blog-api/internal/handler/http/respond"
)

type contextKey string

const identityKey contextKey = "identity"

const bearerPrefix = "Bearer "

// ResolveIdentity extracts the opaque identity string from an
// `Authorization: Bearer <token>` header. The second return value reports
// whether a non-empty identity was present.
func ResolveIdentity(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authz, bearerPrefix))
	return token, token != ""
}

// IdentityFromContext returns the identity stored by the middleware, or ""
// for anonymous requests.
func IdentityFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(identityKey).(string); ok {
		return id
	}
	return ""
}

// Optional stores the caller identity in the context when a bearer token is
// present and lets anonymous requests through untouched.
func Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := ResolveIdentity(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), identityKey, id))
		}
		next.ServeHTTP(w, r)
	})
}

// Require rejects requests without a bearer token with a 401 envelope and
// otherwise stores the identity in the context.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := ResolveIdentity(r)
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
