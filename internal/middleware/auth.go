package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ovasilescu/travel-planner/internal/auth"
)

// identityKey is the context key under which the authenticated identity is
// stored. Unexported struct type — no collisions with other packages' keys.
type identityKey struct{}

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID   string
	Username string
}

// IdentityFrom returns the authenticated identity from ctx, if any.
// The second return is false on unauthenticated requests.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// RequireAuth returns a middleware that rejects requests without a valid
// Bearer token with 401. On success the identity is placed in the request
// context for handlers to read via IdentityFrom.
func RequireAuth(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := bearerClaims(tm, r)
			if !ok {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"missing or invalid token"}}`))
				return
			}
			ctx := context.WithValue(r.Context(), identityKey{},
				Identity{UserID: claims.UserID, Username: claims.Username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth returns a middleware that attaches the identity when a valid
// Bearer token is present but lets anonymous requests through untouched.
// Used on routes that are public but behave differently for the owner
// (e.g. viewing one's own unpublished plan).
func OptionalAuth(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := bearerClaims(tm, r); ok {
				ctx := context.WithValue(r.Context(), identityKey{},
					Identity{UserID: claims.UserID, Username: claims.Username})
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerClaims extracts and verifies the Authorization: Bearer token.
func bearerClaims(tm *auth.TokenManager, r *http.Request) (*auth.Claims, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, false
	}
	claims, err := tm.Parse(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}
