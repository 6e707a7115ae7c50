package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/storekit/catalog-api/internal/auth"
	"github.com/storekit/catalog-api/internal/http/handlers"
	rl "github.com/storekit/catalog-api/internal/http/rate_limiter"
)

type contextKey string

const identityKey = contextKey("identity")

var (
	tokenService *auth.Service
	readyCheck   = func() bool { return false }
)

func SetTokenService(s *auth.Service) {
	tokenService = s
}

// SetReadyCheck wires the database readiness flag into RequireReady.
func SetReadyCheck(f func() bool) {
	readyCheck = f
}

// AuthMiddleware is the authentication gate: it extracts the bearer token,
// verifies it, and attaches the decoded identity to the request context.
// Requests never reach the handler on failure.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			handlers.WriteError(w, http.StatusUnauthorized, handlers.CodeMissingToken, "authorization token required")
			return
		}

		tokenStr, ok := bearerToken(header)
		if !ok {
			handlers.WriteError(w, http.StatusUnauthorized, handlers.CodeMissingToken, "authorization header must be of the form 'Bearer <token>'")
			return
		}

		identity, err := tokenService.VerifyToken(tokenStr)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				handlers.WriteError(w, http.StatusUnauthorized, handlers.CodeTokenExpired, "session expired, log in again")
				return
			}
			handlers.WriteError(w, http.StatusForbidden, handlers.CodeInvalidToken, "invalid authorization token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireReady fails fast with 503 before any handler side effects when the
// database has not been initialized.
func RequireReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !readyCheck() {
			handlers.WriteError(w, http.StatusServiceUnavailable, handlers.CodeServiceUnavailable, "database not ready, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware applies the per-IP token bucket on the public auth
// endpoints.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.GetVisitor(ClientIP(r)).Allow() {
			handlers.WriteError(w, http.StatusTooManyRequests, handlers.CodeTooManyAttempts, "too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromContext returns the authenticated caller attached by
// AuthMiddleware.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(auth.Identity)
	return identity, ok
}

// ClientIP strips the port from RemoteAddr, falling back to the raw value.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
