package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// TokenVerifier defines the interface for validating bearer tokens.
type TokenVerifier interface {
	Verify(tokenString string) (*Principal, error)
}

// Principal is the authenticated caller extracted from a verified token.
// Only the claims this service actually consumes are carried.
type Principal struct {
	UserID    string
	SessionID string
}

type contextKeyPrincipal struct{}

// GetPrincipal retrieves the authenticated principal from the context.
// Returns nil when the request did not pass through RequireAuth.
func GetPrincipal(ctx context.Context) *Principal {
	if p, ok := ctx.Value(contextKeyPrincipal{}).(*Principal); ok {
		return p
	}
	return nil
}

// WithPrincipal injects a principal into a context.
// Useful for handler tests that don't run the middleware chain.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, contextKeyPrincipal{}, p)
}

// RequireAuth gates a handler behind bearer-token authentication.
// A missing token is a 401; a token that fails verification is a 403. The
// distinction mirrors presence versus validity of the credential.
func RequireAuth(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			// The token is the second whitespace-separated segment of the
			// Authorization header ("Bearer <token>").
			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) < 2 {
				logger.WarnContext(ctx, "access denied - missing token",
					"request_id", requestID,
				)
				writeAuthError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			principal, err := verifier.Verify(parts[1])
			if err != nil {
				logger.WarnContext(ctx, "access denied - invalid token",
					"error", err,
					"request_id", requestID,
				)
				writeAuthError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx = context.WithValue(ctx, contextKeyPrincipal{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"message":"` + message + `"}`))
}
