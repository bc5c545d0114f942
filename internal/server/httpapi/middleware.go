package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/ChakravarthiChowdary/authentication-system-backend/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// authFailedMessage is deliberately the same for a missing header, a bad
// signature, and an expired token.
const authFailedMessage = "User authentication failed. Invalid token"

// requireAuth verifies the bearer token and stores the decoded claims in the
// request context. Every failure is the same generic 403.
func requireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeErrorMessage(w, http.StatusForbidden, authFailedMessage)
				return
			}

			claims, err := auth.ParseToken(token, secret)
			if err != nil {
				writeErrorMessage(w, http.StatusForbidden, authFailedMessage)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// claimsFrom returns the claims stored by requireAuth, or nil outside the
// protected group.
func claimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// corsMiddleware mirrors the permissive browser policy of the original
// deployment: any origin, JSON and auth headers, preflight short-circuit.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers",
			"Origin, X-Requested-With, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
