package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AdminOnly rejects requests without a valid admin bearer token.
func AdminOnly(authUC usecase.AuthUC, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				WriteError(w, e.ErrInvalidToken)
				return
			}

			claims, err := authUC.VerifyToken(token)
			if err != nil {
				logger.Warnf("Rejected admin request: %v", err)
				WriteError(w, e.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminClaims returns the verified claims stored by AdminOnly, or nil
// outside the protected route group.
func AdminClaims(ctx context.Context) *usecase.TokenClaims {
	claims, _ := ctx.Value(claimsKey).(*usecase.TokenClaims)
	return claims
}

// adminEmail tags audit log lines; empty outside the admin group.
func adminEmail(ctx context.Context) string {
	if claims := AdminClaims(ctx); claims != nil {
		return claims.Email
	}
	return ""
}
