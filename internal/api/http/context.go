package http

import (
	"context"
	"errors"

	"clubhub-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user-claims"

var errNoClaims = errors.New("no authenticated user in request context")

// WithClaims returns a context carrying the authenticated user's claims.
func WithClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the authenticated user's claims from the context.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok || claims == nil {
		return nil, errNoClaims
	}
	return claims, nil
}
