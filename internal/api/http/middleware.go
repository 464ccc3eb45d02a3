package http

import (
	"net/http"
	"strings"
	"time"

	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/security"

	"github.com/google/uuid"
)

// RequestLogger assigns every request an id and logs its outcome.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"request_id", requestID, "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// AuthMiddleware validates the bearer token and injects the user's claims
// into the request context.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: errorBody{Code: "UNAUTHENTICATED", Message: "authorization token is not provided"}})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := m.tokenManager.ValidateToken(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorEnvelope{Error: errorBody{Code: "UNAUTHENTICATED", Message: err.Error()}})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireAdmin guards a handler so only admins reach it.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ClaimsFromContext(r.Context())
		if err != nil || !claims.HasRole(security.RoleAdmin) {
			writeJSON(w, http.StatusForbidden, errorEnvelope{Error: errorBody{Code: "FORBIDDEN", Message: "admin role required"}})
			return
		}
		next.ServeHTTP(w, r)
	})
}
