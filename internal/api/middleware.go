package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// ContextKey is the type for request context keys set by the middleware.
type ContextKey string

const (
	// PrincipalEmailKey holds the authenticated caller's email, the principal
	// every governed operation resolves to a user record.
	PrincipalEmailKey ContextKey = "principalEmail"
)

// AuthMiddleware validates the Bearer token and stores the principal email in
// the request context. Anonymous callers never reach the handlers behind it.
func (h *HTTPHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.respondError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			h.respondError(w, r, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := h.tokenManager.Validate(parts[1])
		if err != nil {
			h.logger.WarnContext(r.Context(), "Invalid or expired token", slog.String("error", err.Error()))
			h.respondError(w, r, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalEmailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalEmail extracts the authenticated principal set by AuthMiddleware.
func principalEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(PrincipalEmailKey).(string)
	return email, ok && email != ""
}
