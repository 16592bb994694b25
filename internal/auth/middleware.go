package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/seatmap/seatmap-editor/backend-go/internal/api"
)

type contextKey string

const UserIDKey contextKey = "userID"

func (s *Service) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "missing authorization header", nil)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid authorization format", nil)
			return
		}

		userID, err := s.ValidateToken(parts[1])
		if err != nil {
			api.WriteError(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid token", nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID returns ctx carrying userID, as the middleware would.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}
