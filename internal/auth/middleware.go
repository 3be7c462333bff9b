package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tward/kennel/internal/models"
)

type contextKey string

const userKey = contextKey("authUser")

// UserFromContext returns the authenticated user attached by Middleware.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

// TokenVerifier verifies a token string and returns the subject user ID.
type TokenVerifier interface {
	Verify(tokenStr string) (string, error)
}

// UserResolver resolves a user ID to a full user record.
type UserResolver interface {
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

// Middleware creates a middleware for protecting routes. It rejects requests
// without a valid bearer token before any handler logic runs, so authorization
// failures take precedence over validation and not-found responses.
func Middleware(tokens TokenVerifier, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Missing auth token", http.StatusUnauthorized)
				return
			}

			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				http.Error(w, "Missing auth token", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Verify(tokenStr)
			if err != nil {
				http.Error(w, "Invalid auth token", http.StatusUnauthorized)
				return
			}

			// The token may outlive the account it was issued for.
			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				http.Error(w, "Invalid auth token", http.StatusUnauthorized)
				return
			}

			log.Debug().Str("user_id", user.ID).Str("username", user.Username).Msg("Authenticated request")

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
