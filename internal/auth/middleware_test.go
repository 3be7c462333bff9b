package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tward/kennel/internal/models"
)

type stubResolver struct {
	user models.User
	err  error
}

func (s stubResolver) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.user, s.err
}

func runProtected(t *testing.T, tokens TokenVerifier, users UserResolver, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	handler := Middleware(tokens, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		_, ok := UserFromContext(r.Context())
		assert.True(t, ok, "user should be attached to the context")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, reached
}

func TestMiddleware_NoHeader(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	rec, reached := runProtected(t, svc, stubResolver{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestMiddleware_NotBearer(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	rec, reached := runProtected(t, svc, stubResolver{}, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestMiddleware_InvalidToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	rec, reached := runProtected(t, svc, stubResolver{}, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestMiddleware_UserNoLongerExists(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	tok, err := svc.Issue("gone-user")
	require.NoError(t, err)

	rec, reached := runProtected(t, svc, stubResolver{err: errors.New("user not found")}, "Bearer "+tok)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestMiddleware_ValidToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	tok, err := svc.Issue("user-1")
	require.NoError(t, err)

	users := stubResolver{user: models.User{ID: "user-1", Username: "rex"}}
	rec, reached := runProtected(t, svc, users, "Bearer "+tok)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}
