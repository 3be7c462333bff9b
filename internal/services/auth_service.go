package services

import (
	"context"
	"errors"
)

// TokenIssuer issues a signed session token for a user ID.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthServiceProvider defines the interface for signup and signin flows.
type AuthServiceProvider interface {
	SignUp(ctx context.Context, username, password, email string) (string, error)
	SignIn(ctx context.Context, username, password string) (string, error)
}

// AuthService orchestrates signup and signin against the credential store.
type AuthService struct {
	users  UserStoreProvider
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStoreProvider, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignUp creates a new credential record and immediately issues a token for
// it, so signup doubles as a login.
func (s *AuthService) SignUp(ctx context.Context, username, password, email string) (string, error) {
	user, err := s.users.CreateUser(ctx, username, password, email)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID)
}

// SignIn verifies a username/password pair and issues a token. An unknown
// username and a wrong password both fail with ErrInvalidCredentials so the
// response never reveals which usernames exist.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.users.VerifyPassword(user, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}
