package services

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/tward/kennel/internal/models"
)

// UserStoreProvider defines the interface for the credential store.
type UserStoreProvider interface {
	CreateUser(ctx context.Context, username, password, email string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	VerifyPassword(user models.User, password string) bool
}

// UserService persists and validates user credentials.
type UserService struct {
	db *sql.DB

	// bcrypt is deliberately slow and CPU-bound; bound the number of
	// concurrent hashes so a burst of signups cannot monopolize the scheduler.
	hashSem *semaphore.Weighted
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{
		db:      db,
		hashSem: semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}
}

// CreateUser creates a new user, hashing their password. The plaintext is
// hashed exactly once, before any row is written, so a hashing failure leaves
// no partial record behind.
func (s *UserService) CreateUser(ctx context.Context, username, password, email string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, ErrValidation
	}

	hashedPassword, err := s.hashPassword(ctx, password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO users(id, username, email, password_hash) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, user.ID, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		// The unique index on username is the arbiter for duplicate-signup
		// races; two concurrent inserts cannot both succeed.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, ErrDuplicateUsername
		}
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// GetUserByUsername retrieves a single user by username, including the
// password hash so the caller can verify credentials.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, "SELECT id, username, email, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// VerifyPassword checks a candidate password against the stored hash. Never
// compare hash bytes directly; bcrypt's comparison handles the salt.
func (s *UserService) VerifyPassword(user models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (s *UserService) hashPassword(ctx context.Context, password string) (string, error) {
	if err := s.hashSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.hashSem.Release(1)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
