package services

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/tward/kennel/internal/models"
)

// DogServiceProvider defines the interface for owner-scoped dog records.
// Every operation is scoped to ownerID; a record belonging to another user
// behaves as if it does not exist.
type DogServiceProvider interface {
	CreateDog(ctx context.Context, ownerID, roast, dog string) (models.Dog, error)
	ListDogs(ctx context.Context, ownerID string) ([]models.Dog, error)
	GetDog(ctx context.Context, ownerID, id string) (models.Dog, error)
	UpdateDog(ctx context.Context, ownerID, id, roast, dog string) (models.Dog, error)
}

// DogService provides CRUD over dog records.
type DogService struct {
	db *sql.DB
}

// NewDogService creates a new DogService.
func NewDogService(db *sql.DB) *DogService {
	return &DogService{db: db}
}

// CreateDog inserts a new dog record owned by ownerID.
func (s *DogService) CreateDog(ctx context.Context, ownerID, roast, dog string) (models.Dog, error) {
	id := uuid.New().String()

	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO dogs(id, roast, dog, user_id) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.Dog{}, err
	}
	defer stmt.Close()

	if _, err = stmt.ExecContext(ctx, id, roast, dog, ownerID); err != nil {
		return models.Dog{}, err
	}

	return s.GetDog(ctx, ownerID, id)
}

// ListDogs retrieves all dog records owned by ownerID.
func (s *DogService) ListDogs(ctx context.Context, ownerID string) ([]models.Dog, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, roast, dog, user_id, created_at FROM dogs WHERE user_id = ? ORDER BY created_at", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dogs := []models.Dog{}
	for rows.Next() {
		var d models.Dog
		if err := rows.Scan(&d.ID, &d.Roast, &d.Dog, &d.UserID, &d.CreatedAt); err != nil {
			return nil, err
		}
		dogs = append(dogs, d)
	}
	return dogs, rows.Err()
}

// GetDog retrieves a single dog record by ID within the owner's scope.
func (s *DogService) GetDog(ctx context.Context, ownerID, id string) (models.Dog, error) {
	var d models.Dog
	row := s.db.QueryRowContext(ctx, "SELECT id, roast, dog, user_id, created_at FROM dogs WHERE id = ? AND user_id = ?", id, ownerID)
	err := row.Scan(&d.ID, &d.Roast, &d.Dog, &d.UserID, &d.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Dog{}, ErrDogNotFound
		}
		return models.Dog{}, err
	}
	return d, nil
}

// UpdateDog updates a dog record within the owner's scope.
func (s *DogService) UpdateDog(ctx context.Context, ownerID, id, roast, dog string) (models.Dog, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE dogs SET roast = ?, dog = ? WHERE id = ? AND user_id = ?", roast, dog, id, ownerID)
	if err != nil {
		return models.Dog{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Dog{}, err
	}
	if affected == 0 {
		return models.Dog{}, ErrDogNotFound
	}

	return s.GetDog(ctx, ownerID, id)
}
