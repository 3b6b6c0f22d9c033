package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/database"
	"snaplink-be/internal/entities"
)

const usernameConstraint = "users_username_key"

//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}

type userRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. A taken username yields apperrors.ErrConflict.
func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (username, hashed_password)
		VALUES ($1, $2)
		RETURNING id, username, hashed_password
	`

	var user entities.User
	err := r.db.QueryRowContext(ctx, query, username, passwordHash).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
	)

	if err != nil {
		if database.IsUniqueViolation(err, usernameConstraint) {
			return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByUsername finds a user by exact (case-sensitive) username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `
		SELECT id, username, hashed_password
		FROM users
		WHERE username = $1
	`

	var user entities.User
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
