package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-cli/internal/models"

	"github.com/lib/pq"
)

// CreateUser inserts a new account. The username unique constraint maps to
// ErrDuplicateUsername.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := s.db.GetContext(ctx, &user.ID, query,
		user.Username, user.PasswordHash, user.Role)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByCredentials looks up a user by username and password hash.
func (s *Store) GetUserByCredentials(ctx context.Context, username, passwordHash string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user,
		"SELECT * FROM users WHERE username = $1 AND password = $2",
		username, passwordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user,
		"SELECT * FROM users WHERE username = $1", username)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
