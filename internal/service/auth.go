package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"shop-cli/internal/models"
	"shop-cli/internal/store"
	"shop-cli/internal/util"

	"go.uber.org/zap"
)

// UserStore is the account persistence the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByCredentials(ctx context.Context, username, passwordHash string) (*models.User, error)
}

// AuthService handles registration and login
type AuthService struct {
	users  UserStore
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{
		users:  users,
		logger: util.GetLogger(),
	}
}

// HashPassword derives the stored form of a password. Deterministic and
// unsalted, so lookup by (username, hash) stays a plain equality match.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account with the given role.
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: HashPassword(password),
		Role:         role,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("username", user.Username),
		zap.String("role", user.Role))
	return user, nil
}

// Authenticate checks a username/password pair and returns the account on
// a match.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetUserByCredentials(ctx, strings.TrimSpace(username), HashPassword(password))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrAuthentication
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
