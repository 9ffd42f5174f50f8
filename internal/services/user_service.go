package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/merchops/sku-dash-be/internal/apperr"
	"github.com/merchops/sku-dash-be/internal/models"
	"github.com/merchops/sku-dash-be/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(username, email, password, role string) (models.User, error)
	Authenticate(username, password string) (models.User, error)
}

// UserService provides registration and credential verification on top of
// the in-memory user store.
type UserService struct {
	users *store.Users
}

// NewUserService creates a new UserService.
func NewUserService(users *store.Users) *UserService {
	return &UserService{users: users}
}

// Register creates a new user with a hashed password. Fails with a conflict
// if the username or email is already taken.
func (s *UserService) Register(username, email, password, role string) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		Role:         role,
		PasswordHash: string(hashed),
	}

	if !s.users.Insert(user) {
		return models.User{}, fmt.Errorf("username or email already registered: %w", apperr.ErrConflict)
	}

	return user.PublicView(), nil
}

// Authenticate verifies a user's credentials. Both an unknown username and a
// wrong password produce the same unauthorized error.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	user, found := s.users.GetByUsername(username)
	if !found {
		return models.User{}, fmt.Errorf("incorrect username or password: %w", apperr.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("incorrect username or password: %w", apperr.ErrUnauthorized)
	}

	return user.PublicView(), nil
}
