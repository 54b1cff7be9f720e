package services

import (
	"context"
	"errors"
	"time"

	"github.com/anupamsoni/mfapi/internal/models"
	"github.com/anupamsoni/mfapi/internal/store"
)

// UserService handles user records. There is no credential handling; users
// are keyed by email.
type UserService struct {
	users store.Users
}

func NewUserService(users store.Users) *UserService {
	return &UserService{users: users}
}

// CreateUser inserts a new user, or returns the existing record when the
// email is already registered. The flag reports whether a new user was
// created.
func (s *UserService) CreateUser(ctx context.Context, name, email string, picture, phoneNumber *string) (*models.User, bool, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	now := time.Now().UTC()
	user := &models.User{
		Name:        name,
		Email:       email,
		Picture:     picture,
		PhoneNumber: phoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, upd store.UserUpdate) (*models.User, error) {
	return s.users.Update(ctx, id, upd)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}
