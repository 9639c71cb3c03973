package service

import (
	"context"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// UserService exposes public user reads.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// ListUsers returns every user, authored posts included. No pagination,
// full scan.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
