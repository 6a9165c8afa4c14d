package service

import (
	"context"
	"strings"

	"englishcard/internal/repository"
)

// UserService maps chat-platform identities to internal users
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetOrCreateUser returns the internal user id, creating the user on first contact.
// Safe to call on every inbound event.
func (s *UserService) GetOrCreateUser(ctx context.Context, externalID int64, displayName string) (int64, error) {
	return s.userRepo.GetOrCreate(ctx, externalID, strings.TrimSpace(displayName))
}
