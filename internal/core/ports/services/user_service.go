package services

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// UserService manages user profiles.
type UserService interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (domain.User, error)
	// ListUsers returns all active users.
	ListUsers(ctx context.Context) ([]domain.User, error)
	// UpdateUser amends a user's profile.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updatedBy string) (domain.User, error)
	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string, deletedBy string) error
}
