package repositories

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// UserReader defines read operations for users.
type UserReader interface {
	// FindUserByID retrieves a user by ID, excluding soft-deleted users.
	FindUserByID(ctx context.Context, userID string) (domain.User, error)
	// FindUserByEmail retrieves a user by email, excluding soft-deleted users.
	FindUserByEmail(ctx context.Context, email string) (domain.User, error)
	// ListUsers returns all non-deleted users ordered by creation time.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	// CreateUser persists a new user.
	// Returns apperrors.ErrDuplicate if the email is taken.
	CreateUser(ctx context.Context, user domain.User) error
	// UpdateUser persists profile changes.
	UpdateUser(ctx context.Context, user domain.User) error
	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string, deletedBy string) error
}

// UserRepository combines reader and writer capabilities.
type UserRepository interface {
	UserReader
	UserWriter
}
