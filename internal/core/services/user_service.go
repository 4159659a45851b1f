package services

import (
	"context"
	"time"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
	"github.com/ledgerpad/ledgerpad_app/internal/middleware"
)

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserService {
	return &userService{userRepo: userRepo}
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers returns all active users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// UpdateUser amends a user's profile.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updatedBy string) (domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	user.Touch(updatedBy, time.Now().UTC())
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// DeleteUser soft-deletes a user.
func (s *userService) DeleteUser(ctx context.Context, userID string, deletedBy string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.userRepo.DeleteUser(ctx, userID, deletedBy); err != nil {
		return err
	}
	logger.Info("user deleted", "user_id", userID)
	return nil
}
