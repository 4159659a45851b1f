package dto

import (
	"time"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
)

// UpdateUserRequest defines the payload for updating a user's profile.
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
}

// UserResponse defines the API representation of a user.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"authProvider"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListUsersResponse wraps the full user set.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain user to its API representation.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		AuthProvider: string(u.AuthProvider),
		CreatedAt:    u.CreatedAt,
	}
}
