package services

import (
	"context"

	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// AuthService handles registration and login.
type AuthService interface {
	// Register creates a local-credentials user.
	Register(ctx context.Context, req dto.RegisterRequest) (domain.User, error)
	// Login verifies credentials and returns a signed JWT with the user.
	Login(ctx context.Context, req dto.LoginRequest) (string, domain.User, error)
	// LoginWithGoogle verifies a Google ID token, provisioning the user on
	// first login, and returns a signed JWT with the user.
	LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (string, domain.User, error)
}
