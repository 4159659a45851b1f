package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/ledgerpad/ledgerpad_app/internal/apperrors"
	"github.com/ledgerpad/ledgerpad_app/internal/core/domain"
	portsrepo "github.com/ledgerpad/ledgerpad_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
	"github.com/ledgerpad/ledgerpad_app/internal/middleware"
	"github.com/ledgerpad/ledgerpad_app/internal/utils"
)

// ErrInvalidCredentials is returned when email or password do not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthConfig holds the settings the auth service needs.
type AuthConfig struct {
	JWTSecret          string
	JWTExpiry          time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type authService struct {
	userRepo portsrepo.UserRepository
	cfg      AuthConfig
	oauth    *oauth2.Config
}

// NewAuthService creates the auth service.
func NewAuthService(userRepo portsrepo.UserRepository, cfg AuthConfig) portssvc.AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
	}
}

// Register creates a local-credentials user.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	logger.Info("user registered", "user_id", user.UserID)
	return user, nil
}

// Login verifies local credentials and issues a session token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("login rejected", "user_id", user.UserID)
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiry)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// LoginWithGoogle verifies a Google identity and issues a session token,
// provisioning the user on first login. Accepts either a client-side ID
// token or an authorization code from the redirect flow.
func (s *authService) LoginWithGoogle(ctx context.Context, req dto.GoogleLoginRequest) (string, domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rawIDToken := req.IDToken
	if rawIDToken == "" {
		if req.Code == "" {
			return "", domain.User{}, fmt.Errorf("%w: idToken or code is required", apperrors.ErrValidation)
		}
		tok, err := s.oauth.Exchange(ctx, req.Code)
		if err != nil {
			return "", domain.User{}, fmt.Errorf("%w: code exchange failed", apperrors.ErrUnauthorized)
		}
		extracted, ok := tok.Extra("id_token").(string)
		if !ok || extracted == "" {
			return "", domain.User{}, fmt.Errorf("%w: token response carried no identity", apperrors.ErrUnauthorized)
		}
		rawIDToken = extracted
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		logger.Warn("google token validation failed", "error", err)
		return "", domain.User{}, fmt.Errorf("%w: invalid google token", apperrors.ErrUnauthorized)
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", domain.User{}, fmt.Errorf("%w: google token carried no email", apperrors.ErrUnauthorized)
	}
	email = strings.ToLower(email)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return "", domain.User{}, err
		}
		now := time.Now().UTC()
		user = domain.User{
			UserID:       uuid.NewString(),
			Name:         name,
			Email:        email,
			AuthProvider: domain.ProviderGoogle,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     "system",
				LastUpdatedAt: now,
				LastUpdatedBy: "system",
			},
		}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return "", domain.User{}, err
		}
		logger.Info("user provisioned from google login", "user_id", user.UserID)
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiry)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}
