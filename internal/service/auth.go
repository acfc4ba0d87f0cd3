// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/slipcheck/platform/internal/auth"
	"github.com/slipcheck/platform/internal/config"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
)

// AuthService owns the identity lifecycle: account creation and credential
// verification. Company membership is out of its hands entirely; a fresh
// account is unbound until it creates or joins a company.
type AuthService struct {
	userRepo     repository.UserRepositoryIface
	hasher       *auth.PasswordHasher
	tokenManager *auth.TokenManager
	config       *config.Config
	validate     *validator.Validate
}

func NewAuthService(
	userRepo repository.UserRepositoryIface,
	hasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	config *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenManager: tokenManager,
		config:       config,
		validate:     validator.New(),
	}
}

type SignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup registers a new user with a trialing subscription and issues a
// session token.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:              strings.ToLower(strings.TrimSpace(input.Email)),
		Name:               strings.TrimSpace(input.Name),
		PasswordHash:       hashed,
		SubscriptionStatus: model.SubscriptionTrialing,
		TrialEndsAt:        time.Now().UTC().AddDate(0, 0, s.config.Tenancy.UserTrialDays),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{User: user, Token: token}, nil
}

// Login verifies credentials and issues a session token. Lookup misses and
// bad passwords produce the same error so account existence is not leaked.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthOutput{User: user, Token: token}, nil
}
