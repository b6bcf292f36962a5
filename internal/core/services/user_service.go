package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hisabiq/hisab_backend/internal/apperrors"
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/middleware"
	"github.com/hisabiq/hisab_backend/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, name, email, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if existing, err := s.userRepo.FindUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		AuthProvider: "local",
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	logger.Info("User created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// AuthenticateUser verifies the password for a local user. Lookup failures
// and bad passwords return the same error so callers cannot probe for
// registered emails.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive || user.AuthProvider != "local" {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// FindOrCreateGoogleUser resolves the user for a verified Google identity,
// creating one on first sign-in.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, email, name string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		if !user.IsActive {
			return nil, fmt.Errorf("%w: user account is disabled", apperrors.ErrForbidden)
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	now := time.Now().UTC()
	newUser := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		AuthProvider: "google",
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	newUser.CreatedBy = newUser.UserID
	newUser.LastUpdatedBy = newUser.UserID

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		logger.Error("Failed to create google user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	logger.Info("Google user created", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
