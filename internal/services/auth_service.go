package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cerealwarehouse/backend/internal/auth"
	"github.com/cerealwarehouse/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seed credentials for the built-in admin account.
const (
	adminUsername = "admin"
	adminEmail    = "admin@admin.com"
	adminPassword = "admin"
)

// UserRepository is the interface that wraps methods for users table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by email.
	//
	// If no user with such email exists, models.ErrUserNotFound is returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type authService struct {
	userRepo       UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Register creates a new user account with the fixed "User" role.
// Email uniqueness is enforced by a pre-check, matching the schema which
// carries no unique constraint.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if email == "" || username == "" || req.Password == "" {
		return fmt.Errorf("username, email and password are required")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return models.ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleUser,
	}

	return s.userRepo.Create(ctx, user)
}

// Login authenticates a user and returns a signed access token.
// An unknown email and a wrong password are distinct, distinguishable failures:
// models.ErrUserNotFound and models.ErrInvalidCredentials respectively.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" {
		return "", fmt.Errorf("email cannot be empty")
	}
	if req.Password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	// Verify password with the constant-time comparison primitive
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Error(err), zap.Int("userId", user.ID))
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return token, nil
}

// SeedAdmin creates the built-in admin account if it does not exist yet.
// Called once at startup; safe to call again.
func (s *authService) SeedAdmin(ctx context.Context) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: string(passwordHash),
		Role:         models.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("seeded admin user", zap.String("email", adminEmail))
	return nil
}
