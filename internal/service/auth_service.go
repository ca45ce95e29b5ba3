package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fmontiron/portfolio-api/internal/dto"
	"github.com/fmontiron/portfolio-api/internal/models"
	"github.com/fmontiron/portfolio-api/internal/session"
	appErrors "github.com/fmontiron/portfolio-api/pkg/errors"
)

type adminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id int64) (*models.AdminUser, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// AuthService authenticates the admin account and manages its sessions.
type AuthService struct {
	repo      adminRepository
	sessions  session.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo adminRepository, sessions session.Store, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, sessions: sessions, validator: validate, logger: logger}
}

// Login verifies credentials and mints a session token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "username and password required")
	}

	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid credentials")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch admin user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid credentials")
	}

	sess, err := s.sessions.Issue(ctx, user.ID, user.Username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}

	s.logger.Info("admin logged in", zap.String("username", user.Username))
	return &dto.LoginResponse{Success: true, Token: sess.Token}, nil
}

// Verify reports whether a token belongs to an active session.
func (s *AuthService) Verify(ctx context.Context, token string) (*dto.VerifyResponse, error) {
	sess, err := s.sessions.Verify(ctx, token)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify session")
	}
	if sess == nil {
		return &dto.VerifyResponse{Valid: false}, nil
	}
	return &dto.VerifyResponse{Valid: true, Username: sess.Username}, nil
}

// Logout revokes a token. Revoking an unknown token still succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke session")
	}
	return nil
}

// ChangePassword rotates the admin password. It requires an active
// session and the correct current password; the new password must be at
// least 8 characters.
func (s *AuthService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	// Session precedence: an unauthenticated caller gets 401 even when the
	// payload is also invalid.
	sess, err := s.sessions.Verify(ctx, req.Token)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify session")
	}
	if sess == nil {
		return appErrors.Clone(appErrors.ErrUnauthorized, "not authenticated")
	}

	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "new password must be at least 8 characters")
	}

	user, err := s.repo.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrUnauthorized, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load admin user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return appErrors.Clone(appErrors.ErrUnauthorized, "current password is incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(newHash)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update password")
	}

	s.logger.Info("admin password changed", zap.String("username", user.Username))
	return nil
}
