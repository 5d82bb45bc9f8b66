package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/furnworld/storefront/internal/auth"
	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/internal/repository"
	apperrors "github.com/furnworld/storefront/pkg/errors"
	"github.com/furnworld/storefront/pkg/middleware"
)

// LoginInput holds the parameters for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the authenticated user and their tokens.
type LoginResult struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	SessionToken string       `json:"session_token"`
}

// AuthService implements login, logout, and session lookup. Credential
// checking is delegated to a Verifier so the account source can change
// without touching this layer.
type AuthService struct {
	verifier auth.Verifier
	jwt      *auth.JWTManager
	sessions repository.SessionRepository
	logger   *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(verifier auth.Verifier, jwt *auth.JWTManager, sessions repository.SessionRepository, logger *slog.Logger) *AuthService {
	return &AuthService{
		verifier: verifier,
		jwt:      jwt,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies the credentials, opens a session, and issues an access token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, apperrors.InvalidInput("email and password are required")
	}

	user, err := s.verifier.Verify(ctx, input.Email, input.Password)
	if err != nil {
		s.logger.WarnContext(ctx, "login rejected",
			slog.String("email", input.Email),
		)
		return nil, err
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	sessionToken := uuid.NewString()
	if err := s.sessions.Save(ctx, sessionToken, user); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role),
	)

	return &LoginResult{
		User:         user,
		AccessToken:  accessToken,
		SessionToken: sessionToken,
	}, nil
}

// Logout closes the session. An unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return apperrors.InvalidInput("session token is required")
	}

	if err := s.sessions.Delete(ctx, sessionToken); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged out")
	return nil
}

// CurrentUser resolves a session token to the logged-in user.
func (s *AuthService) CurrentUser(ctx context.Context, sessionToken string) (*domain.User, error) {
	if sessionToken == "" {
		return nil, apperrors.Unauthorized("no session")
	}

	user, err := s.sessions.Get(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("session expired")
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return user, nil
}

// ValidateToken checks a JWT access token and returns the claims in the
// shape the auth middleware expects.
func (s *AuthService) ValidateToken(tokenString string) (*middleware.Claims, error) {
	claims, err := s.jwt.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token")
	}
	return &middleware.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
