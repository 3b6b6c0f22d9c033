package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/entities"
	"snaplink-be/internal/jwt"
	"snaplink-be/internal/models"
	"snaplink-be/internal/password"
	"snaplink-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	jwt.TokenIssuer
	jwt.TokenVerifier
}

type authService struct {
	userRepo     repository.UserRepository
	hasher       password.Hasher
	tokens       TokenService
	logger       *slog.Logger
	queryTimeout time.Duration

	// Hash compared against when the user does not exist, so unknown users
	// cost as much as wrong passwords.
	dummyHashOnce sync.Once
	dummyHash     string
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	hasher password.Hasher,
	tokens TokenService,
	logger *slog.Logger,
	queryTimeout time.Duration,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	ctx, cancel := withTimeout(ctx, s.queryTimeout)
	defer cancel()

	// Check if user already exists; the unique constraint still guards the insert.
	_, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, fmt.Errorf("register %q: %w", req.Username, apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, req.Username, hashedPassword)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)

	return models.NewUserResponse(user), nil
}

// Login checks credentials and returns a bearer token. Unknown users and wrong
// passwords produce the same apperrors.ErrUnauthorized.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	ctx, cancel := withTimeout(ctx, s.queryTimeout)
	defer cancel()

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.hasher.Verify(req.Password, s.fallbackHash())
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.logger.InfoContext(ctx, "login rejected", "username", req.Username)
		return nil, apperrors.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Authenticate verifies a bearer token and resolves its subject to a user.
func (s *authService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	username, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}

	ctx, cancel := withTimeout(ctx, s.queryTimeout)
	defer cancel()

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: token subject %q no longer exists", apperrors.ErrUnauthorized, username)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return user, nil
}

func (s *authService) fallbackHash() string {
	s.dummyHashOnce.Do(func() {
		hash, err := s.hasher.Hash("snaplink-placeholder-password")
		if err != nil {
			s.logger.Warn("failed to prepare placeholder hash", "error", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
