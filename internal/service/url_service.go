package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/entities"
	"snaplink-be/internal/keygen"
	"snaplink-be/internal/models"
	"snaplink-be/internal/repository"
)

// URLService defines the interface for short link business logic
type URLService interface {
	Shorten(ctx context.Context, owner *entities.User, req *models.ShortenRequest) (*models.ShortLinkResponse, error)
	Resolve(ctx context.Context, shortKey string) (string, error)
	Lookup(ctx context.Context, shortKey string) (*models.ShortLinkResponse, error)
	GetUserLink(ctx context.Context, shortKey string, ownerID int64) (*models.ShortLinkResponse, error)
	GetUserLinks(ctx context.Context, ownerID int64) ([]*models.ShortLinkResponse, error)
}

// URLServiceConfig holds the key generation settings.
type URLServiceConfig struct {
	KeyLength      int
	MaxKeyAttempts int
	QueryTimeout   time.Duration
}

type urlService struct {
	repo   repository.URLRepository
	keys   keygen.Generator
	cfg    URLServiceConfig
	logger *slog.Logger
}

// NewURLService creates a new URL service
func NewURLService(repo repository.URLRepository, keys keygen.Generator, cfg URLServiceConfig, logger *slog.Logger) URLService {
	if cfg.KeyLength <= 0 {
		cfg.KeyLength = keygen.DefaultLength
	}
	if cfg.MaxKeyAttempts <= 0 {
		cfg.MaxKeyAttempts = 10
	}
	return &urlService{
		repo:   repo,
		keys:   keys,
		cfg:    cfg,
		logger: logger,
	}
}

// Shorten stores targetURL under a freshly generated key owned by owner.
func (s *urlService) Shorten(ctx context.Context, owner *entities.User, req *models.ShortenRequest) (*models.ShortLinkResponse, error) {
	if owner == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if req.TargetURL == "" {
		return nil, fmt.Errorf("target_url is required: %w", apperrors.ErrValidation)
	}

	ctx, cancel := withTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	for attempt := 1; attempt <= s.cfg.MaxKeyAttempts; attempt++ {
		shortKey, err := s.keys.Generate(s.cfg.KeyLength)
		if err != nil {
			return nil, err
		}
		if keygen.IsReserved(shortKey) {
			continue
		}

		// Check if generated key is available (should be, but check anyway)
		_, err = s.repo.FindByShortKey(ctx, shortKey)
		if err == nil {
			s.logger.DebugContext(ctx, "short key collision", "attempt", attempt)
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check short key availability: %w", err)
		}

		url, err := s.repo.Create(ctx, req.TargetURL, shortKey, owner.ID)
		if err != nil {
			// Another request inserted the same key between check and insert.
			if errors.Is(err, apperrors.ErrDuplicateKey) {
				s.logger.WarnContext(ctx, "short key taken at insert, retrying", "attempt", attempt)
				continue
			}
			return nil, err
		}

		s.logger.InfoContext(ctx, "short link created", "owner_id", owner.ID, "short_key", url.ShortKey)
		return models.NewShortLinkResponse(url), nil
	}

	return nil, fmt.Errorf("%w after %d attempts", apperrors.ErrKeyExhausted, s.cfg.MaxKeyAttempts)
}

// Resolve returns the target of shortKey and records one click.
func (s *urlService) Resolve(ctx context.Context, shortKey string) (string, error) {
	ctx, cancel := withTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	url, err := s.repo.FindByShortKey(ctx, shortKey)
	if err != nil {
		return "", err
	}

	if err := s.repo.IncrementClicks(ctx, shortKey); err != nil {
		return "", err
	}

	return url.TargetURL, nil
}

// Lookup returns a link without counting a click.
func (s *urlService) Lookup(ctx context.Context, shortKey string) (*models.ShortLinkResponse, error) {
	ctx, cancel := withTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	url, err := s.repo.FindByShortKey(ctx, shortKey)
	if err != nil {
		return nil, err
	}
	return models.NewShortLinkResponse(url), nil
}

// GetUserLink returns one of ownerID's links; other users' links are not found.
func (s *urlService) GetUserLink(ctx context.Context, shortKey string, ownerID int64) (*models.ShortLinkResponse, error) {
	ctx, cancel := withTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	url, err := s.repo.FindByShortKeyAndOwner(ctx, shortKey, ownerID)
	if err != nil {
		return nil, err
	}
	return models.NewShortLinkResponse(url), nil
}

// GetUserLinks retrieves all links of a user
func (s *urlService) GetUserLinks(ctx context.Context, ownerID int64) ([]*models.ShortLinkResponse, error) {
	ctx, cancel := withTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	urls, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ShortLinkResponse, len(urls))
	for i, url := range urls {
		responses[i] = models.NewShortLinkResponse(url)
	}

	return responses, nil
}
