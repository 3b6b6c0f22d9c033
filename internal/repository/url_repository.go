package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/database"
	"snaplink-be/internal/entities"
)

const shortKeyConstraint = "urls_short_key_key"

//go:generate mockgen -source=url_repository.go -destination=mocks/mock_url_repository.go -package=mocks

// URLRepository defines the interface for short link database operations
type URLRepository interface {
	Create(ctx context.Context, targetURL, shortKey string, ownerID int64) (*entities.URL, error)
	FindByShortKey(ctx context.Context, shortKey string) (*entities.URL, error)
	FindByShortKeyAndOwner(ctx context.Context, shortKey string, ownerID int64) (*entities.URL, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*entities.URL, error)
	IncrementClicks(ctx context.Context, shortKey string) error
}

type urlRepository struct {
	db database.DBTX
}

// NewURLRepository creates a new URL repository
func NewURLRepository(db database.DBTX) URLRepository {
	return &urlRepository{db: db}
}

// Create inserts a new short link with zero clicks. A taken key yields
// apperrors.ErrDuplicateKey so the caller can retry with a fresh one.
func (r *urlRepository) Create(ctx context.Context, targetURL, shortKey string, ownerID int64) (*entities.URL, error) {
	query := `
		INSERT INTO urls (target_url, short_key, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, target_url, short_key, owner_id, clicks, created_at
	`

	url, err := scanURL(r.db.QueryRowContext(ctx, query, targetURL, shortKey, ownerID))
	if err != nil {
		if database.IsUniqueViolation(err, shortKeyConstraint) {
			return nil, fmt.Errorf("key %q: %w", shortKey, apperrors.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	return url, nil
}

// FindByShortKey finds a link by its short key
func (r *urlRepository) FindByShortKey(ctx context.Context, shortKey string) (*entities.URL, error) {
	query := `
		SELECT id, target_url, short_key, owner_id, clicks, created_at
		FROM urls
		WHERE short_key = $1
	`

	url, err := scanURL(r.db.QueryRowContext(ctx, query, shortKey))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("key %q: %w", shortKey, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}

	return url, nil
}

// FindByShortKeyAndOwner finds a link only if it belongs to ownerID
func (r *urlRepository) FindByShortKeyAndOwner(ctx context.Context, shortKey string, ownerID int64) (*entities.URL, error) {
	query := `
		SELECT id, target_url, short_key, owner_id, clicks, created_at
		FROM urls
		WHERE short_key = $1 AND owner_id = $2
	`

	url, err := scanURL(r.db.QueryRowContext(ctx, query, shortKey, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("key %q: %w", shortKey, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}

	return url, nil
}

// FindByOwner retrieves all links of a user, newest first
func (r *urlRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entities.URL, error) {
	query := `
		SELECT id, target_url, short_key, owner_id, clicks, created_at
		FROM urls
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get URLs: %w", err)
	}
	defer rows.Close()

	urls := []*entities.URL{}
	for rows.Next() {
		url, err := scanURL(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan URL: %w", err)
		}
		urls = append(urls, url)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating URLs: %w", err)
	}

	return urls, nil
}

// IncrementClicks adds one click in a single UPDATE so concurrent redirects
// never lose an increment.
func (r *urlRepository) IncrementClicks(ctx context.Context, shortKey string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE urls
		SET clicks = clicks + 1
		WHERE short_key = $1
	`, shortKey)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("key %q: %w", shortKey, apperrors.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanURL(row rowScanner) (*entities.URL, error) {
	var url entities.URL
	err := row.Scan(
		&url.ID,
		&url.TargetURL,
		&url.ShortKey,
		&url.OwnerID,
		&url.Clicks,
		&url.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &url, nil
}
