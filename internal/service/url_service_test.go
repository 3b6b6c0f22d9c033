package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/entities"
	"snaplink-be/internal/models"
	"snaplink-be/internal/repository/mocks"
)

// scriptedKeys hands out keys in order and records the requested lengths.
type scriptedKeys struct {
	keys    []string
	lengths []int
}

func (g *scriptedKeys) Generate(length int) (string, error) {
	g.lengths = append(g.lengths, length)
	if len(g.keys) == 0 {
		return "", errors.New("out of keys")
	}
	key := g.keys[0]
	g.keys = g.keys[1:]
	return key, nil
}

func newURLServiceWithMock(t *testing.T, keys *scriptedKeys, maxAttempts int) (URLService, *mocks.MockURLRepository) {
	t.Helper()
	repo := mocks.NewMockURLRepository(gomock.NewController(t))
	cfg := URLServiceConfig{KeyLength: 7, MaxKeyAttempts: maxAttempts, QueryTimeout: time.Second}
	return NewURLService(repo, keys, cfg, discardLogger()), repo
}

func keyNotFound(key string) error {
	return fmt.Errorf("key %q: %w", key, apperrors.ErrNotFound)
}

var alice = &entities.User{ID: 1, Username: "alice"}

func TestURLService_Shorten(t *testing.T) {
	ctx := context.Background()
	req := &models.ShortenRequest{TargetURL: "https://example.com"}

	t.Run("First Key Free", func(t *testing.T) {
		keys := &scriptedKeys{keys: []string{"aaaaaaa"}}
		svc, repo := newURLServiceWithMock(t, keys, 10)

		repo.EXPECT().FindByShortKey(gomock.Any(), "aaaaaaa").Return(nil, keyNotFound("aaaaaaa"))
		repo.EXPECT().Create(gomock.Any(), "https://example.com", "aaaaaaa", int64(1)).
			Return(&entities.URL{ID: 1, TargetURL: "https://example.com", ShortKey: "aaaaaaa", OwnerID: 1}, nil)

		resp, err := svc.Shorten(ctx, alice, req)
		require.NoError(t, err)
		assert.Equal(t, &models.ShortLinkResponse{
			ID: 1, TargetURL: "https://example.com", ShortKey: "aaaaaaa", OwnerID: 1, Clicks: 0,
		}, resp)
		assert.Equal(t, []int{7}, keys.lengths)
	})

	t.Run("Existing Key Is Regenerated", func(t *testing.T) {
		keys := &scriptedKeys{keys: []string{"taken00", "free000"}}
		svc, repo := newURLServiceWithMock(t, keys, 10)

		gomock.InOrder(
			repo.EXPECT().FindByShortKey(gomock.Any(), "taken00").Return(&entities.URL{ShortKey: "taken00"}, nil),
			repo.EXPECT().FindByShortKey(gomock.Any(), "free000").Return(nil, keyNotFound("free000")),
			repo.EXPECT().Create(gomock.Any(), "https://example.com", "free000", int64(1)).
				Return(&entities.URL{ID: 2, ShortKey: "free000", OwnerID: 1}, nil),
		)

		resp, err := svc.Shorten(ctx, alice, req)
		require.NoError(t, err)
		assert.Equal(t, "free000", resp.ShortKey)
	})

	t.Run("Insert Race Is Retried", func(t *testing.T) {
		keys := &scriptedKeys{keys: []string{"raced00", "free000"}}
		svc, repo := newURLServiceWithMock(t, keys, 10)

		gomock.InOrder(
			repo.EXPECT().FindByShortKey(gomock.Any(), "raced00").Return(nil, keyNotFound("raced00")),
			repo.EXPECT().Create(gomock.Any(), "https://example.com", "raced00", int64(1)).
				Return(nil, fmt.Errorf("key %q: %w", "raced00", apperrors.ErrDuplicateKey)),
			repo.EXPECT().FindByShortKey(gomock.Any(), "free000").Return(nil, keyNotFound("free000")),
			repo.EXPECT().Create(gomock.Any(), "https://example.com", "free000", int64(1)).
				Return(&entities.URL{ID: 3, ShortKey: "free000", OwnerID: 1}, nil),
		)

		resp, err := svc.Shorten(ctx, alice, req)
		require.NoError(t, err)
		assert.Equal(t, "free000", resp.ShortKey)
	})

	t.Run("Reserved Key Skipped", func(t *testing.T) {
		keys := &scriptedKeys{keys: []string{"shorten", "free000"}}
		svc, repo := newURLServiceWithMock(t, keys, 10)

		repo.EXPECT().FindByShortKey(gomock.Any(), "free000").Return(nil, keyNotFound("free000"))
		repo.EXPECT().Create(gomock.Any(), "https://example.com", "free000", int64(1)).
			Return(&entities.URL{ID: 4, ShortKey: "free000", OwnerID: 1}, nil)

		resp, err := svc.Shorten(ctx, alice, req)
		require.NoError(t, err)
		assert.Equal(t, "free000", resp.ShortKey)
	})

	t.Run("Bounded Attempts", func(t *testing.T) {
		keys := &scriptedKeys{keys: []string{"k000001", "k000002", "k000003", "k000004"}}
		svc, repo := newURLServiceWithMock(t, keys, 3)

		repo.EXPECT().FindByShortKey(gomock.Any(), gomock.Any()).
			Return(&entities.URL{ShortKey: "taken"}, nil).Times(3)

		_, err := svc.Shorten(ctx, alice, req)
		assert.ErrorIs(t, err, apperrors.ErrKeyExhausted)
		assert.Len(t, keys.keys, 1)
	})

	t.Run("Store Failure Stops The Loop", func(t *testing.T) {
		keys := &scriptedKeys{keys: []string{"aaaaaaa", "bbbbbbb"}}
		svc, repo := newURLServiceWithMock(t, keys, 10)

		repo.EXPECT().FindByShortKey(gomock.Any(), "aaaaaaa").Return(nil, errors.New("db down"))

		_, err := svc.Shorten(ctx, alice, req)
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrKeyExhausted)
	})

	t.Run("Generator Failure", func(t *testing.T) {
		svc, _ := newURLServiceWithMock(t, &scriptedKeys{}, 10)

		_, err := svc.Shorten(ctx, alice, req)
		assert.EqualError(t, err, "out of keys")
	})

	t.Run("Missing Owner", func(t *testing.T) {
		svc, _ := newURLServiceWithMock(t, &scriptedKeys{}, 10)

		_, err := svc.Shorten(ctx, nil, req)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Empty Target", func(t *testing.T) {
		svc, _ := newURLServiceWithMock(t, &scriptedKeys{}, 10)

		_, err := svc.Shorten(ctx, alice, &models.ShortenRequest{})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestURLService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Known Key", func(t *testing.T) {
		svc, repo := newURLServiceWithMock(t, &scriptedKeys{}, 10)

		gomock.InOrder(
			repo.EXPECT().FindByShortKey(gomock.Any(), "abcDE12").
				Return(&entities.URL{ShortKey: "abcDE12", TargetURL: "https://example.com"}, nil),
			repo.EXPECT().IncrementClicks(gomock.Any(), "abcDE12").Return(nil),
		)

		target, err := svc.Resolve(ctx, "abcDE12")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
	})

	t.Run("Unknown Key Does Not Count", func(t *testing.T) {
		svc, repo := newURLServiceWithMock(t, &scriptedKeys{}, 10)

		repo.EXPECT().FindByShortKey(gomock.Any(), "nope").Return(nil, keyNotFound("nope"))

		_, err := svc.Resolve(ctx, "nope")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Increment Failure", func(t *testing.T) {
		svc, repo := newURLServiceWithMock(t, &scriptedKeys{}, 10)

		repo.EXPECT().FindByShortKey(gomock.Any(), "abcDE12").
			Return(&entities.URL{ShortKey: "abcDE12", TargetURL: "https://example.com"}, nil)
		repo.EXPECT().IncrementClicks(gomock.Any(), "abcDE12").Return(errors.New("db down"))

		_, err := svc.Resolve(ctx, "abcDE12")
		assert.Error(t, err)
	})
}

func TestURLService_Lookup(t *testing.T) {
	svc, repo := newURLServiceWithMock(t, &scriptedKeys{}, 10)

	repo.EXPECT().FindByShortKey(gomock.Any(), "abcDE12").
		Return(&entities.URL{ID: 9, ShortKey: "abcDE12", Clicks: 4}, nil)

	resp, err := svc.Lookup(context.Background(), "abcDE12")
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Clicks)
}

func TestURLService_GetUserLinks(t *testing.T) {
	svc, repo := newURLServiceWithMock(t, &scriptedKeys{}, 10)

	repo.EXPECT().FindByOwner(gomock.Any(), int64(1)).Return([]*entities.URL{
		{ID: 2, ShortKey: "bbbbbbb", OwnerID: 1, Clicks: 1},
		{ID: 1, ShortKey: "aaaaaaa", OwnerID: 1},
	}, nil)

	links, err := svc.GetUserLinks(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "bbbbbbb", links[0].ShortKey)
	assert.Equal(t, int64(1), links[0].Clicks)
}

func TestURLService_GetUserLink(t *testing.T) {
	svc, repo := newURLServiceWithMock(t, &scriptedKeys{}, 10)

	repo.EXPECT().FindByShortKeyAndOwner(gomock.Any(), "abcDE12", int64(2)).Return(nil, keyNotFound("abcDE12"))

	_, err := svc.GetUserLink(context.Background(), "abcDE12", 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
