package server

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/entities"
)

// memoryStore backs both repositories in router tests.
type memoryStore struct {
	mu     sync.Mutex
	users  map[string]*entities.User
	urls   map[string]*entities.URL
	nextID int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[string]*entities.User),
		urls:  make(map[string]*entities.URL),
	}
}

type memoryUsers struct{ *memoryStore }

func (s memoryUsers) Create(_ context.Context, username, passwordHash string) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrConflict)
	}
	s.nextID++
	u := &entities.User{ID: s.nextID, Username: username, PasswordHash: passwordHash}
	s.users[username] = u
	cp := *u
	return &cp, nil
}

func (s memoryUsers) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

type memoryURLs struct{ *memoryStore }

func (s memoryURLs) Create(_ context.Context, targetURL, shortKey string, ownerID int64) (*entities.URL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.urls[shortKey]; ok {
		return nil, fmt.Errorf("key %q: %w", shortKey, apperrors.ErrDuplicateKey)
	}
	s.nextID++
	u := &entities.URL{ID: s.nextID, TargetURL: targetURL, ShortKey: shortKey, OwnerID: ownerID, CreatedAt: time.Now()}
	s.urls[shortKey] = u
	cp := *u
	return &cp, nil
}

func (s memoryURLs) FindByShortKey(_ context.Context, shortKey string) (*entities.URL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.urls[shortKey]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", shortKey, apperrors.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (s memoryURLs) FindByShortKeyAndOwner(ctx context.Context, shortKey string, ownerID int64) (*entities.URL, error) {
	u, err := s.FindByShortKey(ctx, shortKey)
	if err != nil {
		return nil, err
	}
	if u.OwnerID != ownerID {
		return nil, fmt.Errorf("key %q: %w", shortKey, apperrors.ErrNotFound)
	}
	return u, nil
}

func (s memoryURLs) FindByOwner(_ context.Context, ownerID int64) ([]*entities.URL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*entities.URL{}
	for _, u := range s.urls {
		if u.OwnerID == ownerID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s memoryURLs) IncrementClicks(_ context.Context, shortKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.urls[shortKey]
	if !ok {
		return fmt.Errorf("key %q: %w", shortKey, apperrors.ErrNotFound)
	}
	u.Clicks++
	return nil
}
