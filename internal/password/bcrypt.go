// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"snaplink-be/internal/apperrors"
)

// MaxLength is the number of password bytes bcrypt accepts.
const MaxLength = 72

// ErrTooLong is returned by Hash for passwords over MaxLength bytes.
var ErrTooLong = fmt.Errorf("%w: password must be at most %d bytes", apperrors.ErrValidation, MaxLength)

// Hasher turns plaintext passwords into salted one-way hashes.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a Hasher using the given bcrypt cost. Out of range
// costs fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash returns a bcrypt hash with a fresh random salt embedded in it.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxLength {
		return "", ErrTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. A malformed hash is a mismatch.
func (h *bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
