// Package apperrors holds the error kinds shared by the store, services and
// HTTP layer. Callers match them with errors.Is.
package apperrors

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// ErrDuplicateKey is returned by the URL store when a short key is already
	// taken at insert time. The shorten path treats it as "retry".
	ErrDuplicateKey = errors.New("short key already in use")

	// ErrKeyExhausted means no free short key was found within the retry budget.
	ErrKeyExhausted = errors.New("could not generate a unique short key")
)

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err indicates a uniqueness conflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
