// Package keygen produces random URL-safe short keys.
package keygen

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet is the URL-safe base64 alphabet; 64 symbols give 6 bits per character.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const (
	DefaultLength = 7
	MinLength     = 5
)

// Keys that would shadow a fixed route. Compared case-insensitively.
var reservedKeys = map[string]bool{
	"admin":    true,
	"api":      true,
	"health":   true,
	"login":    true,
	"logout":   true,
	"qrcode":   true,
	"register": true,
	"shorten":  true,
	"static":   true,
	"token":    true,
	"url":      true,
	"urls":     true,
}

// Generator creates candidate short keys.
type Generator interface {
	Generate(length int) (string, error)
}

type randomGenerator struct{}

// NewRandomGenerator returns a Generator backed by crypto/rand.
func NewRandomGenerator() Generator {
	return randomGenerator{}
}

// Generate returns length characters drawn uniformly from Alphabet. Lengths
// below MinLength are raised to it.
func (randomGenerator) Generate(length int) (string, error) {
	if length < MinLength {
		length = MinLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	// len(Alphabet) is 64, so the low six bits index it without bias.
	for i, b := range buf {
		buf[i] = Alphabet[b&63]
	}
	return string(buf), nil
}

// IsReserved reports whether key collides with a fixed route.
func IsReserved(key string) bool {
	return reservedKeys[strings.ToLower(key)]
}
