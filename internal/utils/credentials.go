package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var errNonPositiveLength = errors.New("random secret length must be positive")

// HashPassword bcrypt-hashes a user password. Passwords longer than bcrypt's
// 72-byte input limit are rejected rather than silently truncated.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches a stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateSecureRandomString reads n random bytes and returns them hex-encoded (2n characters).
// Used for refresh tokens, OAuth state and the unusable password of Google-only users.
func GenerateSecureRandomString(n int) (string, error) {
	if n <= 0 {
		return "", errNonPositiveLength
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
