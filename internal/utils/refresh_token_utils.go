package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// refreshTokenBytes gives a 64-character hex token.
const refreshTokenBytes = 32

// HashRefreshToken generates a SHA256 hash of a refresh token. Only the hash is persisted.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// NewRefreshToken returns a fresh opaque token and its hash.
func NewRefreshToken() (token string, hash string, err error) {
	token, err = GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		return "", "", err
	}
	return token, HashRefreshToken(token), nil
}
