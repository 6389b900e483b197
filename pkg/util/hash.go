package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashEmail returns the hex SHA-256 of a lowercased, trimmed email.
// Used as a cache key so raw addresses never appear in Redis.
func HashEmail(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}
