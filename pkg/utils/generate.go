package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a random v4 UUID string.
func GenerateRequestID() string {
	return uuid.New().String()
}

// IsRequestID reports whether s looks like an id we would have generated.
// Upstream ids that fail this check are replaced.
func IsRequestID(s string) bool {
	if len(s) == 0 || len(s) > 64 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
