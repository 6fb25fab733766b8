package common

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// ContentHash computes the SHA256 hash of content and returns a hex string.
// This is the authoritative change signal for downloaded documents.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// Timestamp returns the current time formatted the way all persisted
// artifacts record it.
func Timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// String returns a pointer to s. Optional record fields are pointers so that
// "never observed" stays distinct from "observed as empty".
func String(s string) *string {
	return &s
}

// Int64 returns a pointer to n.
func Int64(n int64) *int64 {
	return &n
}
