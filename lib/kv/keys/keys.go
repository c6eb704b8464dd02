package keys

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	// MaxKeyLen is the maximum number of characters a key may have.
	MaxKeyLen = 256
)

// --------------------------------------------------------------------------
// Key Validation
// --------------------------------------------------------------------------

// Validate checks a caller-supplied key for structural safety and returns a
// human-readable reason if the key is rejected, or "" if the key is valid.
//
// The rules are applied in order, short-circuiting on the first violation:
//  1. the key must not be blank (empty or whitespace-only)
//  2. the key must not exceed MaxKeyLen characters
//  3. the key must not contain the substring ".." (directory traversal)
//
// Validation is independent of and runs before file-name mapping.
func Validate(key string) string {
	if strings.TrimSpace(key) == "" {
		return "key must not be blank"
	}
	// Characters, not bytes: multibyte keys count by rune.
	if n := utf8.RuneCountInString(key); n > MaxKeyLen {
		return fmt.Sprintf("key must not exceed %d characters (got %d)", MaxKeyLen, n)
	}
	if strings.Contains(key, "..") {
		return "key must not contain '..'"
	}
	return ""
}

// --------------------------------------------------------------------------
// Key to File-Name Mapping
// --------------------------------------------------------------------------

// FileName deterministically derives a filesystem-safe file name for a key.
//
// The name is the fixed-width lowercase hex digest of the SHA-256 hash of
// the key, so equal keys always map to equal names, distinct keys map to
// distinct names with cryptographic collision resistance, and the output
// never contains path separators regardless of the key's content (keys with
// '/', '\', null bytes or non-ASCII text map safely).
//
// The mapping is one-way: original keys cannot be recovered from file names.
//
// Thread-safety: FileName is a pure function and safe for concurrent use.
func FileName(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
