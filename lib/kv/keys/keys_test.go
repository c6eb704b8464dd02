package keys

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"simple key", "auth_token", false},
		{"key with slash", "users/42/profile", false},
		{"key with spaces inside", "a key with spaces", false},
		{"non-ascii key", "schlüssel-日本語", false},
		{"single dot segments", "a.b.c", false},
		{"max length key", strings.Repeat("k", MaxKeyLen), false},
		{"multibyte key under the limit", strings.Repeat("é", 200), false},
		{"multibyte key at the limit", strings.Repeat("日", MaxKeyLen), false},
		{"multibyte key over the limit", strings.Repeat("é", MaxKeyLen+1), true},
		{"empty key", "", true},
		{"whitespace-only key", "   \t", true},
		{"too long key", strings.Repeat("k", 300), true},
		{"one char over the limit", strings.Repeat("k", MaxKeyLen+1), true},
		{"traversal at start", "../etc/passwd", true},
		{"traversal in the middle", "a/../b", true},
		{"bare dot dot", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := Validate(tt.key)
			if tt.wantErr {
				assert.NotEmpty(t, reason, "expected key %q to be rejected", tt.key)
			} else {
				assert.Empty(t, reason, "expected key %q to be accepted", tt.key)
			}
		})
	}
}

func TestValidateOrder(t *testing.T) {
	// A key that is both too long and contains ".." must be rejected for
	// its length first.
	key := strings.Repeat(".", 300)
	assert.Contains(t, Validate(key), "exceed")
}

func TestFileName(t *testing.T) {
	// Known SHA-256 vectors.
	assert.Equal(t,
		"b00171bacea319da2f65495e86d96c717707642f52b7273a7b1f8536d6728904",
		FileName("auth_token"))
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		FileName(""))
}

func TestFileNameDeterministic(t *testing.T) {
	assert.Equal(t, FileName("some-key"), FileName("some-key"))
	assert.NotEqual(t, FileName("some-key"), FileName("some-key2"))
}

func TestFileNameSafe(t *testing.T) {
	nasty := []string{
		"../../../etc/passwd",
		"a/b/c",
		"a\\b\\c",
		"null\x00byte",
		"ümläut-ключ-鍵",
		strings.Repeat("x", 10_000),
	}

	for _, key := range nasty {
		name := FileName(key)
		assert.Len(t, name, 64)
		assert.Equal(t, strings.ToLower(name), name)
		assert.NotContains(t, name, "/")
		assert.NotContains(t, name, "\\")
		assert.NotContains(t, name, "..")
	}
}
