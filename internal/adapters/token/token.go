package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// tokenBytes is the entropy of an unlock token: 16 random bytes, 32 hex chars.
const tokenBytes = 16

var tokenRegexp = regexp.MustCompile(`^[a-f0-9]{32}$`)

// Generator mints unlock tokens from crypto/rand.
type Generator struct{}

// NewGenerator returns a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a new 32-character lowercase hex token.
func (g *Generator) Generate() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Valid reports whether s has the exact shape of an unlock token:
// 32 lowercase hex characters. Anything else must be rejected before
// any storage lookup.
func Valid(s string) bool {
	return tokenRegexp.MatchString(s)
}
