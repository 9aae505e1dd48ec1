package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// SecretSize256 is the length in bytes of a generated HS256 key.
const SecretSize256 = 32

// RandomSecret returns size bytes from crypto/rand, base64url encoded without
// padding.
func RandomSecret(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: secret size must be positive, got %d", size)
	}

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("cryptox: read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// MustRandomSecret is RandomSecret for startup code.
func MustRandomSecret(size int) string {
	s, err := RandomSecret(size)
	if err != nil {
		panic(err)
	}
	return s
}
