package signer

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// DefaultKeySize is the number of random bytes GenerateKey uses by default.
const DefaultKeySize = 32

// GenerateKey returns n random bytes encoded as unpadded base64url, suitable
// as a secret key. Non-positive n uses DefaultKeySize.
func GenerateKey(n int) (string, error) {
	if n <= 0 {
		n = DefaultKeySize
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
