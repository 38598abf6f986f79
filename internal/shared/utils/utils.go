package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSecret returns an unguessable hex token of byteLen random bytes.
// Used as the reservation cancel capability: anonymous reservers hold no
// session, so the secret is the only proof of ownership.
func GenerateSecret(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
