// Package consentid generates the short, URL-safe identifiers that clients
// attach to anonymous consent records. The service itself never mints one; a
// consent ID always arrives from the caller.
package consentid

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

const idLength = 8

// New returns a short URL-safe identifier derived from 6 random bytes,
// base64-encoded with padding and non-alphanumeric characters stripped.
func New() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(buf)
	encoded = strings.NewReplacer("+", "", "/", "", "=", "").Replace(encoded)
	if len(encoded) > idLength {
		encoded = encoded[:idLength]
	}
	return encoded, nil
}
