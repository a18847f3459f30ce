package crypto

import (
	"crypto/rand"
	"io"
)

// RandomBytes draws n bytes from the system's cryptographically secure
// random source.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GenerateKey returns a fresh random secret suitable as a sealbox key.
func GenerateKey() ([]byte, error) {
	return RandomBytes(KeySize)
}
