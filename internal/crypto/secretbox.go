package crypto

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/secretbox"

	"sealbox/internal/domain"
)

const (
	// KeySize is the secretbox secret key size in bytes. Key derivation is
	// pinned to this one constant on both the seal and open paths.
	KeySize = blake2b.Size256

	// NonceSize is the secretbox nonce size in bytes.
	NonceSize = 24
)

// SecretBox implements domain.Cipher with NaCl secretbox and BLAKE2b.
type SecretBox struct{}

// Seal encrypts and authenticates plaintext, appending the Poly1305 tag.
// Nonce and key lengths are the caller's responsibility; mis-sized inputs
// panic, matching x/crypto convention.
func (SecretBox) Seal(plaintext, nonce, key []byte) []byte {
	if len(nonce) != NonceSize || len(key) != KeySize {
		panic("crypto: secretbox seal with mis-sized nonce or key")
	}
	var n [NonceSize]byte
	var k [KeySize]byte
	copy(n[:], nonce)
	copy(k[:], key)
	return secretbox.Seal(nil, plaintext, &n, &k)
}

// Open verifies and decrypts sealed bytes. Any length or authentication
// failure reports false; no partial plaintext is ever returned.
func (SecretBox) Open(sealed, nonce, key []byte) ([]byte, bool) {
	if len(nonce) != NonceSize || len(key) != KeySize {
		return nil, false
	}
	var n [NonceSize]byte
	var k [KeySize]byte
	copy(n[:], nonce)
	copy(k[:], key)
	return secretbox.Open(nil, sealed, &n, &k)
}

// DeriveKey normalizes an arbitrary-length secret into a KeySize-byte
// sealing key using unkeyed BLAKE2b. Deterministic by construction.
func (SecretBox) DeriveKey(secret []byte) []byte {
	sum := blake2b.Sum256(secret)
	return sum[:]
}

// NonceSize returns the secretbox nonce length.
func (SecretBox) NonceSize() int { return NonceSize }

// KeySize returns the secretbox secret key length.
func (SecretBox) KeySize() int { return KeySize }

// Compile-time assertion that SecretBox implements domain.Cipher.
var _ domain.Cipher = SecretBox{}
