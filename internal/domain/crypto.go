package domain

// Cipher is the authenticated-encryption capability the encryption service
// builds on. It covers sealing, opening and key normalization so the
// concrete library can be swapped without touching validation or token
// framing.
type Cipher interface {
	// Seal encrypts and authenticates plaintext, returning the ciphertext
	// with the authentication tag appended. Nonce and key must be exactly
	// NonceSize and KeySize bytes; implementations panic on misuse.
	Seal(plaintext, nonce, key []byte) []byte

	// Open verifies and decrypts sealed bytes. It reports false on any
	// length or authentication failure and never returns partial plaintext.
	Open(sealed, nonce, key []byte) ([]byte, bool)

	// DeriveKey normalizes an arbitrary-length secret into a KeySize-byte
	// sealing key. Deterministic: equal secrets derive equal keys.
	DeriveKey(secret []byte) []byte

	// NonceSize returns the required nonce length in bytes.
	NonceSize() int

	// KeySize returns the required sealing-key length in bytes.
	KeySize() int
}

// Encrypter produces and consumes encrypted tokens of the form
// b64(nonce) + "." + b64(ciphertext).
//
// For Encrypt and Decrypt a nil key means "use the service default"; a nil
// nonce means "generate a fresh one". A non-nil empty key is rejected.
type Encrypter interface {
	Encrypt(message, nonce, key []byte) (string, error)
	Decrypt(token string, key []byte) ([]byte, error)

	// DecryptBestEffort hides all decryption failures from the caller and
	// returns the input unchanged when the token cannot be opened.
	DecryptBestEffort(value, nonce string, key []byte) string
}
