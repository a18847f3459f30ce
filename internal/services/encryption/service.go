package encryption

import (
	"errors"
	"fmt"
	"strings"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
)

// tokenSeparator joins the base64 nonce and ciphertext segments. Standard
// base64 never emits '.', so the separator cannot collide with segment
// content.
const tokenSeparator = "."

var (
	// ErrKeyNotFound is the base kind for every key-resolution failure.
	// The three wrapped variants below all satisfy
	// errors.Is(err, ErrKeyNotFound).
	ErrKeyNotFound = errors.New("encryption key not found")

	// ErrCustomKeyEmpty is returned when the caller passes a key that is
	// present but empty.
	ErrCustomKeyEmpty = fmt.Errorf("%w: provided key is empty", ErrKeyNotFound)

	// ErrDefaultKeyEmpty is returned when the service was constructed with
	// an empty default key and no per-call key overrides it.
	ErrDefaultKeyEmpty = fmt.Errorf("%w: default key is empty", ErrKeyNotFound)

	// ErrNoKey is returned when no per-call key is given and no default key
	// was configured.
	ErrNoKey = fmt.Errorf("%w: no key provided and no default key configured", ErrKeyNotFound)

	// ErrInvalidNonce is returned when a caller-supplied nonce does not
	// match the cipher's required length.
	ErrInvalidNonce = errors.New("nonce has wrong length")

	// ErrMalformedToken is returned when a token does not split into
	// exactly two dot-separated segments.
	ErrMalformedToken = errors.New("token must have exactly two dot-separated segments")

	// ErrDecodeToken is returned when a token segment is not valid base64.
	ErrDecodeToken = errors.New("token segment is not valid base64")

	// ErrDecrypt is returned when authentication or decryption fails. The
	// cause is deliberately not distinguished further.
	ErrDecrypt = errors.New("message authentication failed")
)

// Service seals messages into tokens and opens them again using an
// authenticated-encryption cipher.
//
// An optional default key may be fixed at construction; per-call keys
// override it. Either way the raw key is never used directly: it is
// normalized through the cipher's DeriveKey before sealing or opening, so
// arbitrary-length keys map onto the cipher's fixed key size.
//
// The service holds no mutable state, so concurrent use needs no
// coordination.
type Service struct {
	cipher     domain.Cipher
	defaultKey []byte
	hasDefault bool
}

// New returns a service without a default key. Every call must then supply
// its own key.
func New(cipher domain.Cipher) *Service {
	return &Service{cipher: cipher}
}

// NewWithKey returns a service that falls back to defaultKey when a call
// supplies none. The key is copied and immutable for the service lifetime.
// An empty default still counts as configured and fails at use time, not
// here.
func NewWithKey(cipher domain.Cipher, defaultKey []byte) *Service {
	return &Service{
		cipher:     cipher,
		defaultKey: append([]byte(nil), defaultKey...),
		hasDefault: true,
	}
}

// Encrypt seals message into a token.
//
// A nil nonce means "generate a fresh one"; a supplied nonce must be
// exactly the cipher's nonce length. A nil key means "use the default
// key"; a supplied key must be non-empty.
func (s *Service) Encrypt(message, nonce, key []byte) (string, error) {
	nonce, err := s.resolveNonce(nonce)
	if err != nil {
		return "", err
	}
	k, err := s.resolveKey(key)
	if err != nil {
		return "", err
	}

	sealingKey := s.cipher.DeriveKey(k)
	defer crypto.Wipe(sealingKey)

	sealed := s.cipher.Seal(message, nonce, sealingKey)
	return crypto.B64(nonce) + tokenSeparator + crypto.B64(sealed), nil
}

// Decrypt opens a token and returns the original message.
//
// Key resolution is identical to Encrypt. Wrong keys and tampered
// ciphertext fail closed with ErrDecrypt; no partial plaintext is ever
// returned.
func (s *Service) Decrypt(token string, key []byte) ([]byte, error) {
	k, err := s.resolveKey(key)
	if err != nil {
		return nil, err
	}

	segments := strings.Split(token, tokenSeparator)
	if len(segments) != 2 {
		return nil, ErrMalformedToken
	}
	nonce, err := crypto.FromB64(segments[0])
	if err != nil {
		return nil, fmt.Errorf("%w: nonce segment: %w", ErrDecodeToken, err)
	}
	sealed, err := crypto.FromB64(segments[1])
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext segment: %w", ErrDecodeToken, err)
	}

	sealingKey := s.cipher.DeriveKey(k)
	defer crypto.Wipe(sealingKey)

	message, ok := s.cipher.Open(sealed, nonce, sealingKey)
	if !ok {
		return nil, ErrDecrypt
	}
	return message, nil
}

// DecryptBestEffort reassembles a token from a separately-tracked base64
// nonce and ciphertext value (or treats value as a whole token when nonce
// is empty) and decrypts it.
//
// This helper intentionally hides all decryption failures from its caller:
// on any error from the standard decrypt path it returns value unchanged,
// still encrypted. Callers who need to know why decryption failed must use
// Decrypt instead.
func (s *Service) DecryptBestEffort(value, nonce string, key []byte) string {
	token := value
	if nonce != "" {
		token = nonce + tokenSeparator + value
	}
	message, err := s.Decrypt(token, key)
	if err != nil {
		return value
	}
	return string(message)
}

// resolveNonce validates a supplied nonce or generates a fresh one.
func (s *Service) resolveNonce(nonce []byte) ([]byte, error) {
	if nonce == nil {
		return crypto.RandomBytes(s.cipher.NonceSize())
	}
	if len(nonce) != s.cipher.NonceSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidNonce, len(nonce), s.cipher.NonceSize())
	}
	return nonce, nil
}

// resolveKey picks the per-call key over the default key. Exactly one of
// them must resolve to a non-empty value.
func (s *Service) resolveKey(key []byte) ([]byte, error) {
	switch {
	case key != nil:
		if len(key) == 0 {
			return nil, ErrCustomKeyEmpty
		}
		return key, nil
	case s.hasDefault:
		if len(s.defaultKey) == 0 {
			return nil, ErrDefaultKeyEmpty
		}
		return s.defaultKey, nil
	default:
		return nil, ErrNoKey
	}
}

// Compile-time assertion that Service implements domain.Encrypter.
var _ domain.Encrypter = (*Service)(nil)
