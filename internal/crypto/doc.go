// Package crypto exposes the minimal primitives used by sealbox.
//
// Contents
//
//   - SecretBox, the concrete authenticated-encryption capability built on
//     NaCl secretbox (XSalsa20-Poly1305) with BLAKE2b key normalization
//   - Secure random byte generation for nonces and fresh keys
//     (RandomBytes, GenerateKey)
//   - Base64 helpers for token framing (B64, FromB64)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// KeySize and NonceSize are the single source of truth for the primitive's
// fixed parameter lengths. Callers should treat derived keys as sensitive
// and rely on Wipe when practical to reduce lifetime in memory.
package crypto
