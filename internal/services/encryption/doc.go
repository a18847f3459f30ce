// Package encryption seals byte messages into transport-safe tokens and
// opens them again.
//
// A token is b64(nonce) + "." + b64(ciphertext), standard padded base64.
// The service owns input validation, key normalization and token framing;
// all cryptographic work is delegated to a domain.Cipher.
package encryption
