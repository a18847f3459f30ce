package crypto

import "crypto/subtle"

// Wipe overwrites b with zeros. Best-effort: it uses a constant-time copy
// so the write is unlikely to be elided, but cannot reach copies the
// runtime may have made elsewhere.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
