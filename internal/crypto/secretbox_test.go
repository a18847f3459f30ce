package crypto_test

import (
	"bytes"
	"testing"

	"sealbox/internal/crypto"
)

// makeInputs returns a random nonce and a derived key for sealing.
func makeInputs(t *testing.T) (nonce, key []byte) {
	t.Helper()
	nonce, err := crypto.RandomBytes(crypto.NonceSize)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	return nonce, crypto.SecretBox{}.DeriveKey([]byte("test secret"))
}

func TestSecretBox_RoundTrip(t *testing.T) {
	box := crypto.SecretBox{}
	nonce, key := makeInputs(t)

	sealed := box.Seal([]byte("attack at dawn"), nonce, key)
	plain, ok := box.Open(sealed, nonce, key)
	if !ok {
		t.Fatal("Open: authentication failed on valid input")
	}
	if string(plain) != "attack at dawn" {
		t.Fatalf("got %q, want %q", plain, "attack at dawn")
	}
}

func TestSecretBox_OpenRejectsTamper(t *testing.T) {
	box := crypto.SecretBox{}
	nonce, key := makeInputs(t)

	sealed := box.Seal([]byte("payload"), nonce, key)
	sealed[len(sealed)/2] ^= 0x01
	if _, ok := box.Open(sealed, nonce, key); ok {
		t.Fatal("Open accepted tampered ciphertext")
	}
}

func TestSecretBox_OpenRejectsBadLengths(t *testing.T) {
	box := crypto.SecretBox{}
	nonce, key := makeInputs(t)
	sealed := box.Seal([]byte("payload"), nonce, key)

	if _, ok := box.Open(sealed, nonce[:10], key); ok {
		t.Fatal("Open accepted short nonce")
	}
	if _, ok := box.Open(sealed, nonce, key[:16]); ok {
		t.Fatal("Open accepted short key")
	}
}

func TestSecretBox_SealPanicsOnBadNonce(t *testing.T) {
	box := crypto.SecretBox{}
	_, key := makeInputs(t)

	defer func() {
		if recover() == nil {
			t.Fatal("Seal did not panic on mis-sized nonce")
		}
	}()
	box.Seal([]byte("payload"), []byte("short"), key)
}

func TestSecretBox_DeriveKeyDeterministic(t *testing.T) {
	box := crypto.SecretBox{}

	a := box.DeriveKey([]byte("secret"))
	b := box.DeriveKey([]byte("secret"))
	if !bytes.Equal(a, b) {
		t.Fatal("DeriveKey is not deterministic")
	}
	if len(a) != crypto.KeySize {
		t.Fatalf("derived key is %d bytes, want %d", len(a), crypto.KeySize)
	}
	if bytes.Equal(a, box.DeriveKey([]byte("other"))) {
		t.Fatal("distinct secrets derived the same key")
	}
}

func TestRandomBytes_Freshness(t *testing.T) {
	a, err := crypto.RandomBytes(crypto.NonceSize)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	b, err := crypto.RandomBytes(crypto.NonceSize)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two random draws are identical")
	}
}

func TestB64_RoundTrip(t *testing.T) {
	in := []byte{0x00, 0xff, 0x10, 0x20}
	out, err := crypto.FromB64(crypto.B64(in))
	if err != nil {
		t.Fatalf("FromB64: %v", err)
	}
	if !bytes.Equal(in, out) {
		t.Fatalf("got %v, want %v", out, in)
	}
}

func TestWipe(t *testing.T) {
	b := []byte("sensitive")
	crypto.Wipe(b)
	if !bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("buffer not zeroed: %v", b)
	}
}
