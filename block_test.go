package simon

import (
	"math/rand"
	"testing"
)

// decrypt(encrypt(p)) == p and encrypt(decrypt(c)) == c for every valid
// (W, m) combination, over many random key/block pairs. This keeps the
// default `go test` run fast and relies on FuzzRoundTrip64/128 below (run
// under `go test -fuzz`) to push much further during corpus exploration.
func TestRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	const iterations = 2000
	keyLens64 := []int{12, 16}
	keyLens128 := []int{16, 24, 32}

	for _, kl := range keyLens64 {
		for i := 0; i < iterations; i++ {
			key := randomBytes(rng, kl)
			plaintext := randomBytes(rng, BlockSize64)

			c, err := NewCipher64(key)
			if err != nil {
				t.Fatalf("NewCipher64: %v", err)
			}
			ct := make([]byte, BlockSize64)
			c.Encrypt(ct, plaintext)
			back := make([]byte, BlockSize64)
			c.Decrypt(back, ct)
			if !bytesEqual(back, plaintext) {
				t.Fatalf("round trip failed for %d-byte key: got %x, want %x", kl, back, plaintext)
			}

			fwd := make([]byte, BlockSize64)
			c.Encrypt(fwd, back)
			if !bytesEqual(fwd, ct) {
				t.Fatalf("encrypt(decrypt(c)) != c for %d-byte key", kl)
			}
		}
	}

	for _, kl := range keyLens128 {
		for i := 0; i < iterations; i++ {
			key := randomBytes(rng, kl)
			plaintext := randomBytes(rng, BlockSize128)

			c, err := NewCipher128(key)
			if err != nil {
				t.Fatalf("NewCipher128: %v", err)
			}
			ct := make([]byte, BlockSize128)
			c.Encrypt(ct, plaintext)
			back := make([]byte, BlockSize128)
			c.Decrypt(back, ct)
			if !bytesEqual(back, plaintext) {
				t.Fatalf("round trip failed for %d-byte key: got %x, want %x", kl, back, plaintext)
			}

			fwd := make([]byte, BlockSize128)
			c.Encrypt(fwd, back)
			if !bytesEqual(fwd, ct) {
				t.Fatalf("encrypt(decrypt(c)) != c for %d-byte key", kl)
			}
		}
	}
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func FuzzRoundTrip64(f *testing.F) {
	f.Add(make([]byte, 12), make([]byte, 8))
	f.Add([]byte("0123456789ab"), []byte("abcdefgh"))

	f.Fuzz(func(t *testing.T, key, plaintext []byte) {
		if len(key) != 12 && len(key) != 16 {
			t.Skip()
		}
		if len(plaintext) != BlockSize64 {
			t.Skip()
		}
		c, err := NewCipher64(key)
		if err != nil {
			t.Fatalf("NewCipher64: %v", err)
		}
		ct := make([]byte, BlockSize64)
		c.Encrypt(ct, plaintext)
		back := make([]byte, BlockSize64)
		c.Decrypt(back, ct)
		if !bytesEqual(back, plaintext) {
			t.Errorf("round trip mismatch: got %x, want %x", back, plaintext)
		}
	})
}

func FuzzRoundTrip128(f *testing.F) {
	f.Add(make([]byte, 16), make([]byte, 16))
	f.Add([]byte("0123456789abcdef"), []byte("abcdefghijklmnop"))

	f.Fuzz(func(t *testing.T, key, plaintext []byte) {
		if len(key) != 16 && len(key) != 24 && len(key) != 32 {
			t.Skip()
		}
		if len(plaintext) != BlockSize128 {
			t.Skip()
		}
		c, err := NewCipher128(key)
		if err != nil {
			t.Fatalf("NewCipher128: %v", err)
		}
		ct := make([]byte, BlockSize128)
		c.Encrypt(ct, plaintext)
		back := make([]byte, BlockSize128)
		c.Decrypt(back, ct)
		if !bytesEqual(back, plaintext) {
			t.Errorf("round trip mismatch: got %x, want %x", back, plaintext)
		}
	})
}
