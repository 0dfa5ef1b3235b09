package simon_test

import (
	"testing"

	"github.com/the513115/simon"
)

func TestVariantForKeySize(t *testing.T) {
	tests := []struct {
		blockBits, keyBytes int
		want                simon.Variant
	}{
		{64, 12, simon.Simon64_96},
		{64, 16, simon.Simon64_128},
		{128, 16, simon.Simon128_128},
		{128, 24, simon.Simon128_192},
		{128, 32, simon.Simon128_256},
	}
	for _, tt := range tests {
		got, err := simon.VariantForKeySize(tt.blockBits, tt.keyBytes)
		if err != nil {
			t.Fatalf("VariantForKeySize(%d, %d): %v", tt.blockBits, tt.keyBytes, err)
		}
		if got != tt.want {
			t.Errorf("VariantForKeySize(%d, %d) = %v, want %v", tt.blockBits, tt.keyBytes, got, tt.want)
		}
		if got.KeySize() != tt.keyBytes {
			t.Errorf("%v.KeySize() = %d, want %d", got, got.KeySize(), tt.keyBytes)
		}
		if got.BlockSize()*8 != tt.blockBits {
			t.Errorf("%v.BlockSize() = %d bytes, want %d bits", got, got.BlockSize(), tt.blockBits)
		}
	}

	if _, err := simon.VariantForKeySize(64, 20); err == nil {
		t.Error("VariantForKeySize(64, 20): expected error, got nil")
	}
	if _, err := simon.VariantForKeySize(256, 16); err == nil {
		t.Error("VariantForKeySize(256, 16): expected error, got nil")
	}
}

func TestEncryptBlockWrongWidth(t *testing.T) {
	c, err := simon.NewCipher64(make([]byte, 12))
	if err != nil {
		t.Fatalf("NewCipher64: %v", err)
	}
	dst := make([]byte, 16)
	src := make([]byte, 16)
	if err := simon.EncryptBlock(c, dst, src); err == nil {
		t.Error("EncryptBlock with mismatched width: expected error, got nil")
	}
}

func TestLastKeySetAt(t *testing.T) {
	c, err := simon.NewCipher64(make([]byte, 12))
	if err != nil {
		t.Fatalf("NewCipher64: %v", err)
	}
	first := c.LastKeySetAt()
	if first.IsZero() {
		t.Fatal("LastKeySetAt() is zero after NewCipher64")
	}
	if err := c.SetKey(make([]byte, 16)); err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	if !c.LastKeySetAt().After(first) && !c.LastKeySetAt().Equal(first) {
		t.Errorf("LastKeySetAt() did not advance after SetKey")
	}
}

func TestCloseThenReuse(t *testing.T) {
	c, err := simon.NewCipher128(make([]byte, 16))
	if err != nil {
		t.Fatalf("NewCipher128: %v", err)
	}
	c.Close()

	// A rekey after Close must still work; SetKey always rebuilds the
	// round-key buffer from scratch.
	if err := c.SetKey(make([]byte, 24)); err != nil {
		t.Fatalf("SetKey after Close: %v", err)
	}
	if c.Rounds() != 69 {
		t.Errorf("Rounds() after rekey = %d, want 69", c.Rounds())
	}
}
