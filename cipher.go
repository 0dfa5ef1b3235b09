// cipher.go - Cipher64 and Cipher128 cipher.Block implementations.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package simon

import (
	"crypto/cipher"
	"fmt"
	"time"
	"unsafe"
)

// Both cipher states satisfy the standard library's block-cipher
// interface, so a caller drops one under cipher.NewCBCEncrypter and
// friends without adapter code.
var (
	_ cipher.Block = (*Cipher64)(nil)
	_ cipher.Block = (*Cipher128)(nil)
)

// Cipher64 is SIMON-64: 32-bit words, 64-bit (8-byte) blocks, keyed with
// either a 12-byte (m=3, R=42) or 16-byte (m=4, R=44) user key.
type Cipher64 struct {
	rounds       int
	roundKeys    []uint32
	roundKeyView []byte // byte view of roundKeys, for memlock/memunlock
	lastKeySetAt time.Time
}

// Cipher128 is SIMON-128: 64-bit words, 128-bit (16-byte) blocks, keyed
// with a 16-, 24-, or 32-byte user key (m ∈ {2, 3, 4}, R ∈ {68, 69, 72}).
type Cipher128 struct {
	rounds       int
	roundKeys    []uint64
	roundKeyView []byte
	lastKeySetAt time.Time
}

const (
	BlockSize64  = 8  // SIMON-64 block size in bytes.
	BlockSize128 = 16 // SIMON-128 block size in bytes.
)

func wordsAsBytes32(words []uint32) []byte {
	if len(words) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*4)
}

func wordsAsBytes64(words []uint64) []byte {
	if len(words) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*8)
}

// NewCipher64 sets up a SIMON-64 cipher state for the given key. key must
// be 12 or 16 bytes; any other length returns ErrInvalidKeyLength and
// leaves no state behind.
func NewCipher64(key []byte) (*Cipher64, error) {
	c := new(Cipher64)
	if err := c.SetKey(key); err != nil {
		return nil, err
	}
	return c, nil
}

// SetKey re-keys c. It is an exclusive operation: the caller must not call
// it concurrently with Encrypt/Decrypt/Close on the same state. The
// previous round-key buffer, if any, is zeroized before being replaced.
func (c *Cipher64) SetKey(key []byte) error {
	var m int
	switch len(key) {
	case 12:
		m = 3
	case 16:
		m = 4
	default:
		return fmt.Errorf("%w: got %d bytes, want 12 or 16", ErrInvalidKeyLength, len(key))
	}

	userKey := make([]uint32, m)
	loadWords32(key, userKey)
	defer zeroize(userKey)

	var roundKeys []uint32
	if m == 3 {
		roundKeys = expandKey64_42R3K(userKey)
	} else {
		roundKeys = expandKey64_44R4K(userKey)
	}

	c.releaseRoundKeys()
	c.roundKeys = roundKeys
	c.rounds = len(roundKeys)
	c.roundKeyView = wordsAsBytes32(c.roundKeys)
	memlock(c.roundKeyView)
	c.lastKeySetAt = time.Now()
	return nil
}

func (c *Cipher64) releaseRoundKeys() {
	if c.roundKeys == nil {
		return
	}
	memunlock(c.roundKeyView)
	zeroize(c.roundKeys)
	c.roundKeys = nil
	c.roundKeyView = nil
}

// Close destroys c's round-key material. c must not be used afterwards.
func (c *Cipher64) Close() {
	c.releaseRoundKeys()
}

// BlockSize returns 8, satisfying crypto/cipher.Block.
func (c *Cipher64) BlockSize() int { return BlockSize64 }

// Rounds reports the round count R selected by the last SetKey call.
func (c *Cipher64) Rounds() int { return c.rounds }

// LastKeySetAt reports when SetKey last ran on c.
func (c *Cipher64) LastKeySetAt() time.Time { return c.lastKeySetAt }

// Encrypt writes the SIMON-64 encryption of src into dst. src and dst must
// each be exactly BlockSize64 bytes and may overlap exactly (dst == src),
// satisfying crypto/cipher.Block.
func (c *Cipher64) Encrypt(dst, src []byte) {
	c.EncryptBlockMasked(dst, src, nil)
}

// Decrypt writes the SIMON-64 decryption of src into dst.
func (c *Cipher64) Decrypt(dst, src []byte) {
	c.DecryptBlockMasked(dst, src, nil)
}

// EncryptBlockMasked is Encrypt with an optional XOR-with-output mask,
// named after Crypto++'s ProcessAndXorBlock. A nil mask performs a plain
// write.
func (c *Cipher64) EncryptBlockMasked(dst, src, mask []byte) {
	if len(src) != BlockSize64 || len(dst) != BlockSize64 {
		panic("simon: Cipher64: wrong block length")
	}
	var p [2]uint32
	loadWords32(src, p[:])
	c0, c1 := encryptWords(p[0], p[1], c.roundKeys, width32)
	writeMasked32(dst, c0, c1, mask)
}

// DecryptBlockMasked is Decrypt with an optional XOR-with-output mask.
func (c *Cipher64) DecryptBlockMasked(dst, src, mask []byte) {
	if len(src) != BlockSize64 || len(dst) != BlockSize64 {
		panic("simon: Cipher64: wrong block length")
	}
	var ct [2]uint32
	loadWords32(src, ct[:])
	p0, p1 := decryptWords(ct[0], ct[1], c.roundKeys, width32)
	writeMasked32(dst, p0, p1, mask)
}

func writeMasked32(dst []byte, w0, w1 uint32, mask []byte) {
	var buf [BlockSize64]byte
	storeWords32([]uint32{w0, w1}, buf[:])
	if mask == nil {
		copy(dst, buf[:])
		return
	}
	xorBytes(dst, buf[:], mask)
}

// NewCipher128 sets up a SIMON-128 cipher state for the given key. key
// must be 16, 24, or 32 bytes; any other length returns
// ErrInvalidKeyLength.
func NewCipher128(key []byte) (*Cipher128, error) {
	c := new(Cipher128)
	if err := c.SetKey(key); err != nil {
		return nil, err
	}
	return c, nil
}

// SetKey re-keys c. See Cipher64.SetKey for the exclusivity contract.
func (c *Cipher128) SetKey(key []byte) error {
	var m int
	switch len(key) {
	case 16:
		m = 2
	case 24:
		m = 3
	case 32:
		m = 4
	default:
		return fmt.Errorf("%w: got %d bytes, want 16, 24, or 32", ErrInvalidKeyLength, len(key))
	}

	userKey := make([]uint64, m)
	loadWords64(key, userKey)
	defer zeroize(userKey)

	var roundKeys []uint64
	switch m {
	case 2:
		roundKeys = expandKey128_68R2K(userKey)
	case 3:
		roundKeys = expandKey128_69R3K(userKey)
	case 4:
		roundKeys = expandKey128_72R4K(userKey)
	}

	c.releaseRoundKeys()
	c.roundKeys = roundKeys
	c.rounds = len(roundKeys)
	c.roundKeyView = wordsAsBytes64(c.roundKeys)
	memlock(c.roundKeyView)
	c.lastKeySetAt = time.Now()
	return nil
}

func (c *Cipher128) releaseRoundKeys() {
	if c.roundKeys == nil {
		return
	}
	memunlock(c.roundKeyView)
	zeroize(c.roundKeys)
	c.roundKeys = nil
	c.roundKeyView = nil
}

// Close destroys c's round-key material. c must not be used afterwards.
func (c *Cipher128) Close() {
	c.releaseRoundKeys()
}

// BlockSize returns 16, satisfying crypto/cipher.Block.
func (c *Cipher128) BlockSize() int { return BlockSize128 }

// Rounds reports the round count R selected by the last SetKey call.
func (c *Cipher128) Rounds() int { return c.rounds }

// LastKeySetAt reports when SetKey last ran on c.
func (c *Cipher128) LastKeySetAt() time.Time { return c.lastKeySetAt }

// Encrypt writes the SIMON-128 encryption of src into dst.
func (c *Cipher128) Encrypt(dst, src []byte) {
	c.EncryptBlockMasked(dst, src, nil)
}

// Decrypt writes the SIMON-128 decryption of src into dst.
func (c *Cipher128) Decrypt(dst, src []byte) {
	c.DecryptBlockMasked(dst, src, nil)
}

// EncryptBlockMasked is Encrypt with an optional XOR-with-output mask.
func (c *Cipher128) EncryptBlockMasked(dst, src, mask []byte) {
	if len(src) != BlockSize128 || len(dst) != BlockSize128 {
		panic("simon: Cipher128: wrong block length")
	}
	var p [2]uint64
	loadWords64(src, p[:])
	c0, c1 := encryptWords(p[0], p[1], c.roundKeys, width64)
	writeMasked64(dst, c0, c1, mask)
}

// DecryptBlockMasked is Decrypt with an optional XOR-with-output mask.
func (c *Cipher128) DecryptBlockMasked(dst, src, mask []byte) {
	if len(src) != BlockSize128 || len(dst) != BlockSize128 {
		panic("simon: Cipher128: wrong block length")
	}
	var ct [2]uint64
	loadWords64(src, ct[:])
	p0, p1 := decryptWords(ct[0], ct[1], c.roundKeys, width64)
	writeMasked64(dst, p0, p1, mask)
}

func writeMasked64(dst []byte, w0, w1 uint64, mask []byte) {
	var buf [BlockSize128]byte
	storeWords64([]uint64{w0, w1}, buf[:])
	if mask == nil {
		copy(dst, buf[:])
		return
	}
	xorBytes(dst, buf[:], mask)
}
