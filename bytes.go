// bytes.go - Big-endian word packing and XOR-with-output.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package simon

import "encoding/binary"

// Big-endian byte<->word adaptation at the block boundary. The first word
// consumed from a byte buffer comes from its leading bytes.

func loadWords32(b []byte, words []uint32) {
	for i := range words {
		words[i] = binary.BigEndian.Uint32(b[i*4:])
	}
}

func storeWords32(words []uint32, b []byte) {
	for i, w := range words {
		binary.BigEndian.PutUint32(b[i*4:], w)
	}
}

func loadWords64(b []byte, words []uint64) {
	for i := range words {
		words[i] = binary.BigEndian.Uint64(b[i*8:])
	}
}

func storeWords64(words []uint64, b []byte) {
	for i, w := range words {
		binary.BigEndian.PutUint64(b[i*8:], w)
	}
}

// xorBytes computes dst = a XOR b over len(dst) bytes, the minimal
// XOR-with-output hook a mode-of-operation caller needs. a and b must
// each be at least len(dst) bytes.
func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
