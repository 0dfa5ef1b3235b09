// schedule_simon128.go - SIMON-128 key schedules (m=2, m=3, m=4).
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package simon

const (
	width64 = 64
	const64 = uint64(0xfffffffffffffffc)

	z128m2 = z64m3
	z128m3 = z64m4
	z128m4 = uint64(0xfdc94c3a046d678b)
)

// expandKey128_68R2K is SIMON-128/128: m=2, R=68.
func expandKey128_68R2K(userKey []uint64) []uint64 {
	const r = 68
	key := make([]uint64, r)
	seedReverse(key, userKey)
	runSmall(key, 2, 66, 2, const64, z128m2, width64)

	key[66] = const64 ^ 1 ^ key[64] ^ ror(key[65], 3, width64) ^ ror(key[65], 4, width64)
	key[67] = const64 ^ key[65] ^ ror(key[66], 3, width64) ^ ror(key[66], 4, width64)
	return key
}

// expandKey128_69R3K is SIMON-128/192: m=3, R=69.
func expandKey128_69R3K(userKey []uint64) []uint64 {
	const r = 69
	key := make([]uint64, r)
	seedReverse(key, userKey)
	runSmall(key, 3, 67, 3, const64, z128m3, width64)

	key[67] = const64 ^ key[64] ^ ror(key[66], 3, width64) ^ ror(key[66], 4, width64)
	key[68] = const64 ^ 1 ^ key[65] ^ ror(key[67], 3, width64) ^ ror(key[67], 4, width64)
	return key
}

// expandKey128_72R4K is SIMON-128/256: m=4, R=72.
func expandKey128_72R4K(userKey []uint64) []uint64 {
	const r = 72
	key := make([]uint64, r)
	seedReverse(key, userKey)
	runLarge(key, 4, 68, const64, z128m4, width64)

	// Tail: z no longer consulted, bits are explicit {0, 1, 0, 0}.
	key[68] = stepLarge(key, 68, const64, 0, width64)
	key[69] = stepLarge(key, 69, const64, 1, width64)
	key[70] = stepLarge(key, 70, const64, 0, width64)
	key[71] = stepLarge(key, 71, const64, 0, width64)
	return key
}
