// schedule_simon64.go - SIMON-64 key schedules (m=3, m=4).
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package simon

const (
	width32 = 32
	const32 = uint32(0xfffffffc)

	z64m3 = uint64(0x7369f885192c0ef5)
	z64m4 = uint64(0xfc2ce51207a635db)
)

// expandKey64_42R3K is SIMON-64/96: m=3, R=42.
func expandKey64_42R3K(userKey []uint32) []uint32 {
	const r = 42
	key := make([]uint32, r)
	seedReverse(key, userKey)
	runSmall(key, 3, r, 3, const32, z64m3, width32)
	return key
}

// expandKey64_44R4K is SIMON-64/128: m=4, R=44.
func expandKey64_44R4K(userKey []uint32) []uint32 {
	const r = 44
	key := make([]uint32, r)
	seedReverse(key, userKey)
	runLarge(key, 4, r, const32, z64m4, width32)
	return key
}
