// schedule.go - Shared key-schedule recurrence steps.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package simon

// Five concrete key-schedule routines exist, one per (block size, key size)
// pair — the reference specializes at compile time rather than branching
// at runtime. Each routine is built from the two shared recurrence steps
// below rather than hand-duplicated, without collapsing the five
// (W, m, R) combinations into one runtime-branching function.

// stepSmall computes key[i] for the m ∈ {2, 3} recurrence.
func stepSmall[W word](key []W, i, m int, c, zbit W, width uint) W {
	return c ^ zbit ^ key[i-m] ^ ror(key[i-1], 3, width) ^ ror(key[i-1], 4, width)
}

// stepLarge computes key[i] for the m = 4 recurrence.
func stepLarge[W word](key []W, i int, c, zbit W, width uint) W {
	return c ^ zbit ^ key[i-4] ^ ror(key[i-1], 3, width) ^ key[i-3] ^
		ror(key[i-1], 4, width) ^ ror(key[i-3], 1, width)
}

// seedReverse copies the user key into key[0:m] in reverse order:
// key[i] = userKey[m-1-i].
func seedReverse[W word](key, userKey []W) {
	m := len(userKey)
	for i := 0; i < m; i++ {
		key[i] = userKey[m-1-i]
	}
}

// runSmall fills key[start:end] using the small-key recurrence, consuming
// one bit of z per step (low bit first).
func runSmall[W word](key []W, start, end, m int, c W, z uint64, width uint) uint64 {
	for i := start; i < end; i++ {
		key[i] = stepSmall(key, i, m, c, W(z&1), width)
		z >>= 1
	}
	return z
}

// runLarge fills key[start:end] using the large-key (m=4) recurrence.
func runLarge[W word](key []W, start, end int, c W, z uint64, width uint) uint64 {
	for i := start; i < end; i++ {
		key[i] = stepLarge(key, i, c, W(z&1), width)
		z >>= 1
	}
	return z
}
