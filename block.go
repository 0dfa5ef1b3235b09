// block.go - Forward and reverse block transforms.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package simon

// encryptWords is the generic forward block transform: a run of round
// pairs followed by an odd-round-count half round and swap. Only R=69
// (SIMON-128/192) is odd among the five variants, but the swap must fire
// whenever it is.
func encryptWords[W word](p0, p1 W, keys []W, width uint) (c0, c1 W) {
	c0, c1 = p0, p1
	r := len(keys)

	i := 0
	for i+1 < r {
		r2(&c0, &c1, keys[i], keys[i+1], width)
		i += 2
	}
	if r%2 == 1 {
		c1 ^= f(c0, width) ^ keys[r-1]
		c0, c1 = c1, c0
	}
	return c0, c1
}

// decryptWords is the exact inverse of encryptWords. The downward loop is
// a plain counted loop rather than the reference's wrapping unsigned
// counter.
func decryptWords[W word](c0, c1 W, keys []W, width uint) (p0, p1 W) {
	p0, p1 = c0, c1
	r := len(keys)

	if r%2 == 1 {
		p0, p1 = p1, p0
		p1 ^= keys[r-1] ^ f(p0, width)
		r--
	}
	for i := r - 2; i >= 0; i -= 2 {
		r2(&p1, &p0, keys[i+1], keys[i], width)
	}
	return p0, p1
}
