// zeroize.go - Round-key memory wiping.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package simon

import "runtime"

// zeroize overwrites round-key (or workspace) memory with zero on rekey
// and on release. runtime.KeepAlive pins the slice past the final store so
// the compiler cannot prove the writes are dead and elide them.
func zeroize[W word](s []W) {
	for i := range s {
		s[i] = 0
	}
	runtime.KeepAlive(s)
}
