// memlock_unix.go - mlock-backed round-key pinning for unix targets.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

//go:build unix

package simon

import "golang.org/x/sys/unix"

// memlock pins b's backing pages so the kernel cannot swap round-key
// material to disk; memunlock releases that pin before zeroization. Both
// are best-effort: a locked-memory rlimit failure must not prevent a
// cipher state from being set up, it only gives up the extra hardening.
func memlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Mlock(b)
}

func memunlock(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munlock(b)
}
