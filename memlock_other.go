// memlock_other.go - No-op round-key pinning for non-unix targets.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

//go:build !unix

package simon

// memlock/memunlock are no-ops on targets without an mlock/munlock syscall
// (e.g. windows, wasm); round-key memory is still zeroized, it just isn't
// pinned non-swappable first.
func memlock(b []byte)   {}
func memunlock(b []byte) {}
