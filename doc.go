// doc.go - Package documentation.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package simon implements the core of the SIMON family of lightweight
// block ciphers: SIMON-64 (32-bit words, 64-bit blocks) and SIMON-128
// (64-bit words, 128-bit blocks), across all five standard (block size,
// key size) combinations.
//
// This package covers the primitives, the five key schedules, and the
// per-block forward/reverse transforms. It does not implement a mode of
// operation (CBC, CTR, ...); callers get there by wrapping a *Cipher64 or
// *Cipher128 with the standard library's crypto/cipher helpers, since both
// types satisfy cipher.Block.
//
// ** This is a straight-line, unoptimized reference implementation. It is
// ** constant-time by construction (fixed-count rotations, no data-dependent
// ** branches or table lookups) but has not been hardened against physical
// ** side channels.
package simon
