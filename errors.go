// errors.go - Sentinel errors.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication.
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package simon

import "errors"

// ErrInvalidKeyLength is returned by a set-key operation when the supplied
// key material's byte length does not match any valid (word size, key
// word count) combination for the chosen variant.
var ErrInvalidKeyLength = errors.New("simon: invalid key length")

// ErrUnsupported marks a programmer error: a block was routed to a cipher
// state whose word width does not match the block's own width. The core
// never recovers from it internally.
var ErrUnsupported = errors.New("simon: unsupported block width")
