package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sys/cpu"

	"github.com/the513115/simon"
	"github.com/the513115/simon/internal/simonlog"
)

var selftestCommand = &cli.Command{
	Name:  "selftest",
	Usage: "verify every variant against its known-answer vector",
	Action: func(c *cli.Context) error {
		simonlog.Info().Bool("x86_simd", cpu.X86.HasAVX2 || cpu.X86.HasSSE41).
			Msg("reporting host x86 SIMD support, purely informational")

		for _, v := range knownAnswerVectors {
			if err := v.check(); err != nil {
				simonlog.Error().Str("variant", v.name).Err(err).Msg("known-answer vector failed")
				return err
			}
			simonlog.Info().Str("variant", v.name).Msg("known-answer vector passed")
		}
		fmt.Println("ok")
		return nil
	},
}

type kav struct {
	name                   string
	blockBits              int
	key, plaintext, cipher string
}

func (v kav) check() error {
	key, err := hex.DecodeString(strings.ReplaceAll(v.key, " ", ""))
	if err != nil {
		return err
	}
	plaintext, err := hex.DecodeString(strings.ReplaceAll(v.plaintext, " ", ""))
	if err != nil {
		return err
	}
	want, err := hex.DecodeString(strings.ReplaceAll(v.cipher, " ", ""))
	if err != nil {
		return err
	}

	c, err := newCipher(variantFromBlockBits(v.blockBits, len(key)), key)
	if err != nil {
		return err
	}

	got := make([]byte, len(plaintext))
	c.Encrypt(got, plaintext)
	if !bytes.Equal(got, want) {
		return fmt.Errorf("encrypt mismatch: got %x, want %x", got, want)
	}

	back := make([]byte, len(plaintext))
	c.Decrypt(back, got)
	if !bytes.Equal(back, plaintext) {
		return fmt.Errorf("decrypt(encrypt(p)) mismatch: got %x, want %x", back, plaintext)
	}
	return nil
}

func variantFromBlockBits(blockBits, keyBytes int) string {
	v, err := simon.VariantForKeySize(blockBits, keyBytes)
	if err != nil {
		return ""
	}
	switch v {
	case simon.Simon64_96:
		return "simon64-96"
	case simon.Simon64_128:
		return "simon64-128"
	case simon.Simon128_128:
		return "simon128-128"
	case simon.Simon128_192:
		return "simon128-192"
	case simon.Simon128_256:
		return "simon128-256"
	default:
		return ""
	}
}

var knownAnswerVectors = []kav{
	{
		name:      "SIMON-64/96",
		blockBits: 64,
		key:       "000102030809 0a0b101112 13",
		plaintext: "6f722069616765 6d",
		cipher:    "5ca2e27f111a8796",
	},
	{
		name:      "SIMON-64/128",
		blockBits: 64,
		key:       "000102030809 0a0b1011121318191a1b",
		plaintext: "756e6420 6c696b65",
		cipher:    "44bb2dc41d2291ea",
	},
	{
		name:      "SIMON-128/128",
		blockBits: 128,
		key:       "000102030405060708090a0b0c0d0e0f",
		plaintext: "2074726176656c6c6572732064657363",
		cipher:    "bcf0cf4c4ca5e26ff1d10a265411c449",
	},
	{
		name:      "SIMON-128/192",
		blockBits: 128,
		key:       "000102030405060708090a0b0c0d0e0f101112131415 1617",
		plaintext: "746865792077657265 2063616c6c6564",
		cipher:    "510bd7dd10d06b779459c4f8a37f5b48",
	},
	{
		name:      "SIMON-128/256",
		blockBits: 128,
		key:       "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		plaintext: "7420746865792061757468 6f72697469",
		cipher:    "8d2b5579afb8a477ea36c4634b841b49",
	},
}
