// Package compress implements the SHA-256 message schedule and compression
// function.
package compress

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func ch(e, f, g uint32) uint32 { return e&f ^ ^e&g }

func maj(a, b, c uint32) uint32 { return a&b ^ a&c ^ b&c }

// Schedule expands a block into the 64 word message schedule.
func Schedule(block *[16]uint32, w *[consts.Rounds]uint32) {
	copy(w[:16], block[:])
	for i := 16; i < consts.Rounds; i++ {
		w[i] = w[i-16] + sigma0(w[i-15]) + w[i-7] + sigma1(w[i-2])
	}
}

// Compress mixes one block into the chaining value. The chaining value is
// only written once, after all rounds have run.
func Compress(chain *[8]uint32, block *[16]uint32) {
	var w [consts.Rounds]uint32
	Schedule(block, &w)

	a, b, c, d := chain[0], chain[1], chain[2], chain[3]
	e, f, g, h := chain[4], chain[5], chain[6], chain[7]

	for i := 0; i < consts.Rounds; i++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + consts.K[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b, c)
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	chain[0] += a
	chain[1] += b
	chain[2] += c
	chain[3] += d
	chain[4] += e
	chain[5] += f
	chain[6] += g
	chain[7] += h
}

// Blocks compresses every block of p into the chaining value in order. The
// length of p must be a multiple of the block size.
func Blocks(chain *[8]uint32, p []byte) {
	if len(p)%consts.BlockLen != 0 {
		panic("compress: input is not a whole number of blocks")
	}

	var block [16]uint32
	for len(p) > 0 {
		utils.BytesToWords((*[consts.BlockLen]byte)(p), &block)
		Compress(chain, &block)
		p = p[consts.BlockLen:]
	}
}
