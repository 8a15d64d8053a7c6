// Package pad implements the SHA-256 message padding: a single 0x80 marker,
// zero fill, and the message length in bits as a big-endian 64 bit integer,
// extending the message to a whole number of blocks.
package pad

import (
	"encoding/binary"

	"github.com/zeebo/sha256/internal/consts"
)

// Len returns the padded length of an n byte message: the smallest multiple
// of the block size that fits the message, the marker and the length field.
func Len(n int) int {
	return (n + 1 + consts.LenField + consts.BlockLen - 1) / consts.BlockLen * consts.BlockLen
}

// Pad returns a freshly allocated padded copy of msg.
func Pad(msg []byte) []byte {
	return Frame(msg, uint64(len(msg)))
}

// Frame pads the unprocessed tail of a message that is total bytes long in
// all. Everything before the tail must already have been consumed in whole
// blocks, so the tail and total have to agree modulo the block size.
func Frame(tail []byte, total uint64) []byte {
	if uint64(len(tail))%consts.BlockLen != total%consts.BlockLen {
		panic("pad: tail length does not match total length")
	}

	out := make([]byte, Len(len(tail)))
	copy(out, tail)
	out[len(tail)] = consts.Marker

	// the length is defined modulo 2^64 bits, so shifting off the top is fine.
	bits := total << 3
	field := out[len(out)-consts.LenField:]
	binary.BigEndian.PutUint32(field[0:4], uint32(bits>>32))
	binary.BigEndian.PutUint32(field[4:8], uint32(bits))

	return out
}
