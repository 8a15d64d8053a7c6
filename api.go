// Package sha256 implements the SHA-256 hash function in pure Go.
package sha256

import (
	"github.com/zeebo/sha256/internal/alg/encode"
)

var (
	// ErrUnpairedSurrogate is returned when UTF-16 input contains a
	// surrogate code unit that is not part of a valid pair.
	ErrUnpairedSurrogate = encode.ErrUnpairedSurrogate

	// ErrInvalidRune is returned when rune input contains a value that is
	// not a Unicode scalar value.
	ErrInvalidRune = encode.ErrInvalidRune
)

// Hasher is a hash.Hash for SHA-256.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{h: newHasher()}
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but accepts a string. It never returns an error.
func (h *Hasher) WriteString(s string) (int, error) {
	h.h.update([]byte(s))
	return len(s), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.h.finalize()
	return append(b, d[:]...)
}

// Digest returns the digest of everything written so far. The Hasher is not
// modified and may continue to be written to.
func (h *Hasher) Digest() Digest {
	return h.h.finalize()
}

// Sum256 returns the SHA-256 digest of the data.
func Sum256(data []byte) Digest {
	return sum(data)
}

// Hex returns the SHA-256 digest of the data as 64 lowercase hexadecimal
// characters.
func Hex(data []byte) string {
	return sum(data).Hex()
}

// HexString is like Hex but hashes the bytes of the string exactly as they
// are stored. Go strings already hold UTF-8, so no re-encoding happens.
func HexString(s string) string {
	return sum([]byte(s)).Hex()
}

// HexUTF16 hashes the UTF-8 encoding of the UTF-16 text. Unpaired surrogates
// are rejected with an error wrapping ErrUnpairedSurrogate.
func HexUTF16(units []uint16) (string, error) {
	data, err := encode.FromUTF16(units)
	if err != nil {
		return "", err
	}
	return sum(data).Hex(), nil
}

// HexRunes hashes the UTF-8 encoding of the runes. Runes that are not Unicode
// scalar values are rejected with an error wrapping ErrInvalidRune.
func HexRunes(rs []rune) (string, error) {
	data, err := encode.FromRunes(rs)
	if err != nil {
		return "", err
	}
	return sum(data).Hex(), nil
}
