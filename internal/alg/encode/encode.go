// Package encode converts text held as UTF-16 code units or Unicode scalars
// into UTF-8 bytes for hashing.
//
// Malformed input is rejected rather than repaired: substituting U+FFFD would
// silently map distinct inputs to the same digest.
package encode

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnpairedSurrogate is returned for a high surrogate that is not
	// directly followed by a low surrogate, or a low surrogate that is not
	// directly preceded by a high one.
	ErrUnpairedSurrogate = errors.New("unpaired surrogate")

	// ErrInvalidRune is returned for a rune that is not a Unicode scalar
	// value: negative, a surrogate, or above U+10FFFF.
	ErrInvalidRune = errors.New("invalid rune")
)

const (
	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrEnd  = 0xE000
	maxRune  = 0x10FFFF
	surrSelf = 0x10000
)

// FromUTF16 returns the UTF-8 encoding of the UTF-16 code units.
func FromUTF16(units []uint16) ([]byte, error) {
	if out, ok := ascii(units); ok {
		return out, nil
	}

	out := make([]byte, 0, 3*len(units))
	for i := 0; i < len(units); i++ {
		switch u := rune(units[i]); {
		case u < surrHigh || u >= surrEnd:
			out = appendRune(out, u)

		case u < surrLow && i+1 < len(units) && isLow(units[i+1]):
			r := surrSelf + ((u-surrHigh)<<10 | (rune(units[i+1]) - surrLow))
			out = appendRune(out, r)
			i++

		default:
			return nil, errors.Wrapf(ErrUnpairedSurrogate, "code unit %#04x at offset %d", units[i], i)
		}
	}
	return out, nil
}

// FromRunes returns the UTF-8 encoding of the runes.
func FromRunes(rs []rune) ([]byte, error) {
	if out, ok := ascii(rs); ok {
		return out, nil
	}

	out := make([]byte, 0, 4*len(rs))
	for i, r := range rs {
		if r < 0 || r > maxRune || (r >= surrHigh && r < surrEnd) {
			return nil, errors.Wrapf(ErrInvalidRune, "rune %#x at offset %d", r, i)
		}
		out = appendRune(out, r)
	}
	return out, nil
}

func isLow(u uint16) bool { return u >= surrLow && u < surrEnd }

// ascii narrows the input directly when every element is below 0x80.
func ascii[T uint16 | rune](in []T) ([]byte, bool) {
	for _, v := range in {
		if v < 0 || v >= 0x80 {
			return nil, false
		}
	}

	out := make([]byte, len(in))
	for i, v := range in {
		out[i] = byte(v)
	}
	return out, true
}

// appendRune appends the UTF-8 form of r, which must be a scalar value.
func appendRune(out []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(out, byte(r))
	case r < 0x800:
		return append(out,
			0xC0|byte(r>>6),
			0x80|byte(r)&0x3F)
	case r < 0x10000:
		return append(out,
			0xE0|byte(r>>12),
			0x80|byte(r>>6)&0x3F,
			0x80|byte(r)&0x3F)
	default:
		return append(out,
			0xF0|byte(r>>18),
			0x80|byte(r>>12)&0x3F,
			0x80|byte(r>>6)&0x3F,
			0x80|byte(r)&0x3F)
	}
}
