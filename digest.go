package sha256

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/zeebo/sha256/internal/utils"
)

// Digest is a SHA-256 digest: the final chaining value in big-endian order.
type Digest [Size]byte

func digestOf(chain *[8]uint32) (d Digest) {
	utils.WordsToBytes(chain, (*[Size]byte)(&d))
	return d
}

// Hex returns the digest as 64 lowercase hexadecimal characters.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// String implements fmt.Stringer and returns the same value as Hex.
func (d Digest) String() string {
	return d.Hex()
}

// ParseHex parses a 64 character hexadecimal digest in either case.
func ParseHex(s string) (d Digest, err error) {
	if len(s) != 2*Size {
		return d, errors.Errorf("invalid digest length: %d", len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, errors.Wrap(err, "invalid digest")
	}
	return d, nil
}
