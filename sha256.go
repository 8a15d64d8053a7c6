package sha256

import (
	"github.com/zeebo/sha256/internal/alg/compress"
	"github.com/zeebo/sha256/internal/alg/pad"
	"github.com/zeebo/sha256/internal/consts"
)

//
// hasher contains state for a streaming sha256 hash
//

type hasher struct {
	len   uint64
	chain [8]uint32
	bufn  int
	buf   [consts.BlockLen]byte
}

func newHasher() hasher {
	return hasher{chain: consts.IV}
}

func (a *hasher) reset() {
	a.len = 0
	a.chain = consts.IV
	a.bufn = 0
}

func (a *hasher) update(buf []byte) {
	a.len += uint64(len(buf))

	if a.bufn > 0 {
		n := copy(a.buf[a.bufn:], buf)
		a.bufn += n
		buf = buf[n:]

		if a.bufn < consts.BlockLen {
			return
		}
		compress.Blocks(&a.chain, a.buf[:])
		a.bufn = 0
	}

	if n := len(buf) &^ (consts.BlockLen - 1); n > 0 {
		compress.Blocks(&a.chain, buf[:n])
		buf = buf[n:]
	}

	a.bufn = copy(a.buf[:], buf)
}

// finalize frames the buffered tail into a copy of the chaining value so
// that the hasher can keep accepting writes afterwards.
func (a *hasher) finalize() Digest {
	chain := a.chain
	compress.Blocks(&chain, pad.Frame(a.buf[:a.bufn], a.len))
	return digestOf(&chain)
}

//
// one shot hashing over the fully padded message
//

func sum(data []byte) Digest {
	chain := consts.IV
	compress.Blocks(&chain, pad.Pad(data))
	return digestOf(&chain)
}
