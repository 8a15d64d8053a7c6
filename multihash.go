package sha256

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"
)

// Multihash returns the digest tagged as sha2-256 in multihash form.
func (d Digest) Multihash() multihash.Multihash {
	mh, err := multihash.Encode(d[:], uint64(multicodec.Sha2_256))
	if err != nil {
		// the code is registered and the length always matches
		panic(err)
	}
	return multihash.Multihash(mh)
}

// CID returns a version 1 CID addressing raw bytes with this digest.
func (d Digest) CID() cid.Cid {
	return cid.NewCidV1(uint64(multicodec.Raw), d.Multihash())
}

// Multibase encodes the multihash of the digest with the named multibase
// encoding, for example "base32" or "base58btc".
func (d Digest) Multibase(base string) (string, error) {
	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return "", errors.Wrapf(err, "multibase %q", base)
	}
	return enc.Encode(d.Multihash()), nil
}

// FromMultihash extracts a digest from a sha2-256 multihash.
func FromMultihash(mh multihash.Multihash) (d Digest, err error) {
	dec, err := multihash.Decode(mh)
	if err != nil {
		return d, errors.Wrap(err, "invalid multihash")
	}
	if dec.Code != uint64(multicodec.Sha2_256) {
		return d, errors.Errorf("unexpected multihash code: %#x", dec.Code)
	}
	if len(dec.Digest) != Size {
		return d, errors.Errorf("unexpected digest length: %d", len(dec.Digest))
	}
	copy(d[:], dec.Digest)
	return d, nil
}
