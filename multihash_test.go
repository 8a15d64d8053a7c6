package sha256

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
	"github.com/zeebo/assert"
)

func TestMultihash(t *testing.T) {
	d := Sum256(nil)
	mh := d.Multihash()

	assert.Equal(t, mh.HexString(), "1220"+vectors[0].hash)

	dec, err := multihash.Decode(mh)
	assert.NoError(t, err)
	assert.Equal(t, dec.Code, uint64(multihash.SHA2_256))
	assert.Equal(t, string(dec.Digest), string(d[:]))

	got, err := FromMultihash(mh)
	assert.NoError(t, err)
	assert.Equal(t, got, d)
}

func TestMultihashMatchesLibrary(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	exp, err := multihash.Sum(data, multihash.SHA2_256, -1)
	assert.NoError(t, err)
	assert.Equal(t, Sum256(data).Multihash().String(), exp.String())
}

func TestFromMultihashWrongCode(t *testing.T) {
	mh, err := multihash.Sum([]byte("abc"), multihash.SHA2_512, -1)
	assert.NoError(t, err)

	_, err = FromMultihash(mh)
	assert.Error(t, err)

	_, err = FromMultihash(multihash.Multihash{0x12})
	assert.Error(t, err)
}

func TestCID(t *testing.T) {
	c := Sum256(nil).CID()
	assert.Equal(t, c.String(), "bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku")
	assert.Equal(t, c.Type(), uint64(cid.Raw))

	c = Sum256([]byte("abc")).CID()
	assert.Equal(t, c.String(), "bafkreif2pall7dybz7vecqka3zo24irdwabwdi4wc55jznaq75q7eaavvu")

	parsed, err := cid.Decode(c.String())
	assert.NoError(t, err)
	assert.Equal(t, parsed.Equals(c), true)
}

func TestMultibase(t *testing.T) {
	d := Sum256([]byte("abc"))

	for _, base := range []string{"base32", "base58btc", "base64url", "base16"} {
		s, err := d.Multibase(base)
		assert.NoError(t, err)

		_, data, err := multibase.Decode(s)
		assert.NoError(t, err)
		assert.Equal(t, string(data), string(d.Multihash()))
	}

	_, err := d.Multibase("base1000")
	assert.Error(t, err)
}
