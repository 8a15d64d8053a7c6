package sha256

import "strings"

type vector struct {
	name string
	data string
	hash string
}

func (v vector) input() []byte { return []byte(v.data) }

var vectors = []vector{
	{
		name: "Empty",
		data: "",
		hash: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		name: "ABC",
		data: "abc",
		hash: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		name: "NIST448",
		data: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		hash: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		name: "NIST896",
		data: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		hash: "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
	},
	{
		name: "MillionA",
		data: strings.Repeat("a", 1000000),
		hash: "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
	},
	{
		name: "HelloWorld",
		data: "Hello World",
		hash: "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e",
	},
	{
		name: "QuickBrownFox",
		data: "The quick brown fox jumps over the lazy dog",
		hash: "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
	},
	{
		name: "Emoji",
		data: "😀",
		hash: "f0443a342c5ef54783a111b51ba56c938e474c32324d90c3a60c9c8e3a37e2d9",
	},
	{
		name: "Accents",
		data: "héllo wörld €",
		hash: "a3260bb658a2bce4e8e8b9cd613904a51582e107bd16c453b5530bd56be4937a",
	},
}
