package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/sha256/internal/consts"
)

// BytesToWords loads a block as sixteen big-endian words.
func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	if consts.IsBigEndian {
		*words = *(*[16]uint32)(unsafe.Pointer(bytes))
		return
	}

	for i := range words {
		words[i] = binary.BigEndian.Uint32(bytes[4*i:])
	}
}

// WordsToBytes stores the chaining value as 32 big-endian bytes.
func WordsToBytes(words *[8]uint32, bytes *[32]uint8) {
	if consts.IsBigEndian {
		*bytes = *(*[32]uint8)(unsafe.Pointer(words))
		return
	}

	for i, w := range words {
		binary.BigEndian.PutUint32(bytes[4*i:], w)
	}
}
