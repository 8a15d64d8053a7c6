package sha256

import "github.com/zeebo/sha256/internal/consts"

// Size is the size of a SHA-256 digest in bytes.
const Size = consts.Size

// BlockSize is the block size of SHA-256 in bytes.
const BlockSize = consts.BlockLen
