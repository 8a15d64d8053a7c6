package consts

import "golang.org/x/sys/cpu"

// IsBigEndian reports whether the host stores words most significant byte
// first, in which case a block can be viewed as words without swapping.
const IsBigEndian = cpu.IsBigEndian
