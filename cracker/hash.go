package cracker

import (
	"crypto/md5"
	"encoding/hex"
)

// SimpleHash returns a truncated MD5 digest (first 8 hex chars). It is the
// demo target function: short enough to keep the printout readable, and the
// searchers only ever compare digests, never invert them.
func SimpleHash(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])[:8]
}
