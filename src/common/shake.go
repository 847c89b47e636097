// go/src/common/shake.go
package common

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Shake256 computes the SHAKE256 extendable-output hash of input, squeezing
// outputBits bits of digest. outputBits must be a positive multiple of 8.
// An empty input yields an empty digest regardless of outputBits, matching
// the original implementation's early return rather than squeezing a
// digest of an empty sponge.
func Shake256(input []byte, outputBits int) []byte {
	if len(input) == 0 {
		return nil
	}
	out := make([]byte, outputBits/8)
	sha3.ShakeSum256(out, input)
	return out
}

// Shake256Hex is Shake256 over a string input, returned as lowercase hex.
func Shake256Hex(input string, outputBits int) string {
	return hex.EncodeToString(Shake256([]byte(input), outputBits))
}
