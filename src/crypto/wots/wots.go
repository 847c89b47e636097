// go/src/crypto/wots/wots.go
package wots

import (
	"github.com/molecule-core/go/src/common"
)

// ChainCount is the number of SHAKE256 chains a WOTS+ key splits into, and
// the number of chunks a one-time signature is split across.
const ChainCount = 16

// IterateChunk applies SHAKE256-512 to chunk exactly count times,
// feeding each output back in as the next input. It is the shared chain
// primitive both signing (count = 8 - H[i]) and verification
// (count = 8 + H[i]) drive, so the two sides can never drift apart on
// hash choice or output width.
func IterateChunk(chunk string, count int) string {
	for i := 0; i < count; i++ {
		chunk = common.Shake256Hex(chunk, 512)
	}
	return chunk
}

// SignerIterations returns the number of chain iterations chunk i spends
// at sign time, given the normalized chunk weight H[i].
func SignerIterations(weight int) int {
	return 8 - weight
}

// VerifierIterations returns the number of chain iterations chunk i
// spends at verify time, given the same normalized chunk weight H[i].
// SignerIterations(w) + VerifierIterations(w) == 16 for every w in
// [-8, +8].
func VerifierIterations(weight int) int {
	return 8 + weight
}
