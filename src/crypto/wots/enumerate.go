// go/src/crypto/wots/enumerate.go
package wots

// enumerateTable maps each base-17 symbol to its signed weight, the scheme
// by which a molecular hash becomes the per-chunk iteration budget a
// one-time signature spends (§4.7).
var enumerateTable = map[byte]int{
	'0': -8, '1': -7, '2': -6, '3': -5, '4': -4, '5': -3, '6': -2, '7': -1,
	'8': 0,
	'9': 1, 'a': 2, 'b': 3, 'c': 4, 'd': 5, 'e': 6, 'f': 7, 'g': 8,
}

// Enumerate maps each character of a base-17 string to its signed weight.
// Characters outside the table are skipped rather than erroring — a
// well-formed base-17 hash never contains one, and verification treats a
// malformed hash as a downstream mismatch, not a panic.
func Enumerate(hash string) []int {
	out := make([]int, 0, len(hash))
	for i := 0; i < len(hash); i++ {
		if w, ok := enumerateTable[hash[i]]; ok {
			out = append(out, w)
		}
	}
	return out
}

// Normalize adjusts v in place so its elements sum to exactly zero while
// staying within [-8, +8], nudging one unit at a time toward zero from
// whichever side is still room to move (§4.7). It returns v for chaining.
func Normalize(v []int) []int {
	sum := 0
	for _, x := range v {
		sum += x
	}

	for sum != 0 {
		if sum > 0 {
			for i := range v {
				if sum == 0 {
					break
				}
				if v[i] > -8 {
					v[i]--
					sum--
				}
			}
		} else {
			for i := range v {
				if sum == 0 {
					break
				}
				if v[i] < 8 {
					v[i]++
					sum++
				}
			}
		}
	}

	return v
}

// NormalizedChunkWeights returns Normalize(Enumerate(hash)), the vector
// both the signer and verifier index by chunk number to decide each
// chunk's SHAKE256 iteration count.
func NormalizedChunkWeights(hash string) []int {
	return Normalize(Enumerate(hash))
}
