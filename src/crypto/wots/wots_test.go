// go/src/crypto/wots/wots_test.go
package wots

import "testing"

func TestIterateChunkZeroIterationsIsNoop(t *testing.T) {
	chunk := "abcd1234"
	if got := IterateChunk(chunk, 0); got != chunk {
		t.Fatalf("IterateChunk(chunk, 0) = %q, want %q", got, chunk)
	}
}

func TestIterateChunkDeterministic(t *testing.T) {
	a := IterateChunk("seed", 5)
	b := IterateChunk("seed", 5)
	if a != b {
		t.Fatalf("IterateChunk not deterministic: %q != %q", a, b)
	}
}

func TestIterateChunkComposesWithItself(t *testing.T) {
	once := IterateChunk("seed", 3)
	twice := IterateChunk(IterateChunk("seed", 1), 2)
	if once != twice {
		t.Fatalf("IterateChunk(seed,3) = %q, IterateChunk(IterateChunk(seed,1),2) = %q, want equal", once, twice)
	}
}
