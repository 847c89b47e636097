// go/src/crypto/wots/enumerate_test.go
package wots

import "testing"

func TestEnumerateFixedPoints(t *testing.T) {
	cases := map[string]int{"8": 0, "g": 8, "0": -8}
	for sym, want := range cases {
		got := Enumerate(sym)
		if len(got) != 1 || got[0] != want {
			t.Errorf("Enumerate(%q) = %v, want [%d]", sym, got, want)
		}
	}
}

func TestEnumerateSkipsUnknownChars(t *testing.T) {
	got := Enumerate("8z0")
	if len(got) != 2 || got[0] != 0 || got[1] != -8 {
		t.Fatalf("Enumerate(%q) = %v, want [0 -8]", "8z0", got)
	}
}

func TestNormalizeRebalancesToZero(t *testing.T) {
	v := []int{8, 8, 8, 8}
	got := Normalize(v)
	for i, x := range got {
		if x != 0 {
			t.Fatalf("Normalize([8,8,8,8])[%d] = %d, want 0", i, x)
		}
	}
}

func TestNormalizeAlreadyBalanced(t *testing.T) {
	v := []int{-3, 1, 2}
	got := Normalize(v)
	if got[0] != -3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("Normalize mutated an already-zero-sum vector: %v", got)
	}
}

func TestNormalizeAlwaysSumsToZeroAndStaysInRange(t *testing.T) {
	for seed := -200; seed <= 200; seed += 7 {
		v := []int{seed, seed / 2, -seed + 3, 5}
		got := Normalize(append([]int(nil), v...))

		sum := 0
		for _, x := range got {
			if x < -8 || x > 8 {
				t.Fatalf("Normalize produced out-of-range element %d for seed %d", x, seed)
			}
			sum += x
		}
		if sum != 0 {
			t.Fatalf("Normalize(%v) sums to %d, want 0", v, sum)
		}
	}
}

func TestNormalizedChunkWeightsOfValidHashSumsToZero(t *testing.T) {
	hash := "0123456789abcdefg0123456789abcdefg0123456789abcdefg0123456789abc"
	weights := NormalizedChunkWeights(hash)

	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum != 0 {
		t.Fatalf("NormalizedChunkWeights sums to %d, want 0", sum)
	}
}

func TestSignerVerifierIterationsSumToSixteen(t *testing.T) {
	for w := -8; w <= 8; w++ {
		s := SignerIterations(w)
		v := VerifierIterations(w)
		if s+v != 16 {
			t.Errorf("weight %d: SignerIterations+VerifierIterations = %d, want 16", w, s+v)
		}
		if s < 0 || s > 16 || v < 0 || v > 16 {
			t.Errorf("weight %d: iteration counts out of [0,16]: signer=%d verifier=%d", w, s, v)
		}
	}
}
