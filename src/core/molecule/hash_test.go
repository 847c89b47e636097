// go/src/core/molecule/hash_test.go
package molecule

import (
	"testing"

	"github.com/molecule-core/go/src/core/atom"
)

func TestComputeMolecularHashPadsToSixtyFourChars(t *testing.T) {
	a := atom.New("1", "addr", atom.IsotopeMeta, "", "", "", "", 1)
	hash, err := ComputeMolecularHash([]*atom.Atom{a})
	if err != nil {
		t.Fatalf("ComputeMolecularHash: %v", err)
	}
	if len(hash) != 64 {
		t.Fatalf("ComputeMolecularHash length = %d, want 64", len(hash))
	}
}

func TestComputeMolecularHashDeterministic(t *testing.T) {
	a1 := atom.New("1", "addr", atom.IsotopeMeta, "", "", "", "", 1)
	a2 := atom.New("1", "addr", atom.IsotopeMeta, "", "", "", "", 1)

	h1, err := ComputeMolecularHash([]*atom.Atom{a1})
	if err != nil {
		t.Fatalf("ComputeMolecularHash: %v", err)
	}
	h2, err := ComputeMolecularHash([]*atom.Atom{a2})
	if err != nil {
		t.Fatalf("ComputeMolecularHash: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("ComputeMolecularHash not deterministic: %q != %q", h1, h2)
	}
}

func TestComputeMolecularHashSensitiveToOrder(t *testing.T) {
	a1 := atom.New("1", "addr-a", atom.IsotopeMeta, "", "", "", "", 1)
	a2 := atom.New("2", "addr-b", atom.IsotopeMeta, "", "", "", "", 1)

	forward, err := ComputeMolecularHash([]*atom.Atom{a1, a2})
	if err != nil {
		t.Fatalf("ComputeMolecularHash: %v", err)
	}
	backward, err := ComputeMolecularHash([]*atom.Atom{a2, a1})
	if err != nil {
		t.Fatalf("ComputeMolecularHash: %v", err)
	}

	if forward == backward {
		t.Fatal("ComputeMolecularHash did not depend on atom order")
	}
}
