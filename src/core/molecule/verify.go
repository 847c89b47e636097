// go/src/core/molecule/verify.go
package molecule

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/molecule-core/go/src/common"
	"github.com/molecule-core/go/src/core/atom"
	"github.com/molecule-core/go/src/core/errors"
	"github.com/molecule-core/go/src/core/wallet"
	"github.com/molecule-core/go/src/crypto/wots"
	logger "github.com/molecule-core/go/src/log"
)

// Verify checks m's molecular hash, its one-time signature, and value
// conservation across its V-isotope atoms. It returns an error only when
// an input is structurally unparseable (ErrInvalidValue); any other
// failure is reported as a false return, not an error (§4.6, §7).
func Verify(m *Molecule) (bool, error) {
	traceID := logger.NewTraceID()
	start := time.Now()

	ok, err := verify(m)

	opMetrics.ObserveOp("verify", time.Since(start).Seconds(), err)
	if err != nil {
		logger.Errorf("[%s] verify %s failed: %v", traceID, m.CellSlug, err)
	} else {
		logger.Infof("[%s] verify %s: ok=%v", traceID, m.CellSlug, ok)
	}
	return ok, err
}

func verify(m *Molecule) (bool, error) {
	if !VerifyMolecularHash(m) {
		return false, nil
	}
	ok, err := VerifyOts(m)
	if err != nil || !ok {
		return false, err
	}
	return VerifyTokenIsotopeV(m)
}

// VerifyMolecularHash recomputes the molecular hash from m.Atoms in their
// stored order and compares it against m.MolecularHash.
func VerifyMolecularHash(m *Molecule) bool {
	if m.MolecularHash == "" || len(m.Atoms) == 0 {
		return false
	}

	recomputed, err := ComputeMolecularHash(m.Atoms)
	if err != nil {
		return false
	}
	return recomputed == m.MolecularHash
}

// sortedByPosition returns a copy of atoms ordered ascending by Position
// interpreted as a hex big-integer, the canonical order OTS
// reconstruction requires regardless of the order atoms were signed in
// (§4.6 step 2).
func sortedByPosition(atoms []*atom.Atom) []*atom.Atom {
	sorted := make([]*atom.Atom, len(atoms))
	copy(sorted, atoms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return wallet.PositionValue(sorted[i].Position).Cmp(wallet.PositionValue(sorted[j].Position)) < 0
	})
	return sorted
}

// VerifyOts reconstructs the sender's wallet address from the atoms'
// concatenated OtsFragments, taken in position-sorted order, and checks it
// against the first sorted atom's WalletAddress (§4.6).
func VerifyOts(m *Molecule) (bool, error) {
	if len(m.Atoms) == 0 || m.MolecularHash == "" {
		return false, nil
	}

	sorted := sortedByPosition(m.Atoms)

	var otsBuilder strings.Builder
	for _, a := range sorted {
		otsBuilder.WriteString(a.OtsFragment)
	}
	ots := otsBuilder.String()
	if len(ots) != common.WalletKeyHexLen {
		return false, nil
	}

	weights := wots.NormalizedChunkWeights(m.MolecularHash)
	if len(weights) < wots.ChainCount {
		return false, nil
	}
	chunks := common.Chunks(ots, common.WotsChunkHexLen)
	if len(chunks) != wots.ChainCount {
		return false, nil
	}

	keyFragments := make([]byte, 0, common.WalletKeyHexLen)
	for i := 0; i < wots.ChainCount; i++ {
		iterations := wots.VerifierIterations(weights[i])
		keyFragments = append(keyFragments, wots.IterateChunk(chunks[i], iterations)...)
	}

	digest := common.Shake256Hex(string(keyFragments), 8192)
	address := common.Shake256Hex(digest, 256)

	return address == sorted[0].WalletAddress, nil
}

// VerifyTokenIsotopeV checks that, for every distinct token appearing on
// V-isotope atoms in m, the sum of their values is exactly zero. Values
// are parsed as arbitrary-precision rationals rather than floating point,
// since float summation loses exactness on large or many-decimal balances
// (the defect this replaces is documented in DESIGN.md).
func VerifyTokenIsotopeV(m *Molecule) (bool, error) {
	sums := make(map[string]*big.Rat)
	order := make([]string, 0)

	for _, a := range m.Atoms {
		if a.Isotope != atom.IsotopeValue {
			continue
		}

		v, ok := new(big.Rat).SetString(a.Value)
		if !ok {
			return false, fmt.Errorf("%w: atom value %q is not a decimal number", errors.ErrInvalidValue, a.Value)
		}

		sum, exists := sums[a.Token]
		if !exists {
			sum = new(big.Rat)
			sums[a.Token] = sum
			order = append(order, a.Token)
		}
		sum.Add(sum, v)
	}

	for _, token := range order {
		if sums[token].Sign() != 0 {
			return false, nil
		}
	}

	return true, nil
}

