// go/src/core/molecule/sign.go
package molecule

import (
	"fmt"
	"time"

	"github.com/molecule-core/go/src/common"
	"github.com/molecule-core/go/src/core/errors"
	"github.com/molecule-core/go/src/core/wallet"
	"github.com/molecule-core/go/src/crypto/wots"
	logger "github.com/molecule-core/go/src/log"
)

// Sign computes m's molecular hash over its atoms in their current order,
// derives a one-time signature from secret, and distributes it across the
// atoms' OtsFragment fields. It returns the position of the last atom
// that received a fragment (§4.5).
//
// Sign does not sort atoms before hashing or signing: callers must not
// reorder m.Atoms between building and signing, since the signature
// commits to whatever order is present when Sign runs.
func Sign(m *Molecule, secret string, anonymous bool) (string, error) {
	traceID := logger.NewTraceID()
	start := time.Now()

	last, err := sign(m, secret, anonymous)

	opMetrics.ObserveOp("sign", time.Since(start).Seconds(), err)
	if err != nil {
		logger.Errorf("[%s] sign %s failed: %v", traceID, m.CellSlug, err)
	} else {
		logger.Infof("[%s] sign %s: %d atoms, last position %s", traceID, m.CellSlug, len(m.Atoms), last)
	}
	return last, err
}

func sign(m *Molecule, secret string, anonymous bool) (string, error) {
	if len(m.Atoms) == 0 {
		return "", errors.ErrAtomsNotFound
	}

	if !anonymous {
		m.Bundle = wallet.GenerateBundleHash(secret)
	}

	hash, err := ComputeMolecularHash(m.Atoms)
	if err != nil {
		return "", fmt.Errorf("molecule: sign: compute hash: %w", err)
	}
	m.MolecularHash = hash

	first := m.Atoms[0]
	key, err := wallet.GenerateWalletKey(secret, first.Token, first.Position)
	if err != nil {
		return "", fmt.Errorf("molecule: sign: derive key: %w", err)
	}

	chunks := common.Chunks(key, common.WotsChunkHexLen)
	weights := wots.NormalizedChunkWeights(hash)

	ots := make([]byte, 0, common.WalletKeyHexLen)
	for i := 0; i < wots.ChainCount; i++ {
		iterations := wots.SignerIterations(weights[i])
		ots = append(ots, wots.IterateChunk(chunks[i], iterations)...)
	}

	pieces := common.ChunksEven(string(ots), len(m.Atoms))
	last := ""
	for i, piece := range pieces {
		m.Atoms[i].OtsFragment = piece
		last = m.Atoms[i].Position
	}

	return last, nil
}
