// go/src/core/molecule/hash.go
package molecule

import (
	"encoding/hex"

	"github.com/molecule-core/go/src/common"
	"github.com/molecule-core/go/src/core/atom"
)

// base17Symbols is the symbol table the molecular hash's hex digest is
// re-expressed in, the extra normalization the signature scheme needs
// (§4.3).
const base17Symbols = "0123456789abcdefg"

// ComputeMolecularHash derives the 64-char base-17 molecular hash of
// atoms in their given order; it never sorts them. Signing and
// VerifyMolecularHash both call it on the stored order (only OTS
// reconstruction sorts a copy by position).
func ComputeMolecularHash(atoms []*atom.Atom) (string, error) {
	n := len(atoms)
	var buf []byte
	for _, a := range atoms {
		buf = a.AppendCanonical(buf, n)
	}

	digest := common.Shake256(buf, 256)
	hexDigest := hex.EncodeToString(digest)

	base17, err := common.CharsetBaseConvert(hexDigest, 16, 17, base17Symbols)
	if err != nil {
		return "", err
	}

	return common.PadLeft(base17, '0', common.MolecularHashLen), nil
}
