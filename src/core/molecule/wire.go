// go/src/core/molecule/wire.go
package molecule

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/molecule-core/go/src/core/atom"
	"github.com/molecule-core/go/src/core/errors"
)

// wireMeta is one entry of an atom's meta on the wire: a list of
// key/value objects rather than a map, so order is preserved across the
// boundary even though hashing never depends on it (§6).
type wireMeta struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type wireAtom struct {
	Position      string     `json:"position"`
	WalletAddress string     `json:"walletAddress"`
	Isotope       string     `json:"isotope"`
	Token         string     `json:"token"`
	Value         string     `json:"value"`
	MetaType      string     `json:"metaType"`
	MetaID        string     `json:"metaId"`
	Meta          []wireMeta `json:"meta"`
	OtsFragment   string     `json:"otsFragment"`
	CreatedAt     string     `json:"createdAt"`
}

type wireMolecule struct {
	MolecularHash string     `json:"molecularHash"`
	CellSlug      string     `json:"cellSlug"`
	Bundle        string     `json:"bundle"`
	Status        string     `json:"status"`
	CreatedAt     string     `json:"createdAt"`
	Atoms         []wireAtom `json:"atoms"`
}

// MarshalJSON encodes m into the wire shape fixed by §6: createdAt fields
// as decimal strings and meta as an ordered key/value list.
func (m *Molecule) MarshalJSON() ([]byte, error) {
	w := wireMolecule{
		MolecularHash: m.MolecularHash,
		CellSlug:      m.CellSlug,
		Bundle:        m.Bundle,
		Status:        m.Status,
		CreatedAt:     strconv.FormatInt(m.CreatedAt, 10),
	}

	for _, a := range m.Atoms {
		wa := wireAtom{
			Position:      a.Position,
			WalletAddress: a.WalletAddress,
			Isotope:       string(a.Isotope),
			Token:         a.Token,
			Value:         a.Value,
			MetaType:      a.MetaType,
			MetaID:        a.MetaID,
			OtsFragment:   a.OtsFragment,
			CreatedAt:     strconv.FormatInt(a.CreatedAt, 10),
		}
		if a.Meta != nil {
			for el := a.Meta.Front(); el != nil; el = el.Next() {
				wa.Meta = append(wa.Meta, wireMeta{Key: el.Key, Value: el.Value})
			}
		}
		w.Atoms = append(w.Atoms, wa)
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire shape fixed by §6 into m. It fails with
// ErrAtomsMalformed if any atom is missing position, walletAddress, or
// isotope (§7).
func (m *Molecule) UnmarshalJSON(data []byte) error {
	var w wireMolecule
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("molecule: decode: %w", err)
	}

	m.MolecularHash = w.MolecularHash
	m.CellSlug = w.CellSlug
	m.Bundle = w.Bundle
	m.Status = w.Status
	if w.CreatedAt != "" {
		createdAt, err := strconv.ParseInt(w.CreatedAt, 10, 64)
		if err != nil {
			return fmt.Errorf("molecule: decode: createdAt: %w", err)
		}
		m.CreatedAt = createdAt
	}

	m.Atoms = nil
	for _, wa := range w.Atoms {
		if wa.Position == "" || wa.WalletAddress == "" || wa.Isotope == "" {
			return fmt.Errorf("%w: atom missing position, walletAddress, or isotope", errors.ErrAtomsMalformed)
		}

		createdAt := int64(0)
		if wa.CreatedAt != "" {
			v, err := strconv.ParseInt(wa.CreatedAt, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: atom createdAt: %v", errors.ErrAtomsMalformed, err)
			}
			createdAt = v
		}

		a := atom.New(wa.Position, wa.WalletAddress, atom.Isotope(wa.Isotope), wa.Token, wa.Value, wa.MetaType, wa.MetaID, createdAt)
		a.OtsFragment = wa.OtsFragment
		a.Meta = orderedmap.NewOrderedMap[string, string]()
		for _, kv := range wa.Meta {
			a.Meta.Set(kv.Key, kv.Value)
		}

		m.Atoms = append(m.Atoms, a)
	}

	return nil
}
