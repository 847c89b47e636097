// go/src/core/molecule/molecule.go
package molecule

import (
	"fmt"
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/molecule-core/go/src/common"
	"github.com/molecule-core/go/src/core/atom"
	"github.com/molecule-core/go/src/core/wallet"
	logger "github.com/molecule-core/go/src/log"
)

// Molecule is a signed, ordered collection of atoms bound by a single
// molecular hash and (unless anonymous) a bundle identifying the signer.
type Molecule struct {
	MolecularHash string
	CellSlug      string
	Bundle        string
	Status        string
	Atoms         []*atom.Atom
	CreatedAt     int64
}

// New starts an empty molecule targeting cellSlug. Builders append atoms
// to it; each append clears any previously computed MolecularHash, since
// it no longer reflects the atom sequence.
func New(cellSlug string) *Molecule {
	return &Molecule{
		CellSlug:  cellSlug,
		CreatedAt: common.NowMillis(),
	}
}

func (m *Molecule) append(atoms ...*atom.Atom) {
	m.Atoms = append(m.Atoms, atoms...)
	m.MolecularHash = ""
}

// InitValue appends the two atoms of a value transfer: a debit from
// source (tagged with the remainder wallet that absorbs source's unspent
// balance) and a credit to recipient (§4.4).
func (m *Molecule) InitValue(source, recipient, remainder *wallet.Wallet, value string) error {
	start := time.Now()
	err := m.initValue(source, recipient, remainder, value)
	opMetrics.ObserveOp("build", time.Since(start).Seconds(), err)
	if err != nil {
		logger.Errorf("build %s init value failed: %v", m.CellSlug, err)
	}
	return err
}

func (m *Molecule) initValue(source, recipient, remainder *wallet.Wallet, value string) error {
	debitPosition := source.Position
	creditPosition, err := wallet.NextPosition(source.Position, 1)
	if err != nil {
		return fmt.Errorf("molecule: init value: %w", err)
	}

	now := common.NowMillis()

	debit := atom.New(debitPosition, source.Address, atom.IsotopeValue, source.Token, "-"+value, "remainderWallet", remainder.Address, now)
	debit.SetMeta("remainderPosition", remainder.Position)

	credit := atom.New(creditPosition, recipient.Address, atom.IsotopeValue, source.Token, value, "walletBundle", recipient.Bundle, now)

	m.append(debit, credit)
	return nil
}

// InitTokenCreation appends the single atom minting amount of a new token
// to recipient, sourced from source's signing slot (§4.4). tokenMeta is
// augmented in place with recipient's address/position if the caller has
// not already supplied a walletAddress/walletPosition entry.
func (m *Molecule) InitTokenCreation(source, recipient *wallet.Wallet, amount string, tokenMeta *orderedmap.OrderedMap[string, string]) error {
	start := time.Now()
	err := m.initTokenCreation(source, recipient, amount, tokenMeta)
	opMetrics.ObserveOp("build", time.Since(start).Seconds(), err)
	if err != nil {
		logger.Errorf("build %s init token creation failed: %v", m.CellSlug, err)
	}
	return err
}

func (m *Molecule) initTokenCreation(source, recipient *wallet.Wallet, amount string, tokenMeta *orderedmap.OrderedMap[string, string]) error {
	if tokenMeta == nil {
		tokenMeta = orderedmap.NewOrderedMap[string, string]()
	}
	if _, ok := tokenMeta.Get("walletAddress"); !ok {
		tokenMeta.Set("address", recipient.Address)
	}
	if _, ok := tokenMeta.Get("walletPosition"); !ok {
		tokenMeta.Set("position", recipient.Position)
	}

	a := atom.New(source.Position, source.Address, atom.IsotopeTokenCreation, source.Token, amount, "token", recipient.Token, common.NowMillis())
	a.Meta = tokenMeta

	m.append(a)
	return nil
}

// InitMeta appends a single metadata atom carrying meta about metaId,
// signed from wallet's slot (§4.4).
func (m *Molecule) InitMeta(w *wallet.Wallet, meta *orderedmap.OrderedMap[string, string], metaType, metaID string) {
	start := time.Now()
	a := atom.New(w.Position, w.Address, atom.IsotopeMeta, w.Token, "", metaType, metaID, common.NowMillis())
	if meta != nil {
		a.Meta = meta
	}
	m.append(a)
	opMetrics.ObserveOp("build", time.Since(start).Seconds(), nil)
}
