// go/src/core/atom/atom.go
package atom

import (
	"sort"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"
)

// Isotope tags the kind of ledger operation an Atom performs.
type Isotope string

const (
	IsotopeValue         Isotope = "V" // value movement
	IsotopeTokenCreation Isotope = "C" // token creation
	IsotopeMeta          Isotope = "M" // metadata attachment
)

// Atom is one immutable ledger operation inside a molecule. Meta preserves
// caller insertion order (it round-trips the wire's ordered key/value list
// faithfully) but hashing never relies on that order — AppendCanonical
// always walks Meta's keys sorted lexicographically.
type Atom struct {
	Position      string
	WalletAddress string
	Isotope       Isotope
	Token         string
	Value         string
	MetaType      string
	MetaID        string
	Meta          *orderedmap.OrderedMap[string, string]
	OtsFragment   string
	CreatedAt     int64
}

// New returns an Atom with an empty, non-nil Meta map and the given
// createdAt stamp.
func New(position, walletAddress string, isotope Isotope, token, value, metaType, metaID string, createdAt int64) *Atom {
	return &Atom{
		Position:      position,
		WalletAddress: walletAddress,
		Isotope:       isotope,
		Token:         token,
		Value:         value,
		MetaType:      metaType,
		MetaID:        metaID,
		Meta:          orderedmap.NewOrderedMap[string, string](),
		CreatedAt:     createdAt,
	}
}

// SetMeta sets a single meta key in insertion order; repeated sets of the
// same key keep its original position and update its value, matching
// orderedmap's Set semantics.
func (a *Atom) SetMeta(key, value string) {
	a.Meta.Set(key, value)
}

// sortedMetaKeys returns a's meta keys sorted lexicographically, the order
// the canonical hash contribution is required to walk them in regardless
// of insertion order.
func (a *Atom) sortedMetaKeys() []string {
	if a.Meta == nil {
		return nil
	}
	keys := a.Meta.Keys()
	sort.Strings(keys)
	return keys
}

// AppendCanonical appends this atom's hash contribution to dst, given the
// total atom count n of the molecule it belongs to. n is re-appended once
// per atom rather than once for the whole molecule — unusual, but the
// byte-for-byte contract every verifier must reproduce.
func (a *Atom) AppendCanonical(dst []byte, n int) []byte {
	dst = append(dst, strconv.Itoa(n)...)
	dst = append(dst, a.Position...)
	dst = append(dst, a.WalletAddress...)
	dst = append(dst, string(a.Isotope)...)
	dst = append(dst, a.Token...)
	dst = append(dst, a.Value...)
	dst = append(dst, a.MetaType...)
	dst = append(dst, a.MetaID...)

	for _, k := range a.sortedMetaKeys() {
		v, _ := a.Meta.Get(k)
		dst = append(dst, k...)
		if v == "" {
			dst = append(dst, "null"...)
		} else {
			dst = append(dst, v...)
		}
	}

	dst = append(dst, strconv.FormatInt(a.CreatedAt, 10)...)
	return dst
}
