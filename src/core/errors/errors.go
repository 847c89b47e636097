// go/src/core/errors/errors.go
package errors

import "errors"

// Sentinel errors returned by the molecule and sealed-box packages. Callers match these with errors.Is; wrapped context is added
// with fmt.Errorf's %w verb at each call site rather than by defining a
// new sentinel per failure.
var (
	// ErrAtomsNotFound is returned when an operation that needs at least
	// one atom is given none.
	ErrAtomsNotFound = errors.New("molecule: no atoms")

	// ErrAtomsMalformed is returned when a wire-decoded atom is missing a
	// field required to reconstruct its hash contribution.
	ErrAtomsMalformed = errors.New("molecule: malformed atom")

	// ErrInvalidValue is returned when a value isotope atom carries a
	// value that does not parse as a base-10 rational. A token whose value
	// isotopes do not net to zero is reported as a false verification
	// result, not as this error.
	ErrInvalidValue = errors.New("molecule: invalid value")

	// ErrKeySizeMismatch is returned by the sealed-box package when a
	// recipient key argument is nil.
	ErrKeySizeMismatch = errors.New("molecule: key size mismatch")

	// ErrSignatureMismatch names a signature disagreement. No function in
	// this module returns it: verification reports a recomputed molecular
	// hash or OTS address that disagrees with the molecule as a false
	// result.
	ErrSignatureMismatch = errors.New("molecule: signature mismatch")
)
