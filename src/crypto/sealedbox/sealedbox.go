// go/src/crypto/sealedbox/sealedbox.go
package sealedbox

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/box"

	"github.com/molecule-core/go/src/core/errors"
)

// KeySize is the length in bytes of a sealed-box public or private key.
const KeySize = 32

// Encrypt anonymously encrypts message for recipientPublicKey: the
// sender's key material never leaves this call, so the ciphertext alone
// cannot be traced back to whoever sent it. This has no relationship to
// WOTS+ signing — it is an independent utility for wallets that have
// attached an encryption keypair.
//
// An empty message encrypts to an empty ciphertext without the sealing
// primitive ever running, matching encryptMessage's early return.
func Encrypt(message []byte, recipientPublicKey *[KeySize]byte) ([]byte, error) {
	if len(message) == 0 {
		return nil, nil
	}
	if recipientPublicKey == nil {
		return nil, fmt.Errorf("%w: recipient public key is nil", errors.ErrKeySizeMismatch)
	}

	sealed, err := box.SealAnonymous(nil, message, recipientPublicKey, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("sealedbox: seal: %w", err)
	}
	return sealed, nil
}

// Decrypt opens a message sealed with Encrypt, given the recipient's
// keypair. Matching decryptMessage, an empty or too-short ciphertext and a
// failed open (wrong key, tampered ciphertext) all return an empty
// plaintext rather than an error; only a missing keypair is reported as
// ErrKeySizeMismatch.
func Decrypt(sealed []byte, publicKey, privateKey *[KeySize]byte) ([]byte, error) {
	if len(sealed) == 0 {
		return nil, nil
	}
	if publicKey == nil || privateKey == nil {
		return nil, fmt.Errorf("%w: recipient keypair is nil", errors.ErrKeySizeMismatch)
	}

	if len(sealed) < box.AnonymousOverhead {
		return nil, nil
	}

	message, ok := box.OpenAnonymous(nil, sealed, publicKey, privateKey)
	if !ok {
		return nil, nil
	}
	return message, nil
}
