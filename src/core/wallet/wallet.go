// go/src/core/wallet/wallet.go
package wallet

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"golang.org/x/crypto/nacl/box"

	"github.com/molecule-core/go/src/common"
)

// Wallet is a derived, position-bound signing identity: a WOTS+ seed key,
// the public address it derives to, and a bundle hash identifying the
// secret it came from independent of position. EncryptKey/DecryptKey are
// an orthogonal asymmetric keypair for sealed-box messaging; signing never
// touches them.
type Wallet struct {
	Position   string
	Token      string
	Key        string
	Address    string
	Bundle     string
	EncryptKey *[32]byte
	DecryptKey *[32]byte
}

// GenerateBundleHash derives the stable, position-independent identity
// hash of a secret (§4.2).
func GenerateBundleHash(secret string) string {
	return common.Shake256Hex(secret, 256)
}

// GenerateWalletKey derives the 2048-hex-char WOTS+ seed key for
// (secret, token, position) (§4.2). secret and position are both parsed
// as hex integers; a non-hex secret or position is an error.
func GenerateWalletKey(secret, token, position string) (string, error) {
	indexed, err := common.HexSum(secret, position)
	if err != nil {
		return "", fmt.Errorf("wallet: derive key: %w", err)
	}
	intermediate := indexed + token
	return common.Shake256Hex(common.Shake256Hex(intermediate, 8192), 8192), nil
}

// GenerateWalletAddress derives the 64-hex-char public address a WOTS+ seed
// key signs under (§4.2).
func GenerateWalletAddress(key string) (string, error) {
	if len(key) != common.WalletKeyHexLen {
		return "", fmt.Errorf("wallet: key must be %d hex chars, got %d", common.WalletKeyHexLen, len(key))
	}

	fragments := common.Chunks(key, common.WotsChunkHexLen)
	digestSponge := make([]byte, 0, common.WalletKeyHexLen)
	for _, frag := range fragments {
		for i := 0; i < common.WotsChainCount; i++ {
			frag = common.Shake256Hex(frag, 512)
		}
		digestSponge = append(digestSponge, frag...)
	}

	return common.Shake256Hex(common.Shake256Hex(string(digestSponge), 8192), 256), nil
}

var (
	defaultCacheOnce sync.Once
	defaultCache     *DerivationCache
)

// deriveCached serves (key, address) for (secret, token, position) from the
// process-wide derivation cache, falling back to a direct, uncached
// derivation if the cache itself failed to initialize (a dead CSPRNG, say)
// so a cache outage never turns into a wallet-creation outage.
func deriveCached(secret, token, position string) (key, address string, err error) {
	defaultCacheOnce.Do(func() {
		defaultCache, _ = NewDerivationCache(0)
	})
	if defaultCache == nil {
		key, err = GenerateWalletKey(secret, token, position)
		if err != nil {
			return "", "", err
		}
		address, err = GenerateWalletAddress(key)
		if err != nil {
			return "", "", err
		}
		return key, address, nil
	}
	return defaultCache.Derive(secret, token, position)
}

// New derives a Wallet for secret bound to token and position. An empty
// position draws a fresh one from the CSPRNG, saltLength hex characters
// long; passing saltLength <= 0 uses common.DefaultSaltLength. The
// (key, address) pair is served from the shared derivation cache, so
// re-deriving the same (secret, token, position) skips the 258 SHAKE256
// invocations GenerateWalletAddress costs.
func New(secret, token, position string, saltLength int) (*Wallet, error) {
	if token == "" {
		token = common.DefaultToken
	}
	if saltLength <= 0 {
		saltLength = common.DefaultSaltLength
	}

	if position == "" {
		p, err := common.RandomString(saltLength, common.PositionAlphabet)
		if err != nil {
			return nil, fmt.Errorf("wallet: generate position: %w", err)
		}
		position = p
	}

	key, address, err := deriveCached(secret, token, position)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		Position: position,
		Token:    token,
		Key:      key,
		Address:  address,
		Bundle:   GenerateBundleHash(secret),
	}, nil
}

// AttachEncryptionKeypair generates and attaches a fresh X25519 keypair
// for sealed-box messaging. It does not participate in, or share any
// material with, the WOTS+ signing key.
func (w *Wallet) AttachEncryptionKeypair() error {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("wallet: generate encryption keypair: %w", err)
	}
	w.EncryptKey = pub
	w.DecryptKey = priv
	return nil
}

// NextPosition returns position advanced by delta as a hex big-integer,
// the scheme by which successive atoms in one value-transfer molecule
// claim disjoint one-time keys (§3, §4.4).
func NextPosition(position string, delta int64) (string, error) {
	return common.HexAdd(position, delta)
}

// PositionValue parses a hex position as a big.Int for sorted comparisons
// (§4.6 step 2); malformed positions sort as zero rather than erroring,
// since verification treats an unparseable position as a hash mismatch,
// not a crash.
func PositionValue(position string) *big.Int {
	n := new(big.Int)
	if position == "" {
		return n
	}
	if _, ok := n.SetString(position, 16); !ok {
		n.SetInt64(0)
	}
	return n
}
