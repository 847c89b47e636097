// go/src/core/wallet/wallet_test.go
package wallet

import (
	"strings"
	"testing"

	"github.com/molecule-core/go/src/common"
)

func repeat(s string, n int) string {
	return strings.Repeat(s, n)
}

func TestGenerateWalletKeyDeterministic(t *testing.T) {
	secret := repeat("ab", 1024)
	token := "USER"
	position := repeat("0", 64)

	k1, err := GenerateWalletKey(secret, token, position)
	if err != nil {
		t.Fatalf("GenerateWalletKey: %v", err)
	}
	k2, err := GenerateWalletKey(secret, token, position)
	if err != nil {
		t.Fatalf("GenerateWalletKey: %v", err)
	}

	if k1 != k2 {
		t.Fatalf("GenerateWalletKey not deterministic: %q != %q", k1, k2)
	}
	if len(k1) != 2048 {
		t.Fatalf("GenerateWalletKey length = %d, want 2048", len(k1))
	}
}

func TestGenerateWalletAddressStableAndWellFormed(t *testing.T) {
	secret := repeat("ab", 1024)
	token := "USER"
	position := repeat("0", 64)

	key, err := GenerateWalletKey(secret, token, position)
	if err != nil {
		t.Fatalf("GenerateWalletKey: %v", err)
	}

	a1, err := GenerateWalletAddress(key)
	if err != nil {
		t.Fatalf("GenerateWalletAddress: %v", err)
	}
	a2, err := GenerateWalletAddress(key)
	if err != nil {
		t.Fatalf("GenerateWalletAddress: %v", err)
	}

	if a1 != a2 {
		t.Fatalf("GenerateWalletAddress not deterministic: %q != %q", a1, a2)
	}
	if len(a1) != 64 {
		t.Fatalf("GenerateWalletAddress length = %d, want 64", len(a1))
	}
	for _, c := range a1 {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("GenerateWalletAddress produced non-hex char %q", c)
		}
	}
}

func TestGenerateWalletAddressRejectsWrongKeyLength(t *testing.T) {
	if _, err := GenerateWalletAddress("abcd"); err == nil {
		t.Fatal("GenerateWalletAddress accepted a key of the wrong length")
	}
}

func TestNewWalletGeneratesFreshPositionWhenEmpty(t *testing.T) {
	w1, err := New("5eed", "", "", 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w2, err := New("5eed", "", "", 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if w1.Position == w2.Position {
		t.Fatal("New did not draw a fresh position for two wallets from the same secret")
	}
	if w1.Token != common.DefaultToken {
		t.Fatalf("New did not default token to %q, got %q", common.DefaultToken, w1.Token)
	}
}

func TestNewWalletDeterministicGivenPosition(t *testing.T) {
	w1, err := New("5eed", "USER", "aa", 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w2, err := New("5eed", "USER", "aa", 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if w1.Key != w2.Key || w1.Address != w2.Address || w1.Bundle != w2.Bundle {
		t.Fatal("New was not deterministic given an explicit position")
	}
}

func TestNextPositionAdvancesHexValue(t *testing.T) {
	next, err := NextPosition("ff", 1)
	if err != nil {
		t.Fatalf("NextPosition: %v", err)
	}
	if next != "100" {
		t.Fatalf("NextPosition(ff, 1) = %q, want %q", next, "100")
	}
}

func TestAttachEncryptionKeypairIndependentOfSigningKey(t *testing.T) {
	w, err := New("5eed", "USER", "aa", 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	signingKey, address := w.Key, w.Address
	if err := w.AttachEncryptionKeypair(); err != nil {
		t.Fatalf("AttachEncryptionKeypair: %v", err)
	}
	if w.EncryptKey == nil || w.DecryptKey == nil {
		t.Fatal("AttachEncryptionKeypair left key fields nil")
	}
	if w.Key != signingKey || w.Address != address {
		t.Fatal("AttachEncryptionKeypair changed the WOTS+ signing key or address")
	}
}

