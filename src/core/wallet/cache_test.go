// go/src/core/wallet/cache_test.go
package wallet

import "testing"

func TestDerivationCacheReturnsSameKeyAsDirectDerivation(t *testing.T) {
	cache, err := NewDerivationCache(4)
	if err != nil {
		t.Fatalf("NewDerivationCache: %v", err)
	}

	directKey, err := GenerateWalletKey("5eed", "USER", "aa")
	if err != nil {
		t.Fatalf("GenerateWalletKey: %v", err)
	}
	directAddress, err := GenerateWalletAddress(directKey)
	if err != nil {
		t.Fatalf("GenerateWalletAddress: %v", err)
	}

	cachedKey, cachedAddress, err := cache.Derive("5eed", "USER", "aa")
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if cachedKey != directKey || cachedAddress != directAddress {
		t.Fatalf("Derive = (%q, %q), want (%q, %q)", cachedKey, cachedAddress, directKey, directAddress)
	}

	// Second call should hit the cache and still agree.
	againKey, againAddress, err := cache.Derive("5eed", "USER", "aa")
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if againKey != directKey || againAddress != directAddress {
		t.Fatalf("Derive (cached) = (%q, %q), want (%q, %q)", againKey, againAddress, directKey, directAddress)
	}
}

func TestDerivationCacheEvictsBeyondCapacity(t *testing.T) {
	cache, err := NewDerivationCache(2)
	if err != nil {
		t.Fatalf("NewDerivationCache: %v", err)
	}

	positions := []string{"1", "2", "3"}
	for _, p := range positions {
		if _, _, err := cache.Derive("5eed", "USER", p); err != nil {
			t.Fatalf("Derive(%s): %v", p, err)
		}
	}

	if len(cache.cache) > cache.capacity {
		t.Fatalf("cache holds %d entries, want at most %d", len(cache.cache), cache.capacity)
	}
}
