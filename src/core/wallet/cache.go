// MIT License
//
// Copyright (c) 2024 sphinx-core
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// go/src/core/wallet/cache.go
package wallet

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/minio/highwayhash"

	"github.com/molecule-core/go/src/common"
)

// DerivationCache memoizes the (key, address) pair §4.2's
// GenerateWalletKey/GenerateWalletAddress derive for a given
// (secret, token, position) — the 260 SHAKE256 invocations that pair
// costs (2 for the key, 16x16 chain steps plus 2 for the address). Entries are keyed by a HighwayHash checksum of the inputs
// rather than the inputs themselves, so the cache never retains a raw
// secret in the clear longer than the call that produced the checksum.
// The cache never stores OTS signature fragments: only this
// pre-signature derivation, so evicting an entry can never corrupt a
// molecule already in flight.
type DerivationCache struct {
	mu       sync.Mutex
	capacity int
	key      []byte
	cache    map[uint64]*derivationNode
	head     *derivationNode
	tail     *derivationNode
}

type derivationNode struct {
	checksum  uint64
	walletKey string
	address   string
	prev      *derivationNode
	next      *derivationNode
}

// NewDerivationCache builds a derivation cache of the given capacity,
// drawing a fresh random HighwayHash key so checksums are not stable
// across process restarts. capacity <= 0 uses common.DerivationCacheSize.
func NewDerivationCache(capacity int) (*DerivationCache, error) {
	if capacity <= 0 {
		capacity = common.DerivationCacheSize
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	return &DerivationCache{
		capacity: capacity,
		key:      key,
		cache:    make(map[uint64]*derivationNode),
	}, nil
}

func (c *DerivationCache) checksum(secret, token, position string) (uint64, error) {
	h, err := highwayhash.New64(c.key)
	if err != nil {
		return 0, err
	}
	_, _ = h.Write([]byte(secret))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(token))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(position))
	return binary.BigEndian.Uint64(h.Sum(nil)), nil
}

// Derive returns the cached (key, address) pair for (secret, token,
// position) if present, else derives it via GenerateWalletKey and
// GenerateWalletAddress and caches the result. A cache hit and a cache
// miss always return byte-identical pairs for the same inputs.
func (c *DerivationCache) Derive(secret, token, position string) (key, address string, err error) {
	sum, err := c.checksum(secret, token, position)
	if err != nil {
		return "", "", err
	}

	c.mu.Lock()
	if node, found := c.cache[sum]; found {
		c.moveToFront(node)
		cachedKey, cachedAddress := node.walletKey, node.address
		c.mu.Unlock()
		return cachedKey, cachedAddress, nil
	}
	c.mu.Unlock()

	key, err = GenerateWalletKey(secret, token, position)
	if err != nil {
		return "", "", err
	}
	address, err = GenerateWalletAddress(key)
	if err != nil {
		return "", "", err
	}

	c.mu.Lock()
	c.put(sum, key, address)
	c.mu.Unlock()
	return key, address, nil
}

func (c *DerivationCache) put(sum uint64, key, address string) {
	if node, found := c.cache[sum]; found {
		node.walletKey = key
		node.address = address
		c.moveToFront(node)
		return
	}

	node := &derivationNode{checksum: sum, walletKey: key, address: address}
	c.cache[sum] = node

	if c.head == nil {
		c.head = node
		c.tail = node
	} else {
		node.next = c.head
		c.head.prev = node
		c.head = node
	}

	if len(c.cache) > c.capacity {
		c.evict()
	}
}

func (c *DerivationCache) evict() {
	if c.tail == nil {
		return
	}
	delete(c.cache, c.tail.checksum)
	c.tail = c.tail.prev
	if c.tail != nil {
		c.tail.next = nil
	}
}

func (c *DerivationCache) moveToFront(node *derivationNode) {
	if node == c.head {
		return
	}
	if node.prev != nil {
		node.prev.next = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	}
	if node == c.tail {
		c.tail = node.prev
	}
	node.prev = nil
	node.next = c.head
	c.head.prev = node
	c.head = node
}
