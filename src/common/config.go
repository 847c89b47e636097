// MIT License
//
// # Copyright (c) 2024 sphinx-core
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

// go/src/common/config.go
package common

// DefaultToken is the token slug a Wallet is derived for when the caller
// does not name one explicitly (§4.2).
const DefaultToken = "USER"

// DefaultSaltLength is the number of hex characters generated for a fresh
// wallet position when the caller does not supply one (§4.2).
const DefaultSaltLength = 64

// PositionAlphabet is the fixed alphabet fresh positions are drawn from.
const PositionAlphabet = "abcdef0123456789"

// WotsChainCount is the number of SHAKE256 chains (and key chunks) the
// one-time signature scheme splits a wallet key into (§4.2, §4.5).
const WotsChainCount = 16

// WotsChunkHexLen is the hex-character length of each of the WotsChainCount
// key chunks (128 hex chars = 512 bits).
const WotsChunkHexLen = 128

// WalletKeyHexLen is the hex-character length of a derived wallet key
// (2048 hex chars = 8192 bits, WotsChainCount*WotsChunkHexLen).
const WalletKeyHexLen = WotsChainCount * WotsChunkHexLen

// MolecularHashLen is the fixed length, in base-17 characters, of a
// molecular hash (§4.3).
const MolecularHashLen = 64

// DerivationCacheSize is the default capacity of the wallet derivation
// cache (§4.8).
const DerivationCacheSize = 256
