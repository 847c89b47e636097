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

// go/src/common/hexutil.go
package common

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// Bytes2Hex converts bytes to a lowercase hexadecimal string.
func Bytes2Hex(b []byte) string {
	return hex.EncodeToString(b)
}

// Hex2Bytes converts a hexadecimal string to bytes.
func Hex2Bytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// Chunks splits s into consecutive substrings of size characters each; the
// last chunk absorbs the remainder and may be shorter than size.
func Chunks(s string, size int) []string {
	if size <= 0 {
		return nil
	}

	count := (len(s) + size - 1) / size
	out := make([]string, 0, count)

	for offset := 0; offset < len(s); offset += size {
		end := offset + size
		if end > len(s) {
			end = len(s)
		}
		out = append(out, s[offset:end])
	}

	return out
}

// ChunksEven splits s into exactly n contiguous pieces sized round(len(s)/n);
// the last piece absorbs whatever remainder the division leaves over. This
// mirrors the original's chunkSubstr(signature, round(len/n)) call, which is
// deliberately not the same splitting rule as Chunks.
func ChunksEven(s string, n int) []string {
	if n <= 0 || len(s) == 0 {
		return nil
	}

	size := int(float64(len(s))/float64(n) + 0.5)
	if size <= 0 {
		size = 1
	}

	out := make([]string, 0, n)
	offset := 0
	for i := 0; i < n; i++ {
		if i == n-1 {
			out = append(out, s[offset:])
			break
		}
		end := offset + size
		if end > len(s) {
			end = len(s)
		}
		out = append(out, s[offset:end])
		offset = end
	}

	return out
}

// CharsetBaseConvert converts a hexadecimal string into an arbitrary base
// using symbolTable as the digit alphabet for the target base, by exact
// big-integer division. It runs at least once, so an all-zero input
// base-converts to the single symbol symbolTable[0] rather than the empty
// string.
func CharsetBaseConvert(hexIn string, baseFrom, baseTo int, symbolTable string) (string, error) {
	if hexIn == "" {
		return "", nil
	}
	if len(symbolTable) < baseTo {
		return "", fmt.Errorf("symbol table %q too short for base %d", symbolTable, baseTo)
	}

	value, ok := new(big.Int).SetString(hexIn, baseFrom)
	if !ok {
		return "", fmt.Errorf("invalid base-%d string: %q", baseFrom, hexIn)
	}

	base := big.NewInt(int64(baseTo))
	zero := big.NewInt(0)
	rem := new(big.Int)

	var out []byte
	for {
		value.QuoRem(value, base, rem)
		out = append([]byte{symbolTable[rem.Int64()]}, out...)
		if value.Cmp(zero) == 0 {
			break
		}
	}

	return string(out), nil
}

// PadLeft left-pads s with pad until it reaches length, leaving s untouched
// if it is already at least that long.
func PadLeft(s string, pad byte, length int) string {
	if len(s) >= length {
		return s
	}
	return strings.Repeat(string(pad), length-len(s)) + s
}

// HexAdd adds delta to the hex-encoded, arbitrary-precision unsigned integer
// hexIn and returns the sum as a hex string with no leading-zero padding
// beyond what big.Int's canonical text representation produces. This is the
// "position + 1" operation atom positions are chained with.
func HexAdd(hexIn string, delta int64) (string, error) {
	value, ok := new(big.Int).SetString(hexIn, 16)
	if !ok {
		return "", fmt.Errorf("invalid hex integer: %q", hexIn)
	}
	value.Add(value, big.NewInt(delta))
	return value.Text(16), nil
}

// HexSum adds two hex-encoded, arbitrary-precision unsigned integers and
// returns the sum as a hex string, used to combine a wallet secret with an
// atom position before hashing.
func HexSum(a, b string) (string, error) {
	av, ok := new(big.Int).SetString(a, 16)
	if !ok {
		return "", fmt.Errorf("invalid hex integer: %q", a)
	}
	bv, ok := new(big.Int).SetString(b, 16)
	if !ok {
		return "", fmt.Errorf("invalid hex integer: %q", b)
	}
	av.Add(av, bv)
	return av.Text(16), nil
}
