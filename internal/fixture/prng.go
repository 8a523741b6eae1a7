// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/hashme/internal/fixture/prng.go

// Package fixture generates deterministic pseudo-random byte buffers for
// use as test input -- in particular the 1 MiB buffer the software/hardware
// variant-equivalence tests (spec invariant 3) of sha256hash, sha512hash and
// crc32hash run over. It
// is not part of the public API: tests need a large, reproducible-across-
// runs corpus, not a cryptographically secure RNG, and reuse this module's
// own SHA-1 package as the chaining function rather than pull in
// math/rand/v2 just for fixtures.
package fixture

import (
	"encoding/binary"

	"github.com/SymbolNotFound/hashme/sha1"
)

// ShaRing is a SHA-1-chained generator: each Uint64 call reads the next 8
// bytes of the current digest; once the digest is exhausted, the next digest
// is the SHA-1 of the previous one.
type ShaRing struct {
	rng    sha1.Hasher
	offset int
	digest sha1.Digest
}

// NewSourceSeeded constructs a ShaRing from a seed (and optional additional
// seed words), mixing them into the initial SHA-1 state.
func NewSourceSeeded(seed uint64, more ...uint64) *ShaRing {
	source := sha1.New()
	words := make([]byte, 8+8*len(more))
	binary.BigEndian.PutUint64(words[0:], seed)
	for i, m := range more {
		binary.BigEndian.PutUint64(words[8*(i+1):], m)
	}
	source.Write(words)
	return &ShaRing{rng: source}
}

// Uint64 returns the next 8 bytes of pseudo-random output, advancing
// through the 20-byte digest and re-hashing when exhausted.
func (r *ShaRing) Uint64() uint64 {
	if r.offset == 0 || r.offset+8 > sha1.DIGEST_BYTES {
		r.digest = r.rng.Hash()
		r.rng.Write(r.digest.Bytes())
		r.offset = 0
	}
	v := binary.BigEndian.Uint64(r.digest.Bytes()[r.offset:])
	r.offset += 8
	return v
}

// Corpus deterministically fills a buffer of n bytes from seed, used as the
// shared large fixture across the software/hardware equivalence tests in
// sha256hash, sha512hash and crc32hash. The same (seed, n) pair always yields the same
// bytes, regardless of machine or run.
func Corpus(seed uint64, n int) []byte {
	r := NewSourceSeeded(seed)
	out := make([]byte, 0, n)
	for len(out) < n {
		var next [8]byte
		binary.BigEndian.PutUint64(next[:], r.Uint64())
		remaining := n - len(out)
		if remaining < 8 {
			out = append(out, next[:remaining]...)
			break
		}
		out = append(out, next[:]...)
	}
	return out
}
