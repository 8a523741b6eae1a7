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
// github.com:SymbolNotFound/hashme/sha2/sha256core.go

// Package sha2 implements the shared Merkle-Damgard streaming engine behind
// SHA-224, SHA-256, SHA-384 and SHA-512: buffer accumulation, 0x80/zero/
// bit-length padding, and finalization. SHA-224 is SHA-256's block engine
// with a different IV and a truncated digest; SHA-384 is the same relation
// to SHA-512. The engine itself never looks at which of the two it is
// running -- only the IV and the output size differ, both supplied by the
// caller (package sha224, sha256hash, sha384, sha512hash).
package sha2

import (
	"runtime"

	"github.com/SymbolNotFound/hashme/internal/byteorder"
)

// Block256Func performs one 64-byte compression round, mutating h in place.
// The software transform (Block256Generic) and any hardware transform
// (package-specific, built only on architectures that support it) share
// this exact signature so Context256 never needs to know which one it
// holds.
type Block256Func func(h *[8]uint32, block []byte)

// Context256 is the streaming state for the SHA-224/256 block engine.
type Context256 struct {
	h      [8]uint32
	buf    [BlockSize256]byte
	bufLen int
	bitLen uint64

	transform Block256Func
}

// NewContext256 constructs a fresh context with the given initial hash
// value and block transform. iv is copied, not aliased.
func NewContext256(iv [8]uint32, transform Block256Func) *Context256 {
	c := &Context256{transform: transform}
	c.h = iv
	return c
}

// Reset restores the context to iv with an empty buffer, equivalent to
// constructing a new Context256 in place.
func (c *Context256) Reset(iv [8]uint32) {
	c.h = iv
	c.buf = [BlockSize256]byte{}
	c.bufLen = 0
	c.bitLen = 0
}

// Wipe zeroes the internal block buffer and chaining state, for callers
// hashing sensitive input who want the bytes gone before the context is
// garbage collected.
func (c *Context256) Wipe() {
	for i := range c.buf {
		c.buf[i] = 0
	}
	c.h = [8]uint32{}
	c.bufLen = 0
	c.bitLen = 0
	runtime.KeepAlive(c.buf)
}

// Write implements the three-case update loop from the streaming engine
// design: fill a partial buffer, transform full blocks directly from the
// input, then stash any remaining tail bytes.
func (c *Context256) Write(p []byte) {
	if len(p) == 0 {
		return
	}

	if c.bufLen > 0 {
		n := copy(c.buf[c.bufLen:], p)
		c.bufLen += n
		c.bitLen += uint64(n) * 8
		p = p[n:]
		if c.bufLen == BlockSize256 {
			c.transform(&c.h, c.buf[:])
			c.bufLen = 0
		}
	}

	for len(p) >= BlockSize256 {
		c.transform(&c.h, p[:BlockSize256])
		c.bitLen += BlockSize256 * 8
		p = p[BlockSize256:]
	}

	if len(p) > 0 {
		copy(c.buf[:], p)
		c.bufLen = len(p)
		c.bitLen += uint64(len(p)) * 8
	}
}

// Sum performs the pad-transform-serialize finalization over a copy of the
// context, leaving the receiver unmodified so further Write calls (after
// Sum, before Reset) remain well defined for callers that rely on that --
// mirroring the standard library's hash.Hash.Sum contract.
func (c *Context256) Sum() [32]byte {
	cp := *c
	if cp.bufLen >= BlockSize256 {
		panic("sha2: corrupt context: buffer overflowed block size")
	}

	cp.buf[cp.bufLen] = 0x80
	for i := cp.bufLen + 1; i < BlockSize256; i++ {
		cp.buf[i] = 0
	}
	if cp.bufLen >= BlockSize256-8 {
		cp.transform(&cp.h, cp.buf[:])
		cp.buf = [BlockSize256]byte{}
	}

	byteorder.PutBigUint64(cp.buf[BlockSize256-8:], cp.bitLen)
	cp.transform(&cp.h, cp.buf[:])

	var out [32]byte
	for i, word := range cp.h {
		byteorder.PutBigUint32(out[i*4:], word)
	}
	return out
}

// Block256Generic is the portable scalar SHA-256 compression function: a
// 64-round Merkle-Damgard compression over a 64-word message schedule.
func Block256Generic(h *[8]uint32, block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = byteorder.BigUint32(block[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < 64; i++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + s1 + ch + K256[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		hh, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

func rotr32(x uint32, n uint) uint32 {
	return x>>n | x<<(32-n)
}
