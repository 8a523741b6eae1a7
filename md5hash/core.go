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
// github.com:SymbolNotFound/hashme/md5hash/core.go

// Package md5hash implements the MD5 (RFC 1321) streaming block engine:
// buffer accumulation, 0x80/zero/length padding and finalization, the same
// shape as the sha2 engine but little-endian throughout -- words, block
// layout and the trailing bit-length field are all read and written
// least-significant-byte first.
package md5hash

import "github.com/SymbolNotFound/hashme/internal/byteorder"

// BlockFunc performs one 64-byte compression round, mutating h in place.
type BlockFunc func(h *[4]uint32, block []byte)

// Context is the streaming state for MD5.
type Context struct {
	h      [4]uint32
	buf    [BlockSize]byte
	bufLen int
	// count holds the bit length as two 32-bit words (count[0] low,
	// count[1] high) rather than a single uint64 -- this mirrors the
	// original implementation's documented count[2]uint32 layout, which is
	// part of the design, not an artifact of a 32-bit-only era.
	count [2]uint32

	transform BlockFunc
}

// addBits adds n*8 bits to the counter, carrying from the low word to the
// high word on overflow.
func (c *Context) addBits(n int) {
	bits := uint32(n) * 8
	lo := c.count[0]
	c.count[0] += bits
	if c.count[0] < lo {
		c.count[1]++
	}
}

// bitLen returns the full 64-bit message length in bits.
func (c *Context) bitLen() uint64 {
	return uint64(c.count[1])<<32 | uint64(c.count[0])
}

// NewContext constructs a fresh context with the given initial state and
// block transform. iv is copied, not aliased.
func NewContext(iv [4]uint32, transform BlockFunc) *Context {
	c := &Context{transform: transform}
	c.h = iv
	return c
}

// Reset restores the context to iv with an empty buffer.
func (c *Context) Reset(iv [4]uint32) {
	c.h = iv
	c.buf = [BlockSize]byte{}
	c.bufLen = 0
	c.count = [2]uint32{}
}

// Write implements the same three-case update loop as the sha2 engine: fill
// a partial buffer, transform full blocks directly from the input, then
// stash any remaining tail bytes.
func (c *Context) Write(p []byte) {
	if len(p) == 0 {
		return
	}

	if c.bufLen > 0 {
		n := copy(c.buf[c.bufLen:], p)
		c.bufLen += n
		c.addBits(n)
		p = p[n:]
		if c.bufLen == BlockSize {
			c.transform(&c.h, c.buf[:])
			c.bufLen = 0
		}
	}

	for len(p) >= BlockSize {
		c.transform(&c.h, p[:BlockSize])
		c.addBits(BlockSize)
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		copy(c.buf[:], p)
		c.bufLen = len(p)
		c.addBits(len(p))
	}
}

// Sum performs the pad-transform-serialize finalization over a copy of the
// context, leaving the receiver unmodified so further Write calls (after
// Sum, before Reset) remain well defined -- mirroring the standard
// library's hash.Hash.Sum contract.
func (c *Context) Sum() [Size]byte {
	cp := *c
	if cp.bufLen >= BlockSize {
		panic("md5hash: corrupt context: buffer overflowed block size")
	}

	cp.buf[cp.bufLen] = 0x80
	for i := cp.bufLen + 1; i < BlockSize; i++ {
		cp.buf[i] = 0
	}
	if cp.bufLen >= BlockSize-8 {
		cp.transform(&cp.h, cp.buf[:])
		cp.buf = [BlockSize]byte{}
	}

	byteorder.PutLittleUint64(cp.buf[BlockSize-8:], cp.bitLen())
	cp.transform(&cp.h, cp.buf[:])

	var out [Size]byte
	for i, word := range cp.h {
		byteorder.PutLittleUint32(out[i*4:], word)
	}
	return out
}

// BlockGeneric is the portable scalar MD5 compression function: four
// 16-step rounds (F, G, H, I) over the block's sixteen little-endian words.
func BlockGeneric(h *[4]uint32, block []byte) {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = byteorder.LittleUint32(block[i*4:])
	}

	a, b, c, d := h[0], h[1], h[2], h[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int
		switch {
		case i < 16:
			f = (b & c) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & c)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}

		f += a + K[i] + m[g]
		a, d, c = d, c, b
		b += rotl32(f, shift[i])
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
}

func rotl32(x uint32, n uint32) uint32 {
	return x<<n | x>>(32-n)
}
