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
// github.com:SymbolNotFound/hashme/md5hash/digest.go

package md5hash

import "runtime"

// Hasher is the streaming digest contract every algorithm package in this
// module implements: a drop-in shape for crypto/md5-style code.
type Hasher interface {
	Write(p []byte) (int, error)
	Reset()
	Sum(b []byte) []byte
	Size() int
	BlockSize() int
}

// Wiper is implemented by every Hasher returned from this package. A
// caller hashing sensitive input (a password, a key) can type-assert for
// it and zero the internal state once the digest has been read, rather
// than waiting on garbage collection.
type Wiper interface {
	Wipe()
}

type digest struct {
	ctx *Context
}

// New constructs the software MD5 variant. There is no NewHardware for
// this package: no mainstream CPU extension accelerates MD5's F/G/H/I
// rounds the way ARMv8/SHA-NI accelerate SHA-2, so this package simply
// never declares that constructor -- the absence is enforced at compile
// time by its not existing, not by a runtime error.
func New() Hasher {
	return &digest{ctx: NewContext(IV, BlockGeneric)}
}

// NewCopy returns an independent copy of h, sharing no mutable state with
// the original.
func NewCopy(h Hasher) Hasher {
	d := h.(*digest)
	cp := *d.ctx
	return &digest{ctx: &cp}
}

func (d *digest) Write(p []byte) (int, error) {
	d.ctx.Write(p)
	return len(p), nil
}

func (d *digest) Reset() {
	d.ctx.Reset(IV)
}

func (d *digest) Sum(b []byte) []byte {
	sum := d.ctx.Sum()
	return append(b, sum[:]...)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

// Wipe zeroes the internal block buffer and state, for callers hashing
// sensitive data who want the bytes gone from the Context before it is
// garbage collected. Mirrors the clear-on-reset convention already used by
// this module's SHA-1 fixture source.
func (d *digest) Wipe() {
	for i := range d.ctx.buf {
		d.ctx.buf[i] = 0
	}
	d.ctx.h = [4]uint32{}
	d.ctx.bufLen = 0
	d.ctx.count = [2]uint32{}
	runtime.KeepAlive(d.ctx.buf)
}
