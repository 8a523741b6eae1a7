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
// github.com:SymbolNotFound/hashme/crc64hash/digest.go

// Package crc64hash is the public CRC-64/ECMA-182 algorithm package. No
// mainstream CPU extension accelerates a 64-bit polynomial CRC the way
// ARMv8 accelerates CRC-32/ISO-HDLC, so this package never declares
// NewHardware.
package crc64hash

import "github.com/SymbolNotFound/hashme/crc"

const (
	poly      = 0xC96C5795D7870F42
	initRem   = 0xFFFFFFFFFFFFFFFF
	xorOut    = 0xFFFFFFFFFFFFFFFF

	// Size is the size, in bytes, of a CRC-64 checksum.
	Size = 8
)

// Hasher is the streaming digest contract every algorithm package in this
// module implements, with an additional Sum64 accessor for the
// native-width checksum integer.
type Hasher interface {
	Write(p []byte) (int, error)
	Reset()
	Sum(b []byte) []byte
	Size() int
	BlockSize() int
	Sum64() uint64
}

// Wiper is implemented by every Hasher returned from this package; see
// md5hash.Wiper for the rationale.
type Wiper interface {
	Wipe()
}

type digest struct {
	engine *crc.Engine64
}

// New constructs the CRC-64/ECMA-182 variant.
func New() Hasher {
	return &digest{engine: crc.NewEngine64(poly, initRem, xorOut)}
}

// NewCopy returns an independent copy of h.
func NewCopy(h Hasher) Hasher {
	d := h.(*digest)
	cp := *d.engine
	return &digest{engine: &cp}
}

func (d *digest) Write(p []byte) (int, error) {
	d.engine.Update(p)
	return len(p), nil
}

func (d *digest) Reset() { d.engine.Reset() }

func (d *digest) Sum(b []byte) []byte {
	var buf [Size]byte
	v := d.engine.Sum64()
	for i := 0; i < Size; i++ {
		buf[i] = byte(v >> (56 - 8*i))
	}
	return append(b, buf[:]...)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Sum64() uint64 { return d.engine.Sum64() }

func (d *digest) Wipe() { d.engine.Wipe() }
