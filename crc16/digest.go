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
// github.com:SymbolNotFound/hashme/crc16/digest.go

// Package crc16 is the public CRC-16/ARC algorithm package. There is no
// hardware variant: no mainstream CPU extension accelerates the 16-bit
// polynomial, so this package, like md5hash, simply never declares
// NewHardware.
package crc16

import "github.com/SymbolNotFound/hashme/crc"

const (
	poly      = 0xA001
	initRem   = 0x0000
	xorOut    = 0x0000

	// Size is the size, in bytes, of a CRC-16 checksum.
	Size = 2
)

// Hasher is the streaming digest contract every algorithm package in this
// module implements, with an additional Sum16 accessor for the
// native-width checksum integer.
type Hasher interface {
	Write(p []byte) (int, error)
	Reset()
	Sum(b []byte) []byte
	Size() int
	BlockSize() int
	Sum16() uint16
}

// Wiper is implemented by every Hasher returned from this package; see
// md5hash.Wiper for the rationale.
type Wiper interface {
	Wipe()
}

type digest struct {
	engine *crc.Engine16
}

// New constructs the CRC-16/ARC variant.
func New() Hasher {
	return &digest{engine: crc.NewEngine16(poly, initRem, xorOut)}
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
	v := d.engine.Sum16()
	buf[0] = byte(v >> 8)
	buf[1] = byte(v)
	return append(b, buf[:]...)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Sum16() uint16 { return d.engine.Sum16() }

func (d *digest) Wipe() { d.engine.Wipe() }
