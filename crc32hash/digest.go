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
// github.com:SymbolNotFound/hashme/crc32hash/digest.go

// Package crc32hash is the public CRC-32/ISO-HDLC algorithm package:
// software and ARMv8-hardware-accelerated variants.
package crc32hash

import (
	"github.com/SymbolNotFound/hashme/crc"
	"github.com/SymbolNotFound/hashme/internal/cpu"
)

const (
	poly      = 0xEDB88320
	initRem   = 0xFFFFFFFF
	xorOut    = 0xFFFFFFFF

	// Size is the size, in bytes, of a CRC-32 checksum.
	Size = 4
)

var sharedTable = crc.MakeTable32(poly)

func crcEngineTable() *crc.Table32 { return sharedTable }

// Hasher is the streaming digest contract every algorithm package in this
// module implements, with an additional Sum32 accessor for the
// native-width checksum integer.
type Hasher interface {
	Write(p []byte) (int, error)
	Reset()
	Sum(b []byte) []byte
	Size() int
	BlockSize() int
	Sum32() uint32
}

// Wiper is implemented by every Hasher returned from this package; see
// md5hash.Wiper for the rationale.
type Wiper interface {
	Wipe()
}

type digest struct {
	rem    uint32
	update updateFunc
}

func softwareUpdate(rem uint32, p []byte) uint32 {
	tbl := sharedTable
	for _, b := range p {
		idx := byte(rem) ^ b
		rem = (rem >> 8) ^ tbl[idx]
	}
	return rem
}

// New constructs the portable scalar CRC-32/ISO-HDLC variant.
func New() Hasher {
	return &digest{rem: initRem, update: softwareUpdate}
}

// NewHardware constructs the ARMv8-accelerated CRC-32 variant. It returns
// cpu.ErrUnsupportedPlatform if the running CPU/GOARCH has no CRC32
// extension.
func NewHardware() (Hasher, error) {
	update, ok := hardwareUpdate()
	if !ok {
		return nil, cpu.ErrUnsupportedPlatform
	}
	return &digest{rem: initRem, update: update}, nil
}

// NewCopy returns an independent copy of h.
func NewCopy(h Hasher) Hasher {
	d := h.(*digest)
	cp := *d
	return &cp
}

func (d *digest) Write(p []byte) (int, error) {
	d.rem = d.update(d.rem, p)
	return len(p), nil
}

func (d *digest) Reset() { d.rem = initRem }

func (d *digest) Sum(b []byte) []byte {
	v := d.Sum32()
	var buf [Size]byte
	buf[0] = byte(v >> 24)
	buf[1] = byte(v >> 16)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v)
	return append(b, buf[:]...)
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Sum32() uint32 { return d.rem ^ xorOut }

func (d *digest) Wipe() { d.rem = 0 }
