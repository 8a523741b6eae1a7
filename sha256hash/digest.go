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
// github.com:SymbolNotFound/hashme/sha256hash/digest.go

// Package sha256hash is the public SHA-256 algorithm package: software and
// hardware variants over the shared sha2 block engine.
package sha256hash

import (
	"github.com/SymbolNotFound/hashme/internal/cpu"
	"github.com/SymbolNotFound/hashme/sha2"
)

// Hasher is the streaming digest contract every algorithm package in this
// module implements: a drop-in shape for crypto/sha256-style code.
type Hasher interface {
	Write(p []byte) (int, error)
	Reset()
	Sum(b []byte) []byte
	Size() int
	BlockSize() int
}

// Wiper is implemented by every Hasher returned from this package; see
// md5hash.Wiper for the rationale.
type Wiper interface {
	Wipe()
}

type digest struct {
	ctx *sha2.Context256
}

// New constructs the portable scalar SHA-256 variant.
func New() Hasher {
	return &digest{ctx: sha2.NewContext256(sha2.IV256, sha2.Block256Generic)}
}

// NewHardware constructs the hardware-accelerated SHA-256 variant. It
// returns cpu.ErrUnsupportedPlatform if the running CPU/GOARCH has no
// accelerated transform for this algorithm.
func NewHardware() (Hasher, error) {
	transform, ok := sha2.HardwareBlock256()
	if !ok {
		return nil, cpu.ErrUnsupportedPlatform
	}
	return &digest{ctx: sha2.NewContext256(sha2.IV256, transform)}, nil
}

// NewCopy returns an independent copy of h, sharing no mutable state.
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
	d.ctx.Reset(sha2.IV256)
}

func (d *digest) Sum(b []byte) []byte {
	sum := d.ctx.Sum()
	return append(b, sum[:]...)
}

func (d *digest) Size() int { return sha2.Size256 }

func (d *digest) BlockSize() int { return sha2.BlockSize256 }

func (d *digest) Wipe() { d.ctx.Wipe() }
