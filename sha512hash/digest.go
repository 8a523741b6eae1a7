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
// github.com:SymbolNotFound/hashme/sha512hash/digest.go

// Package sha512hash is the public SHA-512 algorithm package: software and
// hardware variants over the shared sha2 block engine.
package sha512hash

import (
	"github.com/SymbolNotFound/hashme/internal/cpu"
	"github.com/SymbolNotFound/hashme/sha2"
)

// Hasher is the streaming digest contract every algorithm package in this
// module implements: a drop-in shape for crypto/sha512-style code.
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
	ctx *sha2.Context512
}

// New constructs the portable scalar SHA-512 variant.
func New() Hasher {
	return &digest{ctx: sha2.NewContext512(sha2.IV512, sha2.Block512Generic)}
}

// NewHardware constructs the ARMv8-accelerated SHA-512 variant. It returns
// cpu.ErrUnsupportedPlatform if the running CPU/GOARCH has no accelerated
// transform for this algorithm (amd64 has no SHA-512 hardware path in this
// module's supported matrix).
func NewHardware() (Hasher, error) {
	transform, ok := sha2.HardwareBlock512()
	if !ok {
		return nil, cpu.ErrUnsupportedPlatform
	}
	return &digest{ctx: sha2.NewContext512(sha2.IV512, transform)}, nil
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
	d.ctx.Reset(sha2.IV512)
}

func (d *digest) Sum(b []byte) []byte {
	sum := d.ctx.Sum()
	return append(b, sum[:]...)
}

func (d *digest) Size() int { return sha2.Size512 }

func (d *digest) BlockSize() int { return sha2.BlockSize512 }

func (d *digest) Wipe() { d.ctx.Wipe() }
