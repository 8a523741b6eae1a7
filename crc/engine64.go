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
// github.com:SymbolNotFound/hashme/crc/engine64.go

package crc

// Table64 is a 256-entry reflected CRC lookup table for a 64-bit
// polynomial.
type Table64 [256]uint64

// MakeTable64 builds the reflected lookup table for the given (already
// bit-reversed) polynomial.
func MakeTable64(poly uint64) *Table64 {
	var t Table64
	for i := 0; i < 256; i++ {
		rem := uint64(i)
		for bit := 0; bit < 8; bit++ {
			if rem&1 != 0 {
				rem = (rem >> 1) ^ poly
			} else {
				rem >>= 1
			}
		}
		t[i] = rem
	}
	return &t
}

// Engine64 is a streaming CRC-64-family accumulator.
type Engine64 struct {
	table  *Table64
	init   uint64
	xorOut uint64
	rem    uint64
}

// NewEngine64 constructs an engine for the given polynomial (reflected
// form), initial remainder, and final-XOR value.
func NewEngine64(poly, init, xorOut uint64) *Engine64 {
	e := &Engine64{table: MakeTable64(poly), init: init, xorOut: xorOut}
	e.rem = init
	return e
}

// Reset returns the engine to its initial remainder.
func (e *Engine64) Reset() {
	e.rem = e.init
}

// Wipe zeroes the running remainder; see Engine16.Wipe.
func (e *Engine64) Wipe() {
	e.rem = 0
}

// Update folds p into the running remainder, one table lookup per byte.
func (e *Engine64) Update(p []byte) {
	rem := e.rem
	for _, b := range p {
		idx := byte(rem) ^ b
		rem = (rem >> 8) ^ e.table[idx]
	}
	e.rem = rem
}

// Sum64 applies the final XOR and returns the finished checksum.
func (e *Engine64) Sum64() uint64 {
	return e.rem ^ e.xorOut
}

// Table returns a copy of the lookup table.
func (e *Engine64) Table() Table64 {
	return *e.table
}
