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
// github.com:SymbolNotFound/hashme/crc/engine32.go

package crc

// Table32 is a 256-entry reflected CRC lookup table for a 32-bit
// polynomial.
type Table32 [256]uint32

// MakeTable32 builds the reflected lookup table for the given (already
// bit-reversed) polynomial.
func MakeTable32(poly uint32) *Table32 {
	var t Table32
	for i := 0; i < 256; i++ {
		rem := uint32(i)
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

// Engine32 is a streaming CRC-32-family accumulator.
type Engine32 struct {
	table  *Table32
	init   uint32
	xorOut uint32
	rem    uint32
}

// NewEngine32 constructs an engine for the given polynomial (reflected
// form), initial remainder, and final-XOR value.
func NewEngine32(poly, init, xorOut uint32) *Engine32 {
	e := &Engine32{table: MakeTable32(poly), init: init, xorOut: xorOut}
	e.rem = init
	return e
}

// Reset returns the engine to its initial remainder.
func (e *Engine32) Reset() {
	e.rem = e.init
}

// Wipe zeroes the running remainder; see Engine16.Wipe.
func (e *Engine32) Wipe() {
	e.rem = 0
}

// Update folds p into the running remainder, one table lookup per byte.
func (e *Engine32) Update(p []byte) {
	rem := e.rem
	for _, b := range p {
		idx := byte(rem) ^ b
		rem = (rem >> 8) ^ e.table[idx]
	}
	e.rem = rem
}

// Sum32 applies the final XOR and returns the finished checksum.
func (e *Engine32) Sum32() uint32 {
	return e.rem ^ e.xorOut
}

// Table returns a copy of the lookup table.
func (e *Engine32) Table() Table32 {
	return *e.table
}
