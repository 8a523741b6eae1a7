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
// github.com:SymbolNotFound/hashme/crc/engine16.go

package crc

// Table16 is a 256-entry reflected CRC lookup table for a 16-bit
// polynomial.
type Table16 [256]uint16

// MakeTable16 builds the reflected lookup table for the given (already
// bit-reversed) polynomial. The table is a pure function of poly -- two
// calls with the same poly always produce identical tables, independently
// verifiable by a caller that wants to confirm table purity.
func MakeTable16(poly uint16) *Table16 {
	var t Table16
	for i := 0; i < 256; i++ {
		rem := uint16(i)
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

// Engine16 is a streaming CRC-16-family accumulator: table, init and
// final-XOR parameters, and the running remainder.
type Engine16 struct {
	table  *Table16
	init   uint16
	xorOut uint16
	rem    uint16
}

// NewEngine16 constructs an engine for the given polynomial (already in
// reflected form), initial remainder, and final-XOR value, with a table
// recomputed for this instance rather than shared -- trading a small
// per-construction cost for zero shared mutable state (see the
// concurrency notes).
func NewEngine16(poly, init, xorOut uint16) *Engine16 {
	e := &Engine16{table: MakeTable16(poly), init: init, xorOut: xorOut}
	e.rem = init
	return e
}

// Reset returns the engine to its initial remainder.
func (e *Engine16) Reset() {
	e.rem = e.init
}

// Wipe zeroes the running remainder, for callers checksumming sensitive
// input who want the running state gone before the engine is garbage
// collected. The table itself holds no information about the input and is
// left untouched.
func (e *Engine16) Wipe() {
	e.rem = 0
}

// Update folds p into the running remainder, one table lookup per byte.
func (e *Engine16) Update(p []byte) {
	rem := e.rem
	for _, b := range p {
		idx := byte(rem) ^ b
		rem = (rem >> 8) ^ e.table[idx]
	}
	e.rem = rem
}

// Sum16 applies the final XOR and returns the finished checksum. The
// engine is left unmodified, matching Context.Sum's non-mutating contract
// elsewhere in this module.
func (e *Engine16) Sum16() uint16 {
	return e.rem ^ e.xorOut
}

// Table returns a copy of the lookup table, letting a caller independently
// verify it is a pure function of the polynomial without reaching into
// unexported state.
func (e *Engine16) Table() Table16 {
	return *e.table
}
