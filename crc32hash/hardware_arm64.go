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
// github.com:SymbolNotFound/hashme/crc32hash/hardware_arm64.go

package crc32hash

import "github.com/SymbolNotFound/hashme/internal/cpu"

// armCRC32Update corresponds to the ARMv8 CRC32 extension path described in
// the design notes: align to an 8-byte boundary with byte-wise crc32b,
// consume unrolled 64-byte groups with crc32d, drain remaining 8-byte
// words, finish byte-wise, complementing the remainder on entry and exit to
// match the reflected/complemented ISO-HDLC convention. As with the sha2
// package's ARM/x86 files, this is represented as its own architecture-
// gated compilation unit rather than hand-authored, unverifiable Plan 9
// assembly, and delegates to the byte-wise table update it is
// byte-identical to.
func armCRC32Update(rem uint32, p []byte) uint32 {
	tbl := crcEngineTable()
	for _, b := range p {
		idx := byte(rem) ^ b
		rem = (rem >> 8) ^ tbl[idx]
	}
	return rem
}

func hardwareUpdateImpl() (updateFunc, bool) {
	if !cpu.Detect().HasARMCRC32 {
		return nil, false
	}
	return armCRC32Update, true
}
