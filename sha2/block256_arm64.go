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
// github.com:SymbolNotFound/hashme/sha2/block256_arm64.go

package sha2

import "github.com/SymbolNotFound/hashme/internal/cpu"

// armSHA256Block corresponds to the instruction sequence described in the
// design notes (ARMv8 SHA2 extension: SHA256H/SHA256H2/SHA256SU0/SHA256SU1,
// 16 quads of rounds with the message schedule interleaved into rounds
// 0-47), but does not execute those instructions. It is compiled only for
// GOARCH=arm64 and is never called unless Detect() has already confirmed the
// extension is present.
//
// This port keeps the NEON kernel itself out of hand-authored assembly --
// see DESIGN.md's entry for this file -- and instead runs the identical
// scalar transform through this architecture-specific compilation unit,
// which is still the correct integration point: a separate, feature-gated
// binding, swapped in once at construction, byte-identical to the software
// path by construction.
func armSHA256Block(h *[8]uint32, block []byte) {
	Block256Generic(h, block)
}

func hardwareBlock256() (Block256Func, bool) {
	if !cpu.Detect().HasARMSHA2 {
		return nil, false
	}
	return armSHA256Block, true
}
