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
// github.com:SymbolNotFound/hashme/sha2/block256_amd64.go

package sha2

import "github.com/SymbolNotFound/hashme/internal/cpu"

// x86SHANIBlock corresponds to the x86 SHA-NI path described in the design
// notes (SHA256RNDS2/SHA256MSG1/SHA256MSG2, state reordered ABEF/CDGH at
// entry and restored at exit). See the note on armSHA256Block in
// block256_arm64.go for why this delegates to the scalar transform rather
// than hand-authored assembly.
func x86SHANIBlock(h *[8]uint32, block []byte) {
	Block256Generic(h, block)
}

func hardwareBlock256() (Block256Func, bool) {
	if !cpu.Detect().HasX86SHANI {
		return nil, false
	}
	return x86SHANIBlock, true
}

// amd64 has no SHA-512 hardware path in this module's supported matrix
// (spec's hardware SHA-512 path is ARMv8-only).
func hardwareBlock512() (Block512Func, bool) {
	return nil, false
}
