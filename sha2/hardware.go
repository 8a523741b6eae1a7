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
// github.com:SymbolNotFound/hashme/sha2/hardware.go

package sha2

// HardwareBlock256 returns the architecture's accelerated SHA-224/256
// compression function and true, or (nil, false) if the running CPU or
// GOARCH has no such implementation. The returned function is bound once by
// the caller (package sha224/sha256hash's NewHardware) and never
// re-resolved per byte.
//
// hardwareBlock256 is implemented separately per GOARCH (see
// block256_arm64.go, block256_amd64.go, block_generic.go); this function
// is the single seam the rest of the package calls through.
func HardwareBlock256() (Block256Func, bool) {
	return hardwareBlock256()
}

// HardwareBlock512 returns the architecture's accelerated SHA-384/512
// compression function and true, or (nil, false) otherwise. See
// HardwareBlock256.
func HardwareBlock512() (Block512Func, bool) {
	return hardwareBlock512()
}
