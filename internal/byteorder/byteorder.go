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
// github.com:SymbolNotFound/hashme/internal/byteorder/byteorder.go

// Package byteorder isolates every endian-sensitive load/store used by the
// block engines in this module. The engines themselves operate only on
// native-width integers; conversion to and from the wire/block byte layout
// always goes through one of these functions, so a block transform never has
// to know or care which byte order its caller wants.
package byteorder

// BigUint32 reads a 32-bit big-endian integer from the first 4 bytes of b.
func BigUint32(b []byte) uint32 {
	_ = b[3] // bounds check hint, see golang.org/issue/14808
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

// PutBigUint32 writes v as a 32-bit big-endian integer into the first 4
// bytes of b.
func PutBigUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// BigUint64 reads a 64-bit big-endian integer from the first 8 bytes of b.
func BigUint64(b []byte) uint64 {
	_ = b[7]
	hi := BigUint32(b[0:4])
	lo := BigUint32(b[4:8])
	return uint64(hi)<<32 | uint64(lo)
}

// PutBigUint64 writes v as a 64-bit big-endian integer into the first 8
// bytes of b.
func PutBigUint64(b []byte, v uint64) {
	_ = b[7]
	PutBigUint32(b[0:4], uint32(v>>32))
	PutBigUint32(b[4:8], uint32(v))
}

// LittleUint32 reads a 32-bit little-endian integer from the first 4 bytes
// of b. MD5 (RFC 1321) operates on little-endian words.
func LittleUint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// PutLittleUint32 writes v as a 32-bit little-endian integer into the first
// 4 bytes of b.
func PutLittleUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// LittleUint64 reads a 64-bit little-endian integer from the first 8 bytes
// of b.
func LittleUint64(b []byte) uint64 {
	_ = b[7]
	lo := LittleUint32(b[0:4])
	hi := LittleUint32(b[4:8])
	return uint64(lo) | uint64(hi)<<32
}

// PutLittleUint64 writes v as a 64-bit little-endian integer into the first
// 8 bytes of b.
func PutLittleUint64(b []byte, v uint64) {
	_ = b[7]
	PutLittleUint32(b[0:4], uint32(v))
	PutLittleUint32(b[4:8], uint32(v>>32))
}

// SwapUint32 reverses the byte order of a 32-bit integer, the operation a
// hardware transform applies to message lanes loaded on a little-endian host
// before feeding them to a big-endian-oriented instruction (ARMv8 SHA2,
// SHA-NI). No transform in this module calls it: the architecture-gated
// transforms delegate to the scalar code, which loads words through
// BigUint32/BigUint64.
func SwapUint32(v uint32) uint32 {
	return v<<24 | (v&0xFF00)<<8 | (v>>8)&0xFF00 | v>>24
}

// SwapUint64 reverses the byte order of a 64-bit integer.
func SwapUint64(v uint64) uint64 {
	return uint64(SwapUint32(uint32(v)))<<32 | uint64(SwapUint32(uint32(v>>32)))
}
