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
// github.com:SymbolNotFound/hashme/doc.go

// Package hashme collects a family of sibling packages, one per digest or
// checksum algorithm, each exposing the same streaming shape:
//
//	New() Hasher                 // portable scalar variant
//	NewHardware() (Hasher, error) // hardware-accelerated variant, where one exists
//	NewCopy(Hasher) Hasher        // independent copy of an in-progress Hasher
//
// md5hash, sha224, sha256hash, sha384, and sha512hash cover the Merkle-Damgard
// digests; crc16, crc32hash, and crc64hash cover the three CRC profiles. Two
// variants of the same algorithm always agree byte-for-byte; NewHardware
// returns internal/cpu.ErrUnsupportedPlatform rather than silently falling
// back to software when the running CPU lacks the needed extension.
//
// There is deliberately no runtime algorithm-selection function here: which
// package to import, and whether to call New or NewHardware, are both
// decisions made once at compile time by the caller, not a string dispatched
// at runtime. cmd/hashme-sum is the one place in this module that maps a
// string onto a constructor, and it does so explicitly as a CLI convenience,
// not as part of the library surface.
package hashme
