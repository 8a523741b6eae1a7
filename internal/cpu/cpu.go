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
// github.com:SymbolNotFound/hashme/internal/cpu/cpu.go

// Package cpu exposes the handful of feature flags the hardware-accelerated
// block transforms need, and nothing else. It is the one place in this
// module allowed to ask "what CPU am I running on" — every other package
// only ever branches on the booleans this package hands back.
package cpu

import (
	"errors"

	"golang.org/x/sys/cpu"
)

// ErrUnsupportedPlatform is returned by a package's NewHardware constructor
// when the running CPU lacks the extension that package's hardware variant
// requires. It is defined once here since every hardware-gated package
// already imports this package for feature detection.
var ErrUnsupportedPlatform = errors.New("hashme: hardware variant unsupported on this platform")

// HostEndianness enumerates the two byte orders a host can use. Every
// architecture this module targets (amd64, arm64) is little-endian, but the
// value is still modeled explicitly rather than assumed, matching the
// external platform-detection collaborator described in the design notes.
type HostEndianness int

const (
	LittleEndian HostEndianness = iota
	BigEndian
)

// Host reports the byte order of the running process's architecture.
func Host() HostEndianness {
	return LittleEndian
}

// Features is the resolved set of hardware acceleration capabilities
// available on the running CPU, matching the four flags from the external
// platform-detection collaborator.
type Features struct {
	HasARMSHA2   bool // ARMv8 SHA2 extension: SHA256H/SHA256H2/SHA256SU0/SHA256SU1
	HasARMSHA512 bool // ARMv8 SHA512 extension: SHA512H/SHA512H2/SHA512SU0/SHA512SU1
	HasARMCRC32  bool // ARMv8 CRC32 extension: crc32b/crc32d
	HasX86SHANI  bool // x86 SHA-NI: SHA256RNDS2/SHA256MSG1/SHA256MSG2
}

// Detect probes the running CPU and returns the available feature set. Each
// hardware-variant package calls it once per NewHardware call and binds the
// chosen transform into the returned Hasher, so it is never on a per-byte
// path; the result itself is not cached.
func Detect() Features {
	return Features{
		HasARMSHA2:   cpu.ARM64.HasSHA2,
		HasARMSHA512: cpu.ARM64.HasSHA512,
		HasARMCRC32:  cpu.ARM64.HasCRC32,
		HasX86SHANI:  cpu.X86.HasSHA,
	}
}
