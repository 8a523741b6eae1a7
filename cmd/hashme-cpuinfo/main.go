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
// github.com:SymbolNotFound/hashme/cmd/hashme-cpuinfo/main.go

// hashme-cpuinfo reports, in human-readable form, which hardware-accelerated
// digest variants this binary would be able to construct on the running
// machine. It uses a richer feature-detection library than the module's own
// internal/cpu package, which only exposes the handful of booleans the
// transforms actually branch on; this binary exists to show the full
// picture to a person instead.
package main

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"

	hashmecpu "github.com/SymbolNotFound/hashme/internal/cpu"
)

func main() {
	fmt.Printf("CPU: %s\n", cpuid.CPU.BrandName)
	fmt.Printf("Vendor: %s\n", cpuid.CPU.VendorString)
	fmt.Printf("Architecture features relevant to hashme:\n")
	fmt.Printf("  AES-NI:        %v\n", cpuid.CPU.Supports(cpuid.AESNI))
	fmt.Printf("  SHA extension: %v\n", cpuid.CPU.Supports(cpuid.SHA))

	features := hashmecpu.Detect()
	fmt.Println()
	fmt.Println("hardware-accelerated variants this build would select:")
	fmt.Printf("  sha256hash.NewHardware: %v\n", features.HasARMSHA2 || features.HasX86SHANI)
	fmt.Printf("  sha512hash.NewHardware: %v\n", features.HasARMSHA512)
	fmt.Printf("  crc32hash.NewHardware:  %v\n", features.HasARMCRC32)
}
