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
// github.com:SymbolNotFound/hashme/internal/byteorder/byteorder_test.go

package byteorder_test

import (
	"testing"

	"github.com/SymbolNotFound/hashme/internal/byteorder"
)

func Test_BigEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	byteorder.PutBigUint32(buf, 0x01020304)
	if got := byteorder.BigUint32(buf); got != 0x01020304 {
		t.Errorf("BigUint32 round trip: got %#x, want %#x", got, 0x01020304)
	}
	if buf[0] != 0x01 || buf[3] != 0x04 {
		t.Errorf("PutBigUint32 wrote wrong byte order: %v", buf[:4])
	}

	byteorder.PutBigUint64(buf, 0x0102030405060708)
	if got := byteorder.BigUint64(buf); got != 0x0102030405060708 {
		t.Errorf("BigUint64 round trip: got %#x, want %#x", got, 0x0102030405060708)
	}
	if buf[0] != 0x01 || buf[7] != 0x08 {
		t.Errorf("PutBigUint64 wrote wrong byte order: %v", buf)
	}
}

func Test_LittleEndianRoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	byteorder.PutLittleUint32(buf, 0x01020304)
	if got := byteorder.LittleUint32(buf); got != 0x01020304 {
		t.Errorf("LittleUint32 round trip: got %#x, want %#x", got, 0x01020304)
	}
	if buf[0] != 0x04 || buf[3] != 0x01 {
		t.Errorf("PutLittleUint32 wrote wrong byte order: %v", buf[:4])
	}

	byteorder.PutLittleUint64(buf, 0x0102030405060708)
	if got := byteorder.LittleUint64(buf); got != 0x0102030405060708 {
		t.Errorf("LittleUint64 round trip: got %#x, want %#x", got, 0x0102030405060708)
	}
}

func Test_Swap(t *testing.T) {
	if got := byteorder.SwapUint32(0x01020304); got != 0x04030201 {
		t.Errorf("SwapUint32: got %#x, want %#x", got, 0x04030201)
	}
	if got := byteorder.SwapUint64(0x0102030405060708); got != 0x0807060504030201 {
		t.Errorf("SwapUint64: got %#x, want %#x", got, 0x0807060504030201)
	}
}
