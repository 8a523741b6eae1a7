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
// github.com:SymbolNotFound/hashme/crc64hash/digest_test.go

package crc64hash_test

import (
	"encoding/hex"
	"testing"

	"github.com/SymbolNotFound/hashme/crc64hash"
)

func Test_Vector123(t *testing.T) {
	h := crc64hash.New()
	h.Write([]byte("123"))
	if got, want := h.Sum64(), uint64(0x30232844071cc561); got != want {
		t.Errorf("Sum64() = %016x, want %016x", got, want)
	}
	if got, want := hex.EncodeToString(h.Sum(nil)), "30232844071cc561"; got != want {
		t.Errorf("Sum(nil) = %s, want %s", got, want)
	}
}

func Test_SizeAndBlockSize(t *testing.T) {
	h := crc64hash.New()
	if h.Size() != 8 {
		t.Errorf("Size() = %d, want 8", h.Size())
	}
}
