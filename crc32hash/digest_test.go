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
// github.com:SymbolNotFound/hashme/crc32hash/digest_test.go

package crc32hash_test

import (
	"encoding/hex"
	"testing"

	"github.com/SymbolNotFound/hashme/crc32hash"
	"github.com/SymbolNotFound/hashme/internal/fixture"
)

func Test_Vector123(t *testing.T) {
	h := crc32hash.New()
	h.Write([]byte("123"))
	if got, want := h.Sum32(), uint32(0x884863d2); got != want {
		t.Errorf("Sum32() = %08x, want %08x", got, want)
	}
	if got, want := hex.EncodeToString(h.Sum(nil)), "884863d2"; got != want {
		t.Errorf("Sum(nil) = %s, want %s", got, want)
	}
}

func Test_CopyIndependence(t *testing.T) {
	h := crc32hash.New()
	h.Write([]byte("12"))
	cp := crc32hash.NewCopy(h)

	h.Write([]byte("3"))
	cp.Write([]byte("X"))

	if h.Sum32() == cp.Sum32() {
		t.Errorf("copy shared mutable state with the original")
	}
}

func Test_NewHardwareUnsupportedOrEquivalent(t *testing.T) {
	hw, err := crc32hash.NewHardware()
	if err != nil {
		return
	}

	sw := crc32hash.New()
	corpus := fixture.Corpus(3, 1<<20)

	hw.Write(corpus)
	sw.Write(corpus)

	if hw.Sum32() != sw.Sum32() {
		t.Errorf("hardware and software variants diverged on a 1 MiB corpus")
	}
}

func Test_SizeAndBlockSize(t *testing.T) {
	h := crc32hash.New()
	if h.Size() != 4 {
		t.Errorf("Size() = %d, want 4", h.Size())
	}
}
