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
// github.com:SymbolNotFound/hashme/sha512hash/digest_test.go

package sha512hash_test

import (
	"encoding/hex"
	"testing"

	"github.com/SymbolNotFound/hashme/internal/fixture"
	"github.com/SymbolNotFound/hashme/sha512hash"
)

func Test_Vector123(t *testing.T) {
	h := sha512hash.New()
	h.Write([]byte("123"))
	got := h.Sum(nil)
	want := "3c9909afec25354d551dae21590bb26e38d53f2173b8d3dc3eee4c047e7ab1c" +
		"1eb8b85103e3be7ba613b31bb5c9c36214dc9f14a42fd7a2fdb84856bca5c44c2"
	if hex.EncodeToString(got) != want {
		t.Errorf("got %x, want %s", got, want)
	}
}

func Test_CopyIndependence(t *testing.T) {
	h := sha512hash.New()
	h.Write([]byte("12"))
	cp := sha512hash.NewCopy(h)

	h.Write([]byte("3"))
	cp.Write([]byte("X"))

	if hex.EncodeToString(h.Sum(nil)) == hex.EncodeToString(cp.Sum(nil)) {
		t.Errorf("copy shared mutable state with the original")
	}
}

func Test_NewHardwareUnsupportedOrEquivalent(t *testing.T) {
	hw, err := sha512hash.NewHardware()
	if err != nil {
		return
	}

	sw := sha512hash.New()
	corpus := fixture.Corpus(2, 1<<20)

	hw.Write(corpus)
	sw.Write(corpus)

	if hex.EncodeToString(hw.Sum(nil)) != hex.EncodeToString(sw.Sum(nil)) {
		t.Errorf("hardware and software variants diverged on a 1 MiB corpus")
	}
}

func Test_SizeAndBlockSize(t *testing.T) {
	h := sha512hash.New()
	if h.Size() != 64 {
		t.Errorf("Size() = %d, want 64", h.Size())
	}
	if h.BlockSize() != 128 {
		t.Errorf("BlockSize() = %d, want 128", h.BlockSize())
	}
}
