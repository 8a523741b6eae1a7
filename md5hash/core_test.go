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
// github.com:SymbolNotFound/hashme/md5hash/core_test.go

package md5hash_test

import (
	"encoding/hex"
	"strconv"
	"testing"

	"github.com/SymbolNotFound/hashme/md5hash"
)

// partitionSizes are the chunk sizes spec.md calls out as block-boundary
// edge cases: below a block, exactly a block, one over a block, and a
// multi-block tail, against MD5's 64-byte block size.
var partitionSizes = []int{1, 3, 7, 64, 65, 127, 128, 129, 1000}

func Test_Vectors(t *testing.T) {
	tests := []struct {
		name, input, expected string
	}{
		{"empty", "", "d41d8cd98f00b204e9800998ecf8427e"},
		{"123", "123", "202cb962ac59075b964b07152d234b70"},
		{"abc", "abc", "900150983cd24fb0d6963f7d28e17f72"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := md5hash.NewContext(md5hash.IV, md5hash.BlockGeneric)
			ctx.Write([]byte(tt.input))
			got := ctx.Sum()
			if hex.EncodeToString(got[:]) != tt.expected {
				t.Errorf("got %x, want %s", got, tt.expected)
			}
		})
	}
}

func Test_StreamingEquivalence(t *testing.T) {
	whole := md5hash.NewContext(md5hash.IV, md5hash.BlockGeneric)
	whole.Write([]byte("abc"))
	wantSum := whole.Sum()

	chunked := md5hash.NewContext(md5hash.IV, md5hash.BlockGeneric)
	chunked.Write([]byte("a"))
	chunked.Write([]byte("b"))
	chunked.Write([]byte("c"))
	gotSum := chunked.Sum()

	if gotSum != wantSum {
		t.Errorf("chunked write diverged from single write: got %x, want %x", gotSum, wantSum)
	}
}

func Test_ResetIdempotence(t *testing.T) {
	ctx := md5hash.NewContext(md5hash.IV, md5hash.BlockGeneric)
	ctx.Write([]byte("garbage that will be discarded"))
	ctx.Reset(md5hash.IV)
	ctx.Write([]byte("abc"))
	got := ctx.Sum()

	fresh := md5hash.NewContext(md5hash.IV, md5hash.BlockGeneric)
	fresh.Write([]byte("abc"))
	want := fresh.Sum()

	if got != want {
		t.Errorf("reset context diverged from fresh context: got %x, want %x", got, want)
	}
}

func Test_PartitionStreamingEquivalence(t *testing.T) {
	input := make([]byte, 4096)
	for i := range input {
		input[i] = byte(i)
	}

	whole := md5hash.NewContext(md5hash.IV, md5hash.BlockGeneric)
	whole.Write(input)
	want := whole.Sum()

	for _, size := range partitionSizes {
		t.Run("chunk"+strconv.Itoa(size), func(t *testing.T) {
			ctx := md5hash.NewContext(md5hash.IV, md5hash.BlockGeneric)
			remaining := input
			for len(remaining) > 0 {
				n := size
				if n > len(remaining) {
					n = len(remaining)
				}
				ctx.Write(remaining[:n])
				remaining = remaining[n:]
			}
			got := ctx.Sum()
			if got != want {
				t.Errorf("chunk size %d: got %x, want %x", size, got, want)
			}
		})
	}
}

func Test_Wipe(t *testing.T) {
	h := md5hash.New()
	h.Write([]byte("sensitive"))

	w, ok := h.(md5hash.Wiper)
	if !ok {
		t.Fatalf("New() does not implement Wiper")
	}
	w.Wipe()

	fresh := md5hash.New()
	if hex.EncodeToString(h.Sum(nil)) != hex.EncodeToString(fresh.Sum(nil)) {
		t.Errorf("wiped digest did not match a fresh zero-state digest")
	}
}

func Test_LongBlockCrossing(t *testing.T) {
	input := make([]byte, 200)
	for i := range input {
		input[i] = byte(i)
	}

	whole := md5hash.NewContext(md5hash.IV, md5hash.BlockGeneric)
	whole.Write(input)
	wantSum := whole.Sum()

	chunked := md5hash.NewContext(md5hash.IV, md5hash.BlockGeneric)
	chunked.Write(input[:50])
	chunked.Write(input[50:130])
	chunked.Write(input[130:])
	gotSum := chunked.Sum()

	if gotSum != wantSum {
		t.Errorf("chunked write diverged from single write: got %x, want %x", gotSum, wantSum)
	}
}
