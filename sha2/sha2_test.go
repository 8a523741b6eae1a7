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
// github.com:SymbolNotFound/hashme/sha2/sha2_test.go

package sha2_test

import (
	"encoding/hex"
	"strconv"
	"testing"

	"github.com/SymbolNotFound/hashme/sha2"
)

func Test_SHA256Vectors(t *testing.T) {
	tests := []struct {
		name, input, expected string
	}{
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"[:64]},
		{"123", "123", "a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := sha2.NewContext256(sha2.IV256, sha2.Block256Generic)
			ctx.Write([]byte(tt.input))
			got := ctx.Sum()
			if hex.EncodeToString(got[:]) != tt.expected {
				t.Errorf("got %x, want %s", got, tt.expected)
			}
		})
	}
}

func Test_SHA512Vector123(t *testing.T) {
	ctx := sha2.NewContext512(sha2.IV512, sha2.Block512Generic)
	ctx.Write([]byte("123"))
	got := ctx.Sum()
	want := "3c9909afec25354d551dae21590bb26e38d53f2173b8d3dc3eee4c047e7ab1c" +
		"1eb8b85103e3be7ba613b31bb5c9c36214dc9f14a42fd7a2fdb84856bca5c44c2"
	if hex.EncodeToString(got[:]) != want {
		t.Errorf("got %x, want %s", got, want)
	}
}

func Test_StreamingEquivalence256(t *testing.T) {
	whole := sha2.NewContext256(sha2.IV256, sha2.Block256Generic)
	whole.Write([]byte("123"))
	wantSum := whole.Sum()

	chunked := sha2.NewContext256(sha2.IV256, sha2.Block256Generic)
	chunked.Write([]byte("1"))
	chunked.Write([]byte("2"))
	chunked.Write([]byte("3"))
	gotSum := chunked.Sum()

	if gotSum != wantSum {
		t.Errorf("chunked write diverged from single write: got %x, want %x", gotSum, wantSum)
	}
}

func Test_TruncationConsistency224From256(t *testing.T) {
	ctx := sha2.NewContext256(sha2.IV224, sha2.Block256Generic)
	ctx.Write([]byte("123"))
	full := ctx.Sum()

	want := "78d8045d684abd2eece923758f3cd781489df3a48e1278982466017f"
	if hex.EncodeToString(full[:sha2.Size224]) != want {
		t.Errorf("SHA-224 (as truncated SHA-256 transform) got %x, want %s", full[:sha2.Size224], want)
	}
}

// partitionSizes are the chunk sizes spec.md calls out as block-boundary
// edge cases: below a block, exactly a block, one over a block, and a
// multi-block tail, for both the 64-byte and 128-byte block engines.
var partitionSizes = []int{1, 3, 7, 64, 65, 127, 128, 129, 1000}

func partitionedWrite(t *testing.T, input []byte, chunkSize int, write func([]byte)) {
	t.Helper()
	for len(input) > 0 {
		n := chunkSize
		if n > len(input) {
			n = len(input)
		}
		write(input[:n])
		input = input[n:]
	}
}

func Test_PartitionStreamingEquivalence256(t *testing.T) {
	input := make([]byte, 4096)
	for i := range input {
		input[i] = byte(i)
	}

	whole := sha2.NewContext256(sha2.IV256, sha2.Block256Generic)
	whole.Write(input)
	want := whole.Sum()

	for _, size := range partitionSizes {
		t.Run("chunk"+strconv.Itoa(size), func(t *testing.T) {
			ctx := sha2.NewContext256(sha2.IV256, sha2.Block256Generic)
			partitionedWrite(t, input, size, ctx.Write)
			got := ctx.Sum()
			if got != want {
				t.Errorf("chunk size %d: got %x, want %x", size, got, want)
			}
		})
	}
}

func Test_PartitionStreamingEquivalence512(t *testing.T) {
	input := make([]byte, 4096)
	for i := range input {
		input[i] = byte(i)
	}

	whole := sha2.NewContext512(sha2.IV512, sha2.Block512Generic)
	whole.Write(input)
	want := whole.Sum()

	for _, size := range partitionSizes {
		t.Run("chunk"+strconv.Itoa(size), func(t *testing.T) {
			ctx := sha2.NewContext512(sha2.IV512, sha2.Block512Generic)
			partitionedWrite(t, input, size, ctx.Write)
			got := ctx.Sum()
			if got != want {
				t.Errorf("chunk size %d: got %x, want %x", size, got, want)
			}
		})
	}
}

func Test_ResetIdempotence256(t *testing.T) {
	ctx := sha2.NewContext256(sha2.IV256, sha2.Block256Generic)
	ctx.Write([]byte("garbage that will be discarded"))
	ctx.Reset(sha2.IV256)
	ctx.Write([]byte("123"))
	got := ctx.Sum()

	fresh := sha2.NewContext256(sha2.IV256, sha2.Block256Generic)
	fresh.Write([]byte("123"))
	want := fresh.Sum()

	if got != want {
		t.Errorf("reset context diverged from fresh context: got %x, want %x", got, want)
	}
}
