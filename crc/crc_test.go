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
// github.com:SymbolNotFound/hashme/crc/crc_test.go

package crc_test

import (
	"testing"

	"github.com/SymbolNotFound/hashme/crc"
)

func Test_CRC16ARCVector(t *testing.T) {
	e := crc.NewEngine16(0xA001, 0x0000, 0x0000)
	e.Update([]byte("123"))
	if got, want := e.Sum16(), uint16(0xba04); got != want {
		t.Errorf("got %04x, want %04x", got, want)
	}
}

func Test_CRC32ISOHDLCVector(t *testing.T) {
	e := crc.NewEngine32(0xEDB88320, 0xFFFFFFFF, 0xFFFFFFFF)
	e.Update([]byte("123"))
	if got, want := e.Sum32(), uint32(0x884863d2); got != want {
		t.Errorf("got %08x, want %08x", got, want)
	}
}

func Test_CRC64ECMA182Vector(t *testing.T) {
	e := crc.NewEngine64(0xC96C5795D7870F42, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF)
	e.Update([]byte("123"))
	if got, want := e.Sum64(), uint64(0x30232844071cc561); got != want {
		t.Errorf("got %016x, want %016x", got, want)
	}
}

func Test_TablePurity(t *testing.T) {
	a := crc.MakeTable32(0xEDB88320)
	b := crc.MakeTable32(0xEDB88320)
	if *a != *b {
		t.Errorf("two tables built from the same polynomial diverged")
	}
}

func Test_StreamingEquivalence32(t *testing.T) {
	whole := crc.NewEngine32(0xEDB88320, 0xFFFFFFFF, 0xFFFFFFFF)
	whole.Update([]byte("123"))
	want := whole.Sum32()

	chunked := crc.NewEngine32(0xEDB88320, 0xFFFFFFFF, 0xFFFFFFFF)
	chunked.Update([]byte("1"))
	chunked.Update([]byte("2"))
	chunked.Update([]byte("3"))
	got := chunked.Sum32()

	if got != want {
		t.Errorf("chunked update diverged from single update: got %08x, want %08x", got, want)
	}
}

func Test_ResetIdempotence32(t *testing.T) {
	e := crc.NewEngine32(0xEDB88320, 0xFFFFFFFF, 0xFFFFFFFF)
	e.Update([]byte("garbage"))
	e.Reset()
	e.Update([]byte("123"))
	if got, want := e.Sum32(), uint32(0x884863d2); got != want {
		t.Errorf("got %08x, want %08x", got, want)
	}
}
