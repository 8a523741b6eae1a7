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
// github.com:SymbolNotFound/hashme/cmd/hashme-sum/main.go

package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/SymbolNotFound/hashme/crc16"
	"github.com/SymbolNotFound/hashme/crc32hash"
	"github.com/SymbolNotFound/hashme/crc64hash"
	"github.com/SymbolNotFound/hashme/md5hash"
	"github.com/SymbolNotFound/hashme/sha224"
	"github.com/SymbolNotFound/hashme/sha256hash"
	"github.com/SymbolNotFound/hashme/sha384"
	"github.com/SymbolNotFound/hashme/sha512hash"
)

// summer is the common shape every algorithm package's Hasher satisfies; a
// Go interface value from any of those packages assigns to it directly.
type summer interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
}

// algo names one of the checksum/digest families this binary can compute,
// and how to construct its software and (if any) hardware variant.
type algo struct {
	name     string
	software func() summer
	hardware func() (summer, error)
}

var algos = map[string]algo{
	"md5":    {name: "md5", software: func() summer { return md5hash.New() }},
	"sha224": {name: "sha224", software: func() summer { return sha224.New() }, hardware: wrap224},
	"sha256": {name: "sha256", software: func() summer { return sha256hash.New() }, hardware: wrap256},
	"sha384": {name: "sha384", software: func() summer { return sha384.New() }, hardware: wrap384},
	"sha512": {name: "sha512", software: func() summer { return sha512hash.New() }, hardware: wrap512},
	"crc16":  {name: "crc16", software: func() summer { return crc16.New() }},
	"crc32":  {name: "crc32", software: func() summer { return crc32hash.New() }, hardware: wrap32},
	"crc64":  {name: "crc64", software: func() summer { return crc64hash.New() }},
}

func wrap224() (summer, error) { return sha224.NewHardware() }
func wrap256() (summer, error) { return sha256hash.NewHardware() }
func wrap384() (summer, error) { return sha384.NewHardware() }
func wrap512() (summer, error) { return sha512hash.NewHardware() }
func wrap32() (summer, error)  { return crc32hash.NewHardware() }

func main() {
	algoName := flag.String("algo", "sha256",
		"digest algorithm: md5, sha224, sha256, sha384, sha512, crc16, crc32, crc64")
	filename := flag.String("file", "", "path to a file that should be hashed")
	useHardware := flag.Bool("hardware", false,
		"use the hardware-accelerated variant (falls back to an error if unsupported)")
	base64output := flag.Bool("base64", false, "print the digest in base-64 instead of hex")

	flag.Parse()

	a, ok := algos[*algoName]
	if !ok {
		fmt.Printf("unknown algorithm %q\n\n", *algoName)
		flag.Usage()
		os.Exit(2)
	}

	var input []byte
	if len(*filename) > 0 {
		var err error
		input, err = os.ReadFile(*filename)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		args := flag.Args()
		if len(args) == 0 {
			fmt.Println("Expected a --file flag or a string argument. Quitting.")
			fmt.Println()
			flag.Usage()
			return
		}
		input = []byte(args[0])
	}

	var h summer
	if *useHardware {
		if a.hardware == nil {
			log.Fatalf("%s has no hardware-accelerated variant", a.name)
		}
		var err error
		h, err = a.hardware()
		if err != nil {
			log.Fatal(err)
		}
	} else {
		h = a.software()
	}

	h.Write(input)
	sum := h.Sum(nil)

	if *base64output {
		fmt.Println(base64.StdEncoding.EncodeToString(sum))
	} else {
		fmt.Println(hex.EncodeToString(sum))
	}
}
