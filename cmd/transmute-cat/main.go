// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command transmute-cat views a raw dump of native values as typed values.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/docopt/docopt-go"
	"github.com/kalev/transmute/internal/compress"
	"github.com/kalev/transmute/internal/endian"
	"github.com/kalev/transmute/memory"
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/xerrors"
)

const usage = `Transmute Cat.
Usage:
  transmute-cat -h | --help
  transmute-cat --platform
  transmute-cat [--type=TYPE] [--guard=GUARD] [--offset=N] [--codec=CODEC]
                [--byte-order=ORDER] [--copy] [--json] [--checksum] <file>
Options:
  -h --help             Show this screen.
  --platform            Print the host byte order, CPU and type layouts.
  --type=TYPE           Element type, see --platform for the list. [default: uint8]
  --guard=GUARD         Length policy: permissive, single-value, single-many or pedantic. [default: pedantic]
  --offset=N            Skip the first N bytes of the input. [default: 0]
  --codec=CODEC         Input compression: none, snappy, gzip, brotli, lz4 or zstd. [default: none]
  --byte-order=ORDER    Byte order of the input: native, little or big. [default: native]
  --copy                Copy the values into an aligned buffer when the view is unaligned.
  --json                Format values as JSON instead of text.
  --checksum            Print the xxh3 hash of the viewed bytes.`

type config struct {
	Help      bool   `docopt:"--help"`
	Platform  bool   `docopt:"--platform"`
	Type      string `docopt:"--type"`
	Guard     string `docopt:"--guard"`
	Offset    string `docopt:"--offset"`
	Codec     string `docopt:"--codec"`
	ByteOrder string `docopt:"--byte-order"`
	Copy      bool   `docopt:"--copy"`
	JSON      bool   `docopt:"--json"`
	Checksum  bool   `docopt:"--checksum"`
	File      string `docopt:"<file>"`
}

func main() {
	log.SetPrefix("transmute-cat: ")
	log.SetFlags(0)

	opts, _ := docopt.ParseDoc(usage)
	var cfg config
	if err := opts.Bind(&cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.Platform {
		if err := platform(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, cfg config) error {
	typ, err := lookupType(cfg.Type)
	if err != nil {
		return err
	}
	if !validGuard(cfg.Guard) {
		return xerrors.Errorf("unknown guard %q", cfg.Guard)
	}
	offset, err := strconv.Atoi(cfg.Offset)
	if err != nil || offset < 0 {
		return xerrors.Errorf("invalid offset %q", cfg.Offset)
	}
	codec, err := compress.ParseCompression(cfg.Codec)
	if err != nil {
		return xerrors.Errorf("invalid codec: %w", err)
	}
	order, err := parseByteOrder(cfg.ByteOrder)
	if err != nil {
		return err
	}

	data, err := readInput(cfg.File, codec)
	if err != nil {
		return err
	}
	if offset > len(data) {
		return xerrors.Errorf("offset %d is past the end of the %d byte input", offset, len(data))
	}

	mem := memory.NewGoAllocator()
	buf := mem.Allocate(len(data))
	defer mem.Free(buf)
	copy(buf, data)

	b := buf[offset:]
	if order != endian.Native {
		endian.Swap(b, typ.scalar)
	}

	if err := typ.dump(w, b, &cfg); err != nil {
		return xerrors.Errorf("could not view %s as %s: %w", cfg.File, typ.name, err)
	}
	return nil
}

func readInput(fname string, codec compress.Compression) ([]byte, error) {
	var r io.Reader = os.Stdin
	if fname != "-" {
		f, err := os.Open(fname)
		if err != nil {
			return nil, xerrors.Errorf("could not open input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := compress.ReadAll(codec, r)
	if err != nil {
		return nil, xerrors.Errorf("could not read %s input: %w", codec, err)
	}
	return data, nil
}

func parseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "native":
		return endian.Native, nil
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	}
	return nil, xerrors.Errorf("unknown byte order %q", s)
}

func platform(w io.Writer) error {
	order := "little"
	if endian.IsBigEndian {
		order = "big"
	}
	fmt.Fprintf(w, "os/arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "byte-order: %s\n", order)
	fmt.Fprintf(w, "cpu:        %s\n", cpuid.CPU.BrandName)
	fmt.Fprintf(w, "cache-line: %d\n", cpuid.CPU.CacheLine)
	fmt.Fprintf(w, "alignment:  %d\n", memory.Alignment)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "type\tsize\talign")
	for _, t := range elemTypes {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", t.name, t.size, t.align)
	}
	return tw.Flush()
}
