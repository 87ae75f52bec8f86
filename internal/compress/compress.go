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

// Package compress provides the stream codecs transmute-cat accepts its
// input in.
package compress

import (
	"fmt"
	"io"
	"strings"
)

// Compression identifies a codec.
type Compression int8

const (
	Uncompressed Compression = iota
	Snappy
	Gzip
	Brotli
	Lz4
	Zstd
)

var names = map[Compression]string{
	Uncompressed: "uncompressed",
	Snappy:       "snappy",
	Gzip:         "gzip",
	Brotli:       "brotli",
	Lz4:          "lz4",
	Zstd:         "zstd",
}

func (c Compression) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("Compression(%d)", int8(c))
}

// ParseCompression returns the codec named s, case insensitively. The
// empty string and "none" mean Uncompressed.
func ParseCompression(s string) (Compression, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return Uncompressed, nil
	}
	for c, n := range names {
		if n == s {
			return c, nil
		}
	}
	return Uncompressed, fmt.Errorf("compress: unknown codec %q", s)
}

// Codec wraps streams with compression and decompression.
type Codec interface {
	// NewReader provides a reader that wraps a stream with compressed data
	// to stream the uncompressed data.
	NewReader(io.Reader) (io.ReadCloser, error)
	// NewWriter provides a wrapper around a write stream to compress data
	// before writing it.
	NewWriter(io.Writer) (io.WriteCloser, error)
}

var codecs = map[Compression]Codec{}

type nocodec struct{}

func (nocodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

type writerNopCloser struct {
	io.Writer
}

func (writerNopCloser) Close() error {
	return nil
}

func (nocodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if wc, ok := w.(io.WriteCloser); ok {
		return wc, nil
	}
	return writerNopCloser{w}, nil
}

func init() {
	codecs[Uncompressed] = nocodec{}
}

// GetCodec returns the Codec for c.
func GetCodec(c Compression) (Codec, error) {
	ret, ok := codecs[c]
	if !ok {
		return nil, fmt.Errorf("compress: codec %s unimplemented", c)
	}
	return ret, nil
}

// ReadAll decompresses everything r yields with codec c.
func ReadAll(c Compression, r io.Reader) ([]byte, error) {
	codec, err := GetCodec(c)
	if err != nil {
		return nil, err
	}
	rdr, err := codec.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("compress: %s: %w", c, err)
	}
	defer rdr.Close()

	out, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("compress: %s: %w", c, err)
	}
	return out, nil
}
