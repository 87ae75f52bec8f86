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

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/kalev/transmute"
	"github.com/kalev/transmute/internal/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func writeInput(t *testing.T, data []byte) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(fname, data, 0o644))
	return fname
}

func defaultConfig(fname string) config {
	return config{
		Type:      "uint8",
		Guard:     "pedantic",
		Offset:    "0",
		Codec:     "none",
		ByteOrder: "native",
		File:      fname,
	}
}

func runConfig(t *testing.T, cfg config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(&out, cfg)
	return out.String(), err
}

func TestCatByteOrder(t *testing.T) {
	for _, tc := range []struct {
		name  string
		order binary.ByteOrder
		flag  string
	}{
		{"little", binary.LittleEndian, "little"},
		{"big", binary.BigEndian, "big"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data := make([]byte, 6)
			for i, v := range []uint16{1, 2, 0x0102} {
				tc.order.PutUint16(data[2*i:], v)
			}

			cfg := defaultConfig(writeInput(t, data))
			cfg.Type = "uint16"
			cfg.ByteOrder = tc.flag

			got, err := runConfig(t, cfg)
			require.NoError(t, err)
			assert.Equal(t, "type=uint16 guard=pedantic values=3\n[1 2 258]\n", got)
		})
	}
}

func TestCatGuards(t *testing.T) {
	data := make([]byte, 10)
	for i, v := range []int32{-1, 7} {
		binary.LittleEndian.PutUint32(data[4*i:], uint32(v))
	}
	fname := writeInput(t, data)

	for _, tc := range []struct {
		guard string
		want  string
		err   error
	}{
		{guard: "permissive", want: "type=int32 guard=permissive values=2\n[-1 7]\n"},
		{guard: "single-value", err: transmute.ErrInexactByteCount},
		{guard: "single-many", want: "type=int32 guard=single-many values=2\n[-1 7]\n"},
		{guard: "pedantic", err: transmute.ErrInexactByteCount},
	} {
		t.Run(tc.guard, func(t *testing.T) {
			cfg := defaultConfig(fname)
			cfg.Type = "int32"
			cfg.Guard = tc.guard
			cfg.ByteOrder = "little"

			got, err := runConfig(t, cfg)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCatNotEnoughBytes(t *testing.T) {
	cfg := defaultConfig(writeInput(t, []byte{1, 2, 3}))
	cfg.Type = "uint64"
	cfg.Guard = "single-value"

	_, err := runConfig(t, cfg)
	assert.ErrorIs(t, err, transmute.ErrNotEnoughBytes)
}

func TestCatOffset(t *testing.T) {
	data := make([]byte, 9)
	binary.LittleEndian.PutUint32(data[1:], 40)
	binary.LittleEndian.PutUint32(data[5:], 2)
	fname := writeInput(t, data)

	cfg := defaultConfig(fname)
	cfg.Type = "uint32"
	cfg.Offset = "1"
	cfg.ByteOrder = "little"

	t.Run("unaligned", func(t *testing.T) {
		_, err := runConfig(t, cfg)
		assert.ErrorIs(t, err, transmute.ErrUnaligned)
	})

	t.Run("copy", func(t *testing.T) {
		cfg := cfg
		cfg.Copy = true
		got, err := runConfig(t, cfg)
		require.NoError(t, err)
		assert.Equal(t, "type=uint32 guard=pedantic values=2\n[40 2]\n", got)
	})

	t.Run("past end", func(t *testing.T) {
		cfg := cfg
		cfg.Offset = "10"
		_, err := runConfig(t, cfg)
		assert.Error(t, err)
	})
}

func TestCatCodecs(t *testing.T) {
	raw := []byte{5, 4, 3, 2, 1}
	for _, c := range []compress.Compression{
		compress.Uncompressed,
		compress.Snappy,
		compress.Gzip,
		compress.Brotli,
		compress.Lz4,
		compress.Zstd,
	} {
		t.Run(c.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(c)
			require.NoError(t, err)

			var buf bytes.Buffer
			wr, err := codec.NewWriter(&buf)
			require.NoError(t, err)
			_, err = wr.Write(raw)
			require.NoError(t, err)
			require.NoError(t, wr.Close())

			cfg := defaultConfig(writeInput(t, buf.Bytes()))
			cfg.Codec = c.String()

			got, err := runConfig(t, cfg)
			require.NoError(t, err)
			assert.Equal(t, "type=uint8 guard=pedantic values=5\n[5 4 3 2 1]\n", got)
		})
	}
}

func TestCatJSON(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		cfg := defaultConfig(writeInput(t, []byte{1, 2, 255}))
		cfg.JSON = true

		got, err := runConfig(t, cfg)
		require.NoError(t, err)
		assert.JSONEq(t, "[1,2,255]", got)
	})

	t.Run("complex64", func(t *testing.T) {
		vals := []complex64{complex(1, 2), complex(-0.5, 4)}
		cfg := defaultConfig(writeInput(t, append([]byte(nil), transmute.ToBytes(vals)...)))
		cfg.Type = "complex64"
		cfg.JSON = true

		got, err := runConfig(t, cfg)
		require.NoError(t, err)
		assert.JSONEq(t, "[[1,2],[-0.5,4]]", got)
	})

	t.Run("uuid", func(t *testing.T) {
		id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		cfg := defaultConfig(writeInput(t, id[:]))
		cfg.Type = "uuid"
		cfg.JSON = true

		got, err := runConfig(t, cfg)
		require.NoError(t, err)
		assert.JSONEq(t, `["6ba7b810-9dad-11d1-80b4-00c04fd430c8"]`, got)
	})
}

func TestCatUUIDText(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	cfg := defaultConfig(writeInput(t, append(a[:], b[:]...)))
	cfg.Type = "uuid"
	cfg.ByteOrder = "big"

	got, err := runConfig(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("type=uuid guard=pedantic values=2\n[%s %s]\n", a, b), got)
}

func TestCatChecksum(t *testing.T) {
	raw := []byte("checksummed bytes")
	cfg := defaultConfig(writeInput(t, raw))
	cfg.Checksum = true

	got, err := runConfig(t, cfg)
	require.NoError(t, err)
	assert.Contains(t, got, fmt.Sprintf("xxh3=%016x\n", xxh3.Hash(raw)))
}

func TestCatInvalidConfig(t *testing.T) {
	fname := writeInput(t, []byte{1})
	for _, tc := range []struct {
		name   string
		modify func(*config)
	}{
		{"type", func(c *config) { c.Type = "int128" }},
		{"guard", func(c *config) { c.Guard = "strict" }},
		{"offset", func(c *config) { c.Offset = "-1" }},
		{"codec", func(c *config) { c.Codec = "bzip2" }},
		{"byte order", func(c *config) { c.ByteOrder = "middle" }},
		{"missing file", func(c *config) { c.File = filepath.Join(t.TempDir(), "missing") }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig(fname)
			tc.modify(&cfg)
			var out bytes.Buffer
			assert.Error(t, run(&out, cfg))
			assert.Zero(t, out.Len())
		})
	}
}

func TestPlatform(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, platform(&out))

	got := out.String()
	assert.Contains(t, got, "byte-order:")
	assert.Contains(t, got, "cache-line:")
	for _, typ := range elemTypes {
		assert.Contains(t, got, typ.name)
	}
}
