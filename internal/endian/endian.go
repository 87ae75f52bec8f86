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

// Package endian reports the host byte order and converts encoded values
// into it.
//
// Reinterpretation never converts byte order; callers holding data in a
// fixed encoding convert it to host order with this package first.
package endian

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// IsBigEndian is true when the host stores multi-byte values most
// significant byte first.
var IsBigEndian = cpu.IsBigEndian

// Native is the host byte order.
var Native binary.ByteOrder = binary.LittleEndian

func init() {
	if IsBigEndian {
		Native = binary.BigEndian
	}
}

// Swap reverses the bytes of every whole size-byte element of b in place.
// A trailing partial element is left untouched.
func Swap(b []byte, size int) {
	if size <= 1 {
		return
	}
	for i := 0; i+size <= len(b); i += size {
		e := b[i : i+size]
		for l, r := 0, size-1; l < r; l, r = l+1, r-1 {
			e[l], e[r] = e[r], e[l]
		}
	}
}

// Convert returns a copy of b in which every size-byte element encoded in
// order has been converted to the host byte order.
func Convert(b []byte, size int, order binary.ByteOrder) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	if order != Native {
		Swap(out, size)
	}
	return out
}

// ToNative returns a copy of le, which holds little-endian encoded values
// of the scalar type T, in host byte order. For arrays, instantiate with
// the array's element type.
func ToNative[T any](le []byte) []byte {
	var zero T
	return Convert(le, int(unsafe.Sizeof(zero)), binary.LittleEndian)
}
