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

package memory

import (
	"fmt"

	"github.com/JohnCGriffin/overflow"
)

// GoAllocator allocates from the Go heap. Buffers are padded so that they
// start on a multiple of the allocator's alignment; the zero value uses
// Alignment.
type GoAllocator struct {
	alignment int
}

func NewGoAllocator() *GoAllocator { return &GoAllocator{alignment: Alignment} }

// NewGoAllocatorWithAlignment returns a GoAllocator whose buffers start on
// a multiple of alignment, which must be a power of two.
func NewGoAllocatorWithAlignment(alignment int) *GoAllocator {
	if !isPowerOf2(alignment) {
		panic(fmt.Sprintf("memory: alignment %d is not a power of two", alignment))
	}
	return &GoAllocator{alignment: alignment}
}

func (a *GoAllocator) align() int {
	if a.alignment == 0 {
		return Alignment
	}
	return a.alignment
}

func (a *GoAllocator) Allocate(size int) []byte {
	alignment := a.align()
	padded, ok := overflow.Add(size, alignment)
	if !ok {
		panic(fmt.Sprintf("memory: allocation of %d bytes overflows int", size))
	}

	buf := make([]byte, padded)
	addr := int(addressOf(buf))
	next := roundToPowerOf2(addr, alignment)
	if addr != next {
		shift := next - addr
		return buf[shift : size+shift : size+shift]
	}
	return buf[:size:size]
}

func (a *GoAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}

	newBuf := a.Allocate(size)
	copy(newBuf, b)
	return newBuf
}

func (a *GoAllocator) Free(b []byte) {}

var (
	_ Allocator = (*GoAllocator)(nil)
)
