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

// Package align checks that a buffer's start address satisfies the
// alignment requirement of a target element type.
//
// Typed views over raw bytes may only be formed at addresses that are a
// multiple of the element type's alignment. Byte sized types (alignment 1)
// always pass, and mutability of the buffer plays no role.
package align

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/kalev/transmute/internal/debug"
)

var ErrUnaligned = errors.New("align: unaligned memory access")

// Error reports a buffer whose start address does not satisfy the
// requested alignment.
type Error struct {
	Address   uintptr
	Alignment uintptr
	// Offset is the number of bytes to skip from Address to reach the next
	// aligned address.
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("align: address 0x%x is not aligned to %d bytes (next aligned offset %d)", e.Address, e.Alignment, e.Offset)
}

// Is reports whether target is ErrUnaligned.
func (e *Error) Is(target error) bool { return target == ErrUnaligned }

func checkAlignment(alignment uintptr) {
	debug.Assert(alignment != 0 && alignment&(alignment-1) == 0, func() string {
		return fmt.Sprintf("align: alignment must be a power of two, got %d", alignment)
	})
}

// Check returns a *Error unless addr is a multiple of alignment, which
// must be a power of two.
func Check(addr, alignment uintptr) error {
	checkAlignment(alignment)
	if addr%alignment == 0 {
		return nil
	}
	return &Error{Address: addr, Alignment: alignment, Offset: Offset(addr, alignment)}
}

// IsAligned reports whether addr is a multiple of alignment, which must be
// a power of two.
func IsAligned(addr, alignment uintptr) bool {
	checkAlignment(alignment)
	return addr%alignment == 0
}

// Offset returns the number of bytes between addr and the next address
// that is a multiple of alignment. It is zero for an aligned addr.
// alignment must be a power of two.
func Offset(addr, alignment uintptr) int {
	checkAlignment(alignment)
	rem := addr % alignment
	if rem == 0 {
		return 0
	}
	return int(alignment - rem)
}

// Of returns the minimum alignment of T.
func Of[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}

// AddressOf returns the start address of b's backing array.
func AddressOf[E any](b []E) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// CheckBytes checks that b starts at an address suitable for values of T.
// An empty buffer always passes since no value can be read from it.
func CheckBytes[T any](b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return Check(AddressOf(b), Of[T]())
}
