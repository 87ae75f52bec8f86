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

// Package unsafecast holds the unchecked reinterpretation primitives.
//
// Nothing here validates its input. Every caller must have checked the
// buffer's alignment and length against the target type first; the checked
// entry points in the transmute package are the only intended users. The
// preconditions are verified when built with the assert tag.
package unsafecast

import (
	"fmt"
	"unsafe"

	"github.com/JohnCGriffin/overflow"
	"github.com/kalev/transmute/internal/debug"
)

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func aligned[T any](b []byte) bool {
	var zero T
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%unsafe.Alignof(zero) == 0
}

// Value returns a copy of the first T stored in b.
//
// b must hold at least one T and start at an address aligned for T.
func Value[T any](b []byte) T {
	debug.Assert(len(b) >= sizeOf[T](), "unsafecast: buffer too short for value")
	debug.Assert(aligned[T](b), "unsafecast: unaligned value")
	return *(*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Slice returns a view of the first n values of type T stored in b. The
// view aliases b; its length and capacity are both n.
//
// b must hold at least n values of T and, unless n is zero, start at an
// address aligned for T.
func Slice[T any](b []byte, n int) []T {
	if n == 0 {
		return []T{}
	}
	debug.Assert(n*sizeOf[T]() <= len(b), "unsafecast: view exceeds buffer")
	debug.Assert(aligned[T](b), "unsafecast: unaligned view")
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// Bytes returns the bytes backing s. Length and capacity are scaled by the
// size of E.
func Bytes[E any](s []E) []byte {
	if s == nil {
		return nil
	}
	size := sizeOf[E]()
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), scale(cap(s), size, 1))[:scale(len(s), size, 1)]
}

// Vec reuses the storage of s for a slice of T. Length and capacity are
// recomputed in units of T as n*sizeof(S)/sizeof(T).
//
// The contents of s must be valid values of T, and T's alignment must not
// exceed S's. s must not be used after the call.
func Vec[S, T any](s []S) []T {
	if s == nil {
		return nil
	}

	var zero T
	from, to := sizeOf[S](), sizeOf[T]()
	debug.Assert(to > 0, "unsafecast: zero-sized target")
	debug.Assert(unsafe.Alignof(zero) <= unsafe.Alignof(*new(S)), "unsafecast: target alignment exceeds source")

	n, c := scale(len(s), from, to), scale(cap(s), from, to)
	debug.Log(func() string {
		return fmt.Sprintf("unsafecast: vec len=%d cap=%d size=%d -> len=%d cap=%d size=%d", len(s), cap(s), from, n, c, to)
	})
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(s))), c)[:n]
}

func scale(n, from, to int) int {
	nbytes, ok := overflow.Mul(n, from)
	if !ok {
		panic(fmt.Sprintf("unsafecast: %d elements of %d bytes overflows int", n, from))
	}
	return nbytes / to
}

// ValueBytes returns the bytes of the value v points to.
func ValueBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), sizeOf[T]())
}
