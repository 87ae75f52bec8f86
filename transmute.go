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

package transmute

import (
	"fmt"
	"unsafe"

	"github.com/kalev/transmute/align"
	"github.com/kalev/transmute/guard"
	"github.com/kalev/transmute/internal/debug"
	"github.com/kalev/transmute/internal/unsafecast"
	"github.com/kalev/transmute/trivial"
)

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func checkCount(n, size, byteLen int) {
	debug.Assert(n >= 0 && n <= byteLen/size, func() string {
		return fmt.Sprintf("transmute: guard count %d of %d-byte values exceeds %d-byte buffer", n, size, byteLen)
	})
}

// One reads a single value of T from the start of b. Bytes past the first
// value are ignored.
//
// An error is returned if b is not aligned for T, or if b is shorter than
// one value.
func One[T trivial.Type](b []byte) (T, error) {
	return one[T, guard.SingleMany](b)
}

// OnePedantic reads a single value of T from b, which must hold exactly
// one value.
//
// An error is returned if b is not aligned for T, or if its length differs
// from the size of T.
func OnePedantic[T trivial.Type](b []byte) (T, error) {
	return one[T, guard.SingleValue](b)
}

func one[T trivial.Type, G guard.Guard](b []byte) (T, error) {
	var zero T
	if err := align.CheckBytes[T](b); err != nil {
		return zero, alignError(err)
	}
	if _, err := guard.CheckFor[T, G](len(b)); err != nil {
		return zero, guardError(err)
	}
	return unsafecast.Value[T](b), nil
}

// Many views b as a slice of T holding as many values as the policy G
// counts. The view aliases b; both length and capacity equal the count.
//
// An error is returned if b is not aligned for T, or if G rejects its
// length. Alignment is checked first.
func Many[T trivial.Type, G guard.Guard](b []byte) ([]T, error) {
	if err := align.CheckBytes[T](b); err != nil {
		return nil, alignError(err)
	}
	n, err := guard.CheckFor[T, G](len(b))
	if err != nil {
		return nil, guardError(err)
	}
	checkCount(n, sizeOf[T](), len(b))
	return unsafecast.Slice[T](b, n), nil
}

// ManyPedantic views b as a slice of T. The length of b must be a whole
// multiple of the size of T; an empty b yields an empty view.
func ManyPedantic[T trivial.Type](b []byte) ([]T, error) {
	return Many[T, guard.Pedantic](b)
}

// ManyPermissive views b as a slice of as many values of T as fit, ignoring
// trailing bytes. The only possible failure is b not being aligned for T.
func ManyPermissive[T trivial.Type](b []byte) ([]T, error) {
	if err := align.CheckBytes[T](b); err != nil {
		return nil, alignError(err)
	}
	return unsafecast.Slice[T](b, guard.Permissive{}.Count(len(b), sizeOf[T]())), nil
}
