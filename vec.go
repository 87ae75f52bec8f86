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

	"github.com/kalev/transmute/align"
	"github.com/kalev/transmute/internal/unsafecast"
	"github.com/kalev/transmute/trivial"
)

// IncompatibleVecTargetError is returned by Vec when S and T differ in size
// or alignment. It hands back the original slice, untouched.
type IncompatibleVecTargetError[S, T trivial.Type] struct {
	Vec []S
}

func (e *IncompatibleVecTargetError[S, T]) Error() string {
	return fmt.Sprintf("transmute: incompatible vec target: cannot reuse storage of %d-byte elements (align %d) for %d-byte elements (align %d)",
		sizeOf[S](), align.Of[S](), sizeOf[T](), align.Of[T]())
}

func (e *IncompatibleVecTargetError[S, T]) Unwrap() error {
	return &Error{Reason: IncompatibleVecTarget, Required: sizeOf[T](), Actual: sizeOf[S]()}
}

// Copy returns a new slice of T holding the bytes of the recovered slice.
// A trailing partial value is dropped.
func (e *IncompatibleVecTargetError[S, T]) Copy() []T {
	src := unsafecast.Bytes(e.Vec)
	out := make([]T, len(src)/sizeOf[T]())
	copy(unsafecast.Bytes(out), src)
	return out
}

// Vec converts s into a slice of T over the same backing array, keeping its
// length and capacity. S and T must have the same size and alignment,
// otherwise s is returned unchanged inside an *IncompatibleVecTargetError.
//
// On success the returned slice owns the storage and s must not be used
// again.
func Vec[S, T trivial.Type](s []S) ([]T, error) {
	if sizeOf[S]() != sizeOf[T]() || align.Of[S]() != align.Of[T]() {
		return nil, &IncompatibleVecTargetError[S, T]{Vec: s}
	}
	return unsafecast.Vec[S, T](s), nil
}

// VecInPlace is like Vec, but also clears the caller's slice on success so
// the old handle cannot be used by mistake. On failure *s is left as is.
func VecInPlace[S, T trivial.Type](s *[]S) ([]T, error) {
	out, err := Vec[S, T](*s)
	if err != nil {
		return nil, err
	}
	*s = nil
	return out, nil
}
