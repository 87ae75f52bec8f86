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
	"github.com/JohnCGriffin/overflow"
	"github.com/kalev/transmute/internal/unsafecast"
	"github.com/kalev/transmute/trivial"
	"golang.org/x/xerrors"
)

// ToBytes views s as its underlying bytes. Every byte pattern is a valid
// byte, so this cannot fail. The view aliases s.
func ToBytes[T trivial.Type](s []T) []byte {
	return unsafecast.Bytes(s)
}

// OneToBytes views the value v points to as its underlying bytes.
func OneToBytes[T trivial.Type](v *T) []byte {
	return unsafecast.ValueBytes(v)
}

// BytesRequired returns the number of bytes n values of T occupy.
func BytesRequired[T trivial.Type](n int) (int, error) {
	nbytes, ok := overflow.Mul(n, sizeOf[T]())
	if !ok || n < 0 {
		return 0, xerrors.Errorf("%d values of %d bytes: %w", n, sizeOf[T](), ErrLengthOverflow)
	}
	return nbytes, nil
}
