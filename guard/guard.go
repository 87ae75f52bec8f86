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

package guard

import (
	"strconv"
	"unsafe"

	"github.com/kalev/transmute/internal/debug"
)

// Guard is a length policy. Check returns the number of elements of
// elemSize bytes that a buffer of byteLen bytes yields under the policy,
// or a *Error describing why the length is rejected.
//
// elemSize must be positive; byteLen must not be negative. The returned
// count never exceeds byteLen/elemSize.
//
// The set of policies is closed: only the four types of this package
// implement Guard.
type Guard interface {
	Check(byteLen, elemSize int) (int, error)

	isGuard()
}

// Permissive accepts any length and truncates to the largest whole number
// of elements that fit, which may be zero. Trailing bytes are ignored.
type Permissive struct{}

// Count is the error-free form of Check.
func (Permissive) Count(byteLen, elemSize int) int {
	checkArgs(byteLen, elemSize)
	return byteLen / elemSize
}

func (p Permissive) Check(byteLen, elemSize int) (int, error) {
	return p.Count(byteLen, elemSize), nil
}

// SingleValue accepts exactly one element's worth of bytes.
type SingleValue struct{}

func (SingleValue) Check(byteLen, elemSize int) (int, error) {
	checkArgs(byteLen, elemSize)
	switch {
	case byteLen < elemSize:
		return 0, notEnough(elemSize, byteLen)
	case byteLen > elemSize:
		return 0, inexact(elemSize, byteLen)
	}
	return 1, nil
}

// SingleMany accepts one or more elements' worth of bytes. A trailing
// partial element is tolerated and excluded from the count. An empty
// buffer is rejected with NotEnoughBytes.
type SingleMany struct{}

func (SingleMany) Check(byteLen, elemSize int) (int, error) {
	checkArgs(byteLen, elemSize)
	if byteLen < elemSize {
		return 0, notEnough(elemSize, byteLen)
	}
	return byteLen / elemSize, nil
}

// Pedantic accepts any exact multiple of the element size, zero included.
type Pedantic struct{}

func (Pedantic) Check(byteLen, elemSize int) (int, error) {
	checkArgs(byteLen, elemSize)
	switch {
	case byteLen == 0:
		return 0, nil
	case byteLen < elemSize:
		return 0, notEnough(elemSize, byteLen)
	case byteLen%elemSize != 0:
		return 0, inexact(elemSize, byteLen)
	}
	return byteLen / elemSize, nil
}

// CheckFor applies the policy G to byteLen bytes, measured in values of T.
func CheckFor[T any, G Guard](byteLen int) (int, error) {
	var (
		g    G
		zero T
	)
	return g.Check(byteLen, int(unsafe.Sizeof(zero)))
}

func checkArgs(byteLen, elemSize int) {
	debug.Assert(elemSize > 0, func() string { return "guard: element size must be positive, got " + strconv.Itoa(elemSize) })
	debug.Assert(byteLen >= 0, func() string { return "guard: negative byte length " + strconv.Itoa(byteLen) })
}

func (Permissive) isGuard()  {}
func (SingleValue) isGuard() {}
func (SingleMany) isGuard()  {}
func (Pedantic) isGuard()    {}

var (
	_ Guard = Permissive{}
	_ Guard = SingleValue{}
	_ Guard = SingleMany{}
	_ Guard = Pedantic{}
)
