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
	"errors"
	"fmt"
)

// Reason describes why a guard rejected a byte length.
type Reason int8

const (
	// NotEnoughBytes means the buffer is too short for the policy.
	NotEnoughBytes Reason = iota + 1
	// InexactByteCount means the buffer holds more bytes than the policy
	// accepts, or bytes that do not form a whole element.
	InexactByteCount
)

func (r Reason) String() string {
	switch r {
	case NotEnoughBytes:
		return "not enough bytes"
	case InexactByteCount:
		return "inexact byte count"
	}
	return fmt.Sprintf("Reason(%d)", int8(r))
}

var (
	ErrNotEnoughBytes   = errors.New("guard: not enough bytes")
	ErrInexactByteCount = errors.New("guard: inexact byte count")
)

// Error is returned by a Guard which rejects a byte length.
type Error struct {
	// Required is the element size in bytes the policy measured against.
	Required int
	// Actual is the byte length that was checked.
	Actual int
	Reason Reason
}

func (e *Error) Error() string {
	switch e.Reason {
	case NotEnoughBytes:
		return fmt.Sprintf("guard: not enough bytes to fill value: required=%d, actual=%d", e.Required, e.Actual)
	case InexactByteCount:
		return fmt.Sprintf("guard: byte count is not an exact multiple of the value size: required=%d, actual=%d", e.Required, e.Actual)
	}
	return fmt.Sprintf("guard: %s: required=%d, actual=%d", e.Reason, e.Required, e.Actual)
}

// Is reports whether target is the sentinel matching e's Reason.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotEnoughBytes:
		return e.Reason == NotEnoughBytes
	case ErrInexactByteCount:
		return e.Reason == InexactByteCount
	}
	return false
}

func notEnough(elemSize, byteLen int) error {
	return &Error{Required: elemSize, Actual: byteLen, Reason: NotEnoughBytes}
}

func inexact(elemSize, byteLen int) error {
	return &Error{Required: elemSize, Actual: byteLen, Reason: InexactByteCount}
}
