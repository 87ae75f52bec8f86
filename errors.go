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
	"errors"
	"fmt"

	"github.com/kalev/transmute/align"
	"github.com/kalev/transmute/guard"
	"golang.org/x/xerrors"
)

// ErrorReason identifies the kind of a transmutation failure.
type ErrorReason int8

const (
	// NotEnoughBytes means the buffer is shorter than the policy requires.
	NotEnoughBytes ErrorReason = iota + 1
	// InexactByteCount means the buffer is longer than the policy permits
	// or ends in a partial value the policy does not tolerate.
	InexactByteCount
	// Unaligned means the buffer's start address does not satisfy the
	// target type's alignment.
	Unaligned
	// IncompatibleVecTarget means a slice's storage cannot be reused for
	// an element type of different size or alignment.
	IncompatibleVecTarget
)

func (r ErrorReason) String() string {
	switch r {
	case NotEnoughBytes:
		return "not enough bytes"
	case InexactByteCount:
		return "inexact byte count"
	case Unaligned:
		return "unaligned"
	case IncompatibleVecTarget:
		return "incompatible vec target"
	}
	return fmt.Sprintf("ErrorReason(%d)", int8(r))
}

var (
	ErrNotEnoughBytes        = guard.ErrNotEnoughBytes
	ErrInexactByteCount      = guard.ErrInexactByteCount
	ErrUnaligned             = align.ErrUnaligned
	ErrIncompatibleVecTarget = errors.New("transmute: incompatible vec target")
	ErrLengthOverflow        = errors.New("transmute: length overflows int")
)

// Error is the failure returned by every checked entry point.
//
// For NotEnoughBytes and InexactByteCount, Required is the size in bytes of
// one value and Actual the length of the buffer. For Unaligned, Required is
// the alignment of the target type and Actual the buffer address modulo that
// alignment. For IncompatibleVecTarget, Required and Actual are the sizes of
// the target and source element types.
type Error struct {
	Reason   ErrorReason
	Required int
	Actual   int

	// Err is the underlying *guard.Error or *align.Error, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Reason {
	case NotEnoughBytes:
		return fmt.Sprintf("transmute: not enough bytes to fill value: required=%d, actual=%d", e.Required, e.Actual)
	case InexactByteCount:
		return fmt.Sprintf("transmute: byte count is not an exact multiple of the value size: required=%d, actual=%d", e.Required, e.Actual)
	case Unaligned:
		return fmt.Sprintf("transmute: buffer is not aligned: required alignment=%d, misaligned by %d bytes", e.Required, e.Actual)
	}
	return fmt.Sprintf("transmute: %s: required=%d, actual=%d", e.Reason, e.Required, e.Actual)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel error for e's Reason.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotEnoughBytes:
		return e.Reason == NotEnoughBytes
	case ErrInexactByteCount:
		return e.Reason == InexactByteCount
	case ErrUnaligned:
		return e.Reason == Unaligned
	case ErrIncompatibleVecTarget:
		return e.Reason == IncompatibleVecTarget
	}
	return false
}

func (e *Error) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *Error) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	if !p.Detail() {
		return nil
	}
	p.Printf("reason=%s required=%d actual=%d", e.Reason, e.Required, e.Actual)
	return e.Err
}

func guardError(err error) error {
	var gerr *guard.Error
	if !errors.As(err, &gerr) {
		return err
	}

	out := &Error{Required: gerr.Required, Actual: gerr.Actual, Err: gerr}
	switch gerr.Reason {
	case guard.NotEnoughBytes:
		out.Reason = NotEnoughBytes
	case guard.InexactByteCount:
		out.Reason = InexactByteCount
	}
	return out
}

func alignError(err error) error {
	var aerr *align.Error
	if !errors.As(err, &aerr) {
		return err
	}
	return &Error{
		Reason:   Unaligned,
		Required: int(aerr.Alignment),
		Actual:   int(aerr.Address % aerr.Alignment),
		Err:      aerr,
	}
}
