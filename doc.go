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

/*
Package transmute reinterprets byte buffers as slices of fixed-layout values,
and slices of one element type as slices of another, without copying.

A reinterpretation is defined only when two properties hold: the buffer's
length fits the target element size, and the buffer's start address
satisfies the target type's alignment. Every checked entry point verifies
both, alignment first, and reports a failure as an *Error:

	vals, err := transmute.Many[uint16, guard.Pedantic](buf)
	if errors.Is(err, transmute.ErrUnaligned) {
		vals, err = transmute.CopyMany[uint16, guard.Pedantic](nil, buf)
	}

How many values a buffer yields is decided by a length policy from the guard
package, chosen as a type parameter:

  - guard.Permissive truncates to as many whole values as fit.
  - guard.SingleValue requires exactly one value.
  - guard.SingleMany requires at least one value and ignores a trailing
    partial value.
  - guard.Pedantic requires a whole number of values, zero included.

Only types in trivial.Type, for which every bit pattern is a valid value, can
be targets. Anything else is rejected by the compiler.

# Views

The slices returned by Many, ManyPedantic and ManyPermissive
alias the input buffer: writing through the view writes the buffer, and the
view is valid for exactly as long as the buffer is. Callers must not hand a
view to code that mutates the buffer concurrently, and must not mutate the
buffer while a view of it is being read.

# Byte order

No byte order conversion is performed. Values are read in host order, so
data encoded in a fixed byte order has to be converted by the caller first.

# Reusing storage

Vec turns a []S into a []T over the same backing array when S and T have the
same size and alignment. On mismatch the original slice is handed back in an
*IncompatibleVecTargetError, whose Copy method performs the element-wise
fallback.
*/
package transmute
