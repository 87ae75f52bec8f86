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

// Package guard provides the length policies that decide how many values of
// a fixed-size element type a byte buffer yields.
//
// A policy is selected statically, usually as a type parameter of the
// reinterpretation functions in the parent package:
//
//	vals, err := transmute.Many[uint16, guard.Pedantic](buf)
//
// Four policies exist:
//
//   - Permissive: any length, as many whole elements as fit. Never fails.
//   - SingleValue: exactly one element.
//   - SingleMany: at least one element, a trailing partial element is ignored.
//   - Pedantic: a whole number of elements, zero included.
//
// Every policy answers in constant time from the byte length and the
// element size alone; the buffer contents are never examined.
package guard
