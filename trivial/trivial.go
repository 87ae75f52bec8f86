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

// Package trivial defines the closed set of element types that may be
// materialized from an arbitrary bit pattern of the right size.
//
// Membership is a compile-time property expressed as a type constraint;
// nothing in this package is evaluated at run time. Every bit pattern is a
// valid value of an integer, floating point or complex number, and of a
// fixed-size array of those, so such types may be the target of a checked
// reinterpretation. Types with invalid bit patterns or hidden invariants,
// such as bool, pointers, strings, slices, maps, channels, interfaces and
// structs, are excluded: naming one as a target fails to compile.
//
// All terms are approximation (~) elements, so named types whose
// underlying type is in the set qualify:
//
//	type Celsius float32 // satisfies trivial.Type
//	type Digest [16]byte // satisfies trivial.Type
package trivial

//go:generate go run gen.go

import "golang.org/x/exp/constraints"

// Scalar is satisfied by the integer, floating point and complex kinds.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Type is satisfied by every type that may be the target of a checked
// reinterpretation.
type Type interface {
	Scalar | Array
}
