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

package main

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/kalev/transmute"
	"github.com/kalev/transmute/guard"
	"github.com/kalev/transmute/memory"
	"github.com/kalev/transmute/trivial"
	"github.com/zeebo/xxh3"
	"golang.org/x/xerrors"
)

type elemType struct {
	name string
	// scalar is the width of the units swapped by a byte order conversion.
	scalar int
	size   uintptr
	align  uintptr
	dump   func(w io.Writer, b []byte, cfg *config) error
}

func newElemType[T trivial.Type](name string, scalar int) elemType {
	var zero T
	return elemType{
		name:   name,
		scalar: scalar,
		size:   unsafe.Sizeof(zero),
		align:  unsafe.Alignof(zero),
		dump:   dump[T],
	}
}

var elemTypes = []elemType{
	newElemType[int8]("int8", 1),
	newElemType[int16]("int16", 2),
	newElemType[int32]("int32", 4),
	newElemType[int64]("int64", 8),
	newElemType[uint8]("uint8", 1),
	newElemType[uint16]("uint16", 2),
	newElemType[uint32]("uint32", 4),
	newElemType[uint64]("uint64", 8),
	newElemType[float32]("float32", 4),
	newElemType[float64]("float64", 8),
	newElemType[complex64]("complex64", 4),
	newElemType[complex128]("complex128", 8),
	newElemType[uuid.UUID]("uuid", 1),
}

func lookupType(name string) (elemType, error) {
	for _, t := range elemTypes {
		if t.name == name {
			return t, nil
		}
	}
	return elemType{}, xerrors.Errorf("unknown type %q", name)
}

var guards = []string{"permissive", "single-value", "single-many", "pedantic"}

func validGuard(name string) bool {
	for _, g := range guards {
		if g == name {
			return true
		}
	}
	return false
}

func view[T trivial.Type](g string, b []byte, copyUnaligned bool) ([]T, error) {
	switch g {
	case "permissive":
		return viewWith[T, guard.Permissive](b, copyUnaligned)
	case "single-value":
		return viewWith[T, guard.SingleValue](b, copyUnaligned)
	case "single-many":
		return viewWith[T, guard.SingleMany](b, copyUnaligned)
	case "pedantic":
		return viewWith[T, guard.Pedantic](b, copyUnaligned)
	}
	return nil, xerrors.Errorf("unknown guard %q", g)
}

func viewWith[T trivial.Type, G guard.Guard](b []byte, copyUnaligned bool) ([]T, error) {
	vals, err := transmute.Many[T, G](b)
	if err != nil && copyUnaligned && errors.Is(err, transmute.ErrUnaligned) {
		return transmute.CopyMany[T, G](memory.DefaultAllocator, b)
	}
	return vals, err
}

func dump[T trivial.Type](w io.Writer, b []byte, cfg *config) error {
	vals, err := view[T](cfg.Guard, b, cfg.Copy)
	if err != nil {
		return err
	}

	if cfg.Checksum {
		fmt.Fprintf(w, "xxh3=%016x\n", xxh3.Hash(transmute.ToBytes(vals)))
	}

	if cfg.JSON {
		out, err := json.Marshal(jsonValues(vals))
		if err != nil {
			return xerrors.Errorf("could not encode values: %w", err)
		}
		fmt.Fprintf(w, "%s\n", out)
		return nil
	}

	fmt.Fprintf(w, "type=%s guard=%s values=%d\n", cfg.Type, cfg.Guard, len(vals))
	fmt.Fprintf(w, "%v\n", vals)
	return nil
}

// jsonValues maps the slices encoding/json would not render as a list of
// numbers onto ones it does.
func jsonValues[T trivial.Type](vals []T) interface{} {
	switch vs := any(vals).(type) {
	case []uint8:
		out := make([]uint16, len(vs))
		for i, v := range vs {
			out[i] = uint16(v)
		}
		return out
	case []complex64:
		out := make([][2]float32, len(vs))
		for i, v := range vs {
			out[i] = [2]float32{real(v), imag(v)}
		}
		return out
	case []complex128:
		out := make([][2]float64, len(vs))
		for i, v := range vs {
			out[i] = [2]float64{real(v), imag(v)}
		}
		return out
	}
	return vals
}
