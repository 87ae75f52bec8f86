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

package trivial_test

import (
	"testing"
	"time"
	"unsafe"

	"github.com/google/uuid"
	"github.com/kalev/transmute/trivial"
	"github.com/stretchr/testify/assert"
)

type celsius float32

type rgba [4]uint8

func sizeOf[T trivial.Type]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func alignOf[T trivial.Type]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

func TestScalarMembers(t *testing.T) {
	assert.Equal(t, 1, sizeOf[int8]())
	assert.Equal(t, 1, sizeOf[uint8]())
	assert.Equal(t, 2, sizeOf[int16]())
	assert.Equal(t, 2, sizeOf[uint16]())
	assert.Equal(t, 4, sizeOf[int32]())
	assert.Equal(t, 4, sizeOf[uint32]())
	assert.Equal(t, 4, sizeOf[float32]())
	assert.Equal(t, 8, sizeOf[int64]())
	assert.Equal(t, 8, sizeOf[uint64]())
	assert.Equal(t, 8, sizeOf[float64]())
	assert.Equal(t, 8, sizeOf[complex64]())
	assert.Equal(t, 16, sizeOf[complex128]())
	assert.Equal(t, int(unsafe.Sizeof(uintptr(0))), sizeOf[uintptr]())
	assert.Equal(t, int(unsafe.Sizeof(0)), sizeOf[int]())
}

func TestWrapperMembers(t *testing.T) {
	assert.Equal(t, 4, sizeOf[celsius]())
	assert.Equal(t, 8, sizeOf[time.Duration]())
	assert.Equal(t, 4, sizeOf[rgba]())
	assert.Equal(t, 1, alignOf[rgba]())
	assert.Equal(t, 16, sizeOf[uuid.UUID]())
	assert.Equal(t, 1, alignOf[uuid.UUID]())
}

func TestArrayMembers(t *testing.T) {
	assert.Equal(t, 4, sizeOf[[2]uint16]())
	assert.Equal(t, 2, alignOf[[2]uint16]())
	assert.Equal(t, 12, sizeOf[[3]float32]())
	assert.Equal(t, 32, sizeOf[[4]float64]())
	assert.Equal(t, int(unsafe.Alignof(float64(0))), alignOf[[4]float64]())
	assert.Equal(t, 64, sizeOf[[8]int64]())
	assert.Equal(t, 256, sizeOf[[16]complex128]())
}
