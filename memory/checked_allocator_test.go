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

package memory_test

import (
	"fmt"
	"testing"

	"github.com/kalev/transmute/memory"
	"github.com/stretchr/testify/assert"
)

type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) Helper() {}

func TestCheckedAllocator(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	buf := mem.Allocate(100)
	assert.Equal(t, 100, mem.CurrentAlloc())

	buf = mem.Reallocate(250, buf)
	assert.Len(t, buf, 250)
	assert.Equal(t, 250, mem.CurrentAlloc())

	empty := mem.Allocate(0)
	assert.Equal(t, 250, mem.CurrentAlloc())
	mem.Free(empty)

	mem.Free(buf)
	assert.Zero(t, mem.CurrentAlloc())
}

func TestCheckedAllocatorReportsLeaks(t *testing.T) {
	mem := memory.NewCheckedAllocator(nil)
	buf := mem.Allocate(16)

	rec := &recordingT{}
	mem.AssertSize(rec, 0)
	if assert.Len(t, rec.errors, 2) {
		assert.Contains(t, rec.errors[0], "LEAK of 16 bytes")
		assert.Equal(t, "invalid memory size exp=0, got=16", rec.errors[1])
	}

	mem.Free(buf)
	rec = &recordingT{}
	mem.AssertSize(rec, 0)
	assert.Empty(t, rec.errors)
}
