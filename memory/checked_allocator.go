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

package memory

import (
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// CheckedAllocator wraps an Allocator and records every outstanding
// allocation together with its call site.
type CheckedAllocator struct {
	mem Allocator
	sz  atomic.Int64

	allocs sync.Map
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	if mem == nil {
		mem = DefaultAllocator
	}
	return &CheckedAllocator{mem: mem}
}

// CurrentAlloc returns the number of bytes allocated and not yet freed.
func (a *CheckedAllocator) CurrentAlloc() int { return int(a.sz.Load()) }

func (a *CheckedAllocator) Allocate(size int) []byte {
	a.sz.Add(int64(size))
	out := a.mem.Allocate(size)
	if size == 0 {
		return out
	}

	if pc, _, l, ok := runtime.Caller(allocFrames); ok {
		a.allocs.Store(addressOf(out), &dalloc{pc: pc, line: l, sz: size})
	}
	return out
}

func (a *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	a.sz.Add(int64(size - len(b)))

	out := a.mem.Reallocate(size, b)
	if len(b) != 0 {
		a.allocs.Delete(addressOf(b))
	}
	if size == 0 {
		return out
	}

	if pc, _, l, ok := runtime.Caller(reallocFrames); ok {
		a.allocs.Store(addressOf(out), &dalloc{pc: pc, line: l, sz: size})
	}
	return out
}

func (a *CheckedAllocator) Free(b []byte) {
	a.sz.Add(int64(-len(b)))
	defer a.mem.Free(b)

	if len(b) == 0 {
		return
	}
	a.allocs.Delete(addressOf(b))
}

// allocations are usually made by the copy helpers of the transmute package
// rather than by callers directly; skip the helper's frame so the recorded
// site is the code that asked for the copy.
const (
	defAllocFrames   = 2
	defReallocFrames = 1
)

// Use the environment variables TRANSMUTE_CHECKED_ALLOC_FRAMES and
// TRANSMUTE_CHECKED_REALLOC_FRAMES to control how many frames up it checks
// when storing the caller for allocations/reallocs when hunting leaks.
var allocFrames, reallocFrames = defAllocFrames, defReallocFrames

func init() {
	if val, ok := os.LookupEnv("TRANSMUTE_CHECKED_ALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			allocFrames = f
		}
	}

	if val, ok := os.LookupEnv("TRANSMUTE_CHECKED_REALLOC_FRAMES"); ok {
		if f, err := strconv.Atoi(val); err == nil {
			reallocFrames = f
		}
	}
}

type dalloc struct {
	pc   uintptr
	line int
	sz   int
}

// TestingT is the subset of testing.TB used by the assertion helpers.
type TestingT interface {
	Errorf(format string, args ...interface{})
	Helper()
}

// AssertSize reports every outstanding allocation as a leak and fails t
// unless exactly sz bytes are outstanding.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	t.Helper()
	a.allocs.Range(func(_, value interface{}) bool {
		info := value.(*dalloc)
		f := runtime.FuncForPC(info.pc)
		t.Errorf("LEAK of %d bytes FROM %s line %d\n", info.sz, f.Name(), info.line)
		return true
	})

	if cur := a.CurrentAlloc(); cur != sz {
		t.Errorf("invalid memory size exp=%d, got=%d", sz, cur)
	}
}

var (
	_ Allocator = (*CheckedAllocator)(nil)
)
