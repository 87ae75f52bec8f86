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
	"github.com/kalev/transmute/align"
	"github.com/kalev/transmute/guard"
	"github.com/kalev/transmute/internal/unsafecast"
	"github.com/kalev/transmute/memory"
	"github.com/kalev/transmute/trivial"
)

// CopyMany copies the values of T held in b, as counted by the policy G,
// into a new buffer obtained from mem. It is the fallback for input that
// Many rejects as unaligned, and accepts b at any address. A nil mem uses
// memory.DefaultAllocator.
//
// The returned slice's storage belongs to mem; release it with
// mem.Free(ToBytes(vals)).
func CopyMany[T trivial.Type, G guard.Guard](mem memory.Allocator, b []byte) ([]T, error) {
	n, err := guard.CheckFor[T, G](len(b))
	if err != nil {
		return nil, guardError(err)
	}
	checkCount(n, sizeOf[T](), len(b))
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	nbytes := n * sizeOf[T]()
	buf := mem.Allocate(nbytes)
	copy(buf, b[:nbytes])
	if err := align.CheckBytes[T](buf); err != nil {
		mem.Free(buf)
		return nil, alignError(err)
	}
	return unsafecast.Slice[T](buf, n), nil
}
