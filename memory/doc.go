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
Package memory provides allocators that hand out byte buffers aligned for any
element type a buffer can be reinterpreted as.

Reinterpreting a byte buffer requires its start address to satisfy the target
type's alignment. Buffers from GoAllocator start on a 64-byte boundary, which
satisfies every type in the trivial set, so they are the usual destination
when unaligned input has to be copied before it can be viewed.

CheckedAllocator wraps another Allocator and records outstanding
allocations, which tests use to detect leaks.
*/
package memory
