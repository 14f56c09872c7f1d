// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arena provides an append-only [Arena] addressed by compressed
// pointers.
//
// Values stored in an arena never move, so a *T obtained from [Arena.Deref]
// stays valid for the lifetime of the arena. A [Pointer] is four bytes wide
// and carries no reference of its own: whatever owns the arena owns every
// value in it, which makes pointers suitable for back-references that must
// not keep anything alive.
package arena

import (
	"fmt"
	"iter"
	"math/bits"

	"fortio.org/safecast"
)

const (
	// minChunkShift is the log2 of the size of the first chunk.
	minChunkShift = 4
	minChunkLen   = 1 << minChunkShift
)

// Pointer is a compressed pointer into an [Arena][T].
//
// The value of a pointer is one plus the number of values allocated before
// it, so the zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// String implements [fmt.Stringer].
func (p Pointer[T]) String() string {
	if p.Nil() {
		return "arena.Pointer(<nil>)"
	}
	return fmt.Sprintf("arena.Pointer(%d)", uint32(p)-1)
}

// Arena is a growable table of T whose elements are never moved.
//
// Storage is a list of chunks whose capacities double, mimicking the growth
// of an ordinary slice without ever copying. Lookup is O(1).
//
// A zero Arena is empty and ready to use. Arena is not safe for concurrent
// mutation; callers that share one must synchronize.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(chunks[0]) == minChunkLen.
	// 2. cap(chunks[n]) == 2*cap(chunks[n-1]).
	// 3. len(chunks[n]) == cap(chunks[n]) for every chunk but the last.
	chunks [][]T
}

// New appends value to the arena and returns a pointer to it.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.chunks == nil {
		a.chunks = [][]T{make([]T, 0, minChunkLen)}
	}

	last := &a.chunks[len(a.chunks)-1]
	if len(*last) == cap(*last) {
		a.chunks = append(a.chunks, make([]T, 0, 2*cap(*last)))
		last = &a.chunks[len(a.chunks)-1]
	}
	*last = append(*last, value)

	n, err := safecast.Conv[uint32](a.Len())
	if err != nil {
		panic(fmt.Sprintf("syntaxtree/arena: arena is full: %v", err))
	}
	return Pointer[T](n)
}

// Deref returns the value p points to.
//
// p must have been returned by a call to New on this arena. Panics if p is
// nil or out of range.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	if p.Nil() {
		panic("syntaxtree/arena: dereferenced nil pointer")
	}
	chunk, idx := a.coordinates(int(p) - 1)
	return &a.chunks[chunk][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}
	return chunksLen(len(a.chunks)-1) + len(a.chunks[len(a.chunks)-1])
}

// All returns an iterator over every pointer in this arena and its value,
// in allocation order.
func (a *Arena[T]) All() iter.Seq2[Pointer[T], *T] {
	return func(yield func(Pointer[T], *T) bool) {
		var p Pointer[T]
		for _, chunk := range a.chunks {
			for i := range chunk {
				p++
				if !yield(p, &chunk[i]) {
					return
				}
			}
		}
	}
}

// chunksLen returns the total capacity of the first n chunks.
//
// Since chunk k holds minChunkLen<<k values, the sum over k < n telescopes
// to (minChunkLen<<n) - minChunkLen.
func chunksLen(n int) int {
	return (minChunkLen << n) - minChunkLen
}

// coordinates maps a zero-based index to a chunk and an offset within it.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx < 0 || idx >= a.Len() {
		panic(fmt.Sprintf("syntaxtree/arena: pointer out of range: %#x", idx+1))
	}

	// Chunk n starts at index (2^n - 1) << minChunkShift. Adding minChunkLen
	// turns those starts into 2^n << minChunkShift, whose highest set bit
	// (one-indexed) is n + minChunkShift + 1.
	chunk := bits.UintSize - bits.LeadingZeros(uint(idx)+minChunkLen)
	chunk -= minChunkShift + 1

	return chunk, idx - chunksLen(chunk)
}
