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

// Package interval provides an interval map keyed by closed ranges.
package interval

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/tidwall/btree"
)

// Map maps disjoint closed intervals with endpoints in K to values of type V.
//
// A zero value is ready to use.
type Map[K cmp.Ordered, V any] struct {
	// Keys are the ends of the intervals; an entry records its start. Since
	// intervals never overlap, ordering by end also orders by start.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is an entry of a [Map].
type Interval[K cmp.Ordered, V any] struct {
	// The range for this interval. Both endpoints are inclusive.
	Start, End K

	// The value associated with it. Nil means "no interval".
	Value *V
}

type entry[K cmp.Ordered, V any] struct {
	start K
	value V
}

// Len returns the number of intervals in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get looks up the interval which contains key, if one exists.
//
// If no such interval exists, the Value of the returned [Interval] is nil.
func (m *Map[K, V]) Get(key K) Interval[K, V] {
	iter := m.tree.Iter()
	// Seek finds the least end >= key; it contains key only if its start
	// does not lie past key.
	if !iter.Seek(key) || key < iter.Value().start {
		return Interval[K, V]{}
	}
	return m.wrap(iter.Key(), iter.Value())
}

// Intervals returns an iterator over the intervals in this map, in order.
func (m *Map[K, V]) Intervals() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		iter := m.tree.Iter()
		for more := iter.First(); more; more = iter.Next() {
			if !yield(m.wrap(iter.Key(), iter.Value())) {
				return
			}
		}
	}
}

// Insert inserts [start, end] with the given value.
//
// If [start, end] overlaps an interval already in the map, nothing is
// inserted and the overlapping interval with the least start is returned.
// Otherwise, the returned Value is nil.
//
// Panics if start > end.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	// The only candidate for an overlap is the least interval whose end is
	// at least start: anything ending earlier lies entirely to the left, and
	// anything after it starts after its start.
	iter := m.tree.Iter()
	if iter.Seek(start) && iter.Value().start <= end {
		return m.wrap(iter.Key(), iter.Value())
	}

	m.tree.Set(end, &entry[K, V]{start: start, value: value})
	return Interval[K, V]{}
}

func (m *Map[K, V]) wrap(end K, e *entry[K, V]) Interval[K, V] {
	return Interval[K, V]{Start: e.start, End: end, Value: &e.value}
}
