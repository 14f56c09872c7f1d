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

package interval_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxtree/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()
	type r struct {
		start, end int
		value      string
	}

	tests := []struct {
		name   string
		ranges []r    // Ranges to insert.
		want   string // If not "", the value of the overlap for the last range.
	}{
		{name: "empty-map", ranges: []r{{0, 9, "foo"}}},
		{name: "new-max", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}}},
		{name: "new-min", ranges: []r{{30, 39, "bar"}, {0, 9, "foo"}}},
		{name: "between", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {10, 29, "baz"}}},

		{name: "subset", ranges: []r{{0, 9, "foo"}, {1, 2, "baz"}}, want: "foo"},
		{name: "equal", ranges: []r{{0, 9, "foo"}, {0, 9, "baz"}}, want: "foo"},
		{name: "left-edge", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {9, 29, "baz"}}, want: "foo"},
		{name: "right-edge", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {20, 30, "baz"}}, want: "bar"},
		{name: "superset", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {-2, 40, "baz"}}, want: "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			type v struct{ v string } // This aids in pretty-printing for assertions.
			m := new(interval.Map[int, v])
			for i, e := range tt.ranges {
				overlap := m.Insert(e.start, e.end, v{e.value})
				if i < len(tt.ranges)-1 || tt.want == "" {
					require.Nil(t, overlap.Value)
				} else {
					assert.Equal(t, &v{tt.want}, overlap.Value)
				}
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	m := new(interval.Map[int, string])
	m.Insert(0, 2, "foo")
	m.Insert(3, 3, "(")
	m.Insert(7, 9, "bar")
	assert.Equal(3, m.Len())

	for key, want := range map[int]string{0: "foo", 2: "foo", 3: "(", 7: "bar", 9: "bar"} {
		got := m.Get(key)
		if assert.NotNil(got.Value, "key %d", key) {
			assert.Equal(want, *got.Value, "key %d", key)
		}
	}
	for _, key := range []int{-1, 4, 6, 10} {
		assert.Nil(m.Get(key).Value, "key %d", key)
	}

	starts := slices.Collect(func(yield func(int) bool) {
		for iv := range m.Intervals() {
			if !yield(iv.Start) {
				return
			}
		}
	})
	assert.Equal([]int{0, 3, 7}, starts)
}
