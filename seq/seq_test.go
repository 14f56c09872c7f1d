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

package seq_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntaxtree/seq"
)

func TestFunc(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	squares := seq.NewFunc(4, func(i int) int { return i * i })
	assert.Equal(4, squares.Len())
	assert.Equal(9, squares.At(3))
	assert.Panics(func() { squares.At(4) })
	assert.Panics(func() { squares.At(-1) })

	assert.Equal([]int{0, 1, 4, 9}, seq.ToSlice(squares))
	assert.Equal([]int{0, 1, 4, 9}, slices.Collect(seq.Values(squares)))
	assert.Equal([]string{"0", "1", "4", "9"}, slices.Collect(seq.Map(squares, func(v int) string {
		return string(rune('0' + v))
	})))

	var backward []int
	for i, v := range seq.Backward(squares) {
		assert.Equal(i*i, v)
		backward = append(backward, v)
	}
	assert.Equal([]int{9, 4, 1, 0}, backward)

	var firstTwo []int
	for i, v := range seq.All(squares) {
		if i == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	assert.Equal([]int{0, 1}, firstTwo)
}
