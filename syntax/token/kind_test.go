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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntaxtree/syntax/token"
)

func TestKindNames(t *testing.T) {
	t.Parallel()

	for k := token.Unknown; k <= token.RightAngle; k++ {
		name := k.String()
		assert.NotContains(t, name, "token.Kind(")

		got, ok := token.KindByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, k, got)
	}

	_, ok := token.KindByName("Semicolon")
	assert.False(t, ok)
	assert.Equal(t, "token.Kind(200)", token.Kind(200).String())
}

func TestSpelling(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ":", token.Colon.Spelling())
	assert.Equal(t, ",", token.Comma.Spelling())
	assert.Equal(t, "(", token.LeftParen.Spelling())
	assert.Equal(t, ")", token.RightParen.Spelling())
	assert.Equal(t, "<", token.LeftAngle.Spelling())
	assert.Equal(t, ">", token.RightAngle.Spelling())

	assert.True(t, token.Comma.IsPunct())
	assert.False(t, token.Identifier.IsPunct())
	assert.False(t, token.PrefixOperator.IsPunct())
	assert.Empty(t, token.EOF.Spelling())
}
