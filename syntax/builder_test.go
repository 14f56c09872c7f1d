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

package syntax_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntaxtree/syntax"
	"github.com/bufbuild/syntaxtree/syntax/raw"
	"github.com/bufbuild/syntaxtree/syntax/token"
)

func TestBuilderOrder(t *testing.T) {
	t.Parallel()

	b := syntax.NewFunctionCallExprBuilder().
		UseRightParen(syntax.RightParen()).
		UseCalledExpression(ref("f"))
	for _, name := range []string{"a", "b", "c"} {
		b.AppendArgument(syntax.BlankFunctionCallArgument().WithExpression(ref(name)))
	}
	b.UseLeftParen(syntax.LeftParen())

	call, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "f(abc)", call.String())
}

func TestBuilderIndependence(t *testing.T) {
	t.Parallel()

	b := syntax.NewSourceFileBuilder().AppendItem(ref("a"))
	first, err := b.Build()
	require.NoError(t, err)

	b.AppendItem(ref("b")).UseEOF(syntax.EOF(raw.Newlines(1)))
	second, err := b.Build()
	require.NoError(t, err)
	third, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "a", first.String())
	assert.True(t, first.EOF().IsZero())
	assert.Equal(t, "ab\n", second.String())
	assert.NotSame(t, second.Raw(), third.Raw())
	assert.NotSame(t, second.Items().Raw(), third.Items().Raw())
	assert.True(t, raw.Equal(second.Raw(), third.Raw()))

	// Using a zero value resets the slot.
	b.UseEOF(syntax.Token{})
	fourth, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "ab", fourth.String())
}

func TestBuilderErrors(t *testing.T) {
	t.Parallel()

	b := syntax.NewFunctionCallExprBuilder().
		UseLeftParen(syntax.RightParen()).
		UseRightParen(syntax.LeftParen()).
		AppendArgument(syntax.FunctionCallArgument{Node: ref("x").Node})

	_, err := b.Build()
	var shapeErr *raw.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, raw.FunctionCallExpr, shapeErr.Kind)
	assert.Equal(t, "LeftParen", shapeErr.Field)

	// The error sticks.
	b.UseLeftParen(syntax.LeftParen())
	_, err = b.Build()
	require.ErrorIs(t, err, raw.ErrShape)

	_, err = syntax.NewGenericArgumentClauseBuilder().
		AppendArgument(syntax.GenericArgument{Node: syntax.Comma().Node}).
		Build()
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, raw.GenericArgumentList, shapeErr.Kind)
	assert.Equal(t, 0, shapeErr.Slot)
}

type trees []*raw.Raw

func (ts trees) Trees() iter.Seq2[*raw.Raw, error] {
	return func(yield func(*raw.Raw, error) bool) {
		for _, t := range ts {
			if !yield(t, nil) {
				return
			}
		}
	}
}

type failing struct{ err error }

func (f failing) Trees() iter.Seq2[*raw.Raw, error] {
	return func(yield func(*raw.Raw, error) bool) {
		yield(nil, f.err)
	}
}

func TestCollectSourceFile(t *testing.T) {
	t.Parallel()

	comma := raw.MakeToken(token.Comma, ",", nil, raw.Spaces(1), raw.Present)
	eof := raw.MakeToken(token.EOF, "", raw.Newlines(2), nil, raw.Present)

	file, err := syntax.CollectSourceFile(trees{ref("f").Raw(), comma, ref("g").Raw(), eof})
	require.NoError(t, err)
	assert.Equal(t, "f, g\n\n", file.String())

	items := file.Items()
	require.Equal(t, 3, items.Len())
	assert.False(t, items.At(0).AsSymbolicReference().IsZero())
	assert.Same(t, comma, items.At(1).AsUnknown().Child(0).Raw())
	assert.Same(t, eof, file.EOF().Raw())
	assert.Equal(t, 3, file.EOF().TextPosition().Line)

	boom := errors.New("boom")
	_, err = syntax.CollectSourceFile(failing{boom})
	require.ErrorIs(t, err, boom)

	bad := raw.Make(raw.IntegerLiteralExpr, nil, raw.Present)
	_, err = syntax.CollectSourceFile(trees{bad})
	require.ErrorIs(t, err, raw.ErrShape)
}
