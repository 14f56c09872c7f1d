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
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/syntaxtree/seq"
	"github.com/bufbuild/syntaxtree/source"
	"github.com/bufbuild/syntaxtree/syntax"
	"github.com/bufbuild/syntaxtree/syntax/raw"
	"github.com/bufbuild/syntaxtree/syntax/token"
)

// twoLines builds "foo\n  -42\n".
func twoLines(t *testing.T) syntax.SourceFile {
	t.Helper()

	foo := syntax.BlankSymbolicReferenceExpr().WithIdentifier(syntax.Identifier("foo"))
	minus := syntax.PrefixOperator("-").WithLeadingTrivia(raw.Newlines(1).Append(raw.Spaces(2)...))
	lit := syntax.BlankIntegerLiteralExpr().
		WithSign(minus).
		WithDigits(syntax.IntegerLiteral("42"))

	file, err := syntax.NewSourceFileBuilder().
		AppendItem(foo.AsExpr()).
		AppendItem(lit.AsExpr()).
		UseEOF(syntax.EOF(raw.Newlines(1))).
		Build()
	require.NoError(t, err)
	require.Equal(t, "foo\n  -42\n", file.String())
	return file
}

func TestPositions(t *testing.T) {
	t.Parallel()

	file := twoLines(t)
	items := file.Items()
	lit := items.At(1).AsIntegerLiteral()
	require.False(t, lit.IsZero())

	loc := func(offset, line, col int) source.Location {
		return source.Location{Offset: offset, Line: line, Column: col}
	}

	assert.Equal(t, source.Start, file.Position())
	assert.Equal(t, loc(0, 1, 1), items.At(0).Position())
	assert.Equal(t, loc(3, 1, 4), lit.Position())
	assert.Equal(t, loc(3, 1, 4), lit.Sign().Position())
	assert.Equal(t, loc(6, 2, 3), lit.Sign().TextPosition())
	assert.Equal(t, loc(7, 2, 4), lit.Digits().Position())
	assert.Equal(t, loc(9, 2, 6), file.EOF().Position())
	assert.Equal(t, loc(10, 3, 1), file.EOF().TextPosition())

	// Missing nodes are positioned where they would be.
	clause := items.At(0).Child(int(raw.SymbolicReferenceExprGenericArgumentClause))
	assert.True(t, clause.IsMissing())
	assert.Equal(t, loc(3, 1, 4), clause.Position())
}

func TestSplitLineBreak(t *testing.T) {
	t.Parallel()

	cr := raw.Trivia{{Kind: raw.CarriageReturn, Text: "\r"}}
	a := syntax.BlankSymbolicReferenceExpr().WithIdentifier(syntax.Identifier("a").WithTrailingTrivia(cr))
	b := syntax.BlankSymbolicReferenceExpr().WithIdentifier(syntax.Identifier("b").WithLeadingTrivia(raw.Newlines(1)))
	file, err := syntax.NewSourceFileBuilder().
		AppendItem(a.AsExpr()).
		AppendItem(b.AsExpr()).
		UseEOF(syntax.EOF(nil)).
		Build()
	require.NoError(t, err)
	require.Equal(t, "a\r\nb", file.String())

	// The "\r\n" pair straddles two items, but is one line break.
	loc := func(offset, line, col int) source.Location {
		return source.Location{Offset: offset, Line: line, Column: col}
	}
	assert.Equal(t, loc(4, 2, 2), file.EOF().TextPosition())
	assert.Equal(t, loc(4, 2, 2), file.EOF().Location(syntax.LocationOptions{Unit: source.Runes}))
	ident := file.Items().At(1).AsSymbolicReference().Identifier()
	assert.Equal(t, loc(2, 2, 1), ident.Position())
	assert.Equal(t, loc(3, 2, 1), ident.TextPosition())
	assert.Equal(t, loc(2, 2, 1), ident.Location(syntax.LocationOptions{Unit: source.UTF16}))
}

func TestLocationUnits(t *testing.T) {
	t.Parallel()

	ref := syntax.BlankSymbolicReferenceExpr().WithIdentifier(syntax.Identifier("世x"))
	lit := syntax.BlankIntegerLiteralExpr().WithDigits(syntax.IntegerLiteral("1"))
	list := syntax.BlankExprList().Appending(ref.AsExpr(), lit.AsExpr())
	digits := list.At(1).AsIntegerLiteral().Digits()

	tests := []struct {
		unit source.Unit
		col  int
	}{
		{source.Bytes, 5},
		{source.Runes, 3},
		{source.UTF16, 3},
		{source.TermWidth, 4},
	}
	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			t.Parallel()

			got := digits.Location(syntax.LocationOptions{Unit: tt.unit})
			assert.Equal(t, source.Location{Offset: 4, Line: 1, Column: tt.col}, got)
		})
	}
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	file := twoLines(t)
	items := file.Items()

	assert.Equal(t, file.Node, items.Parent())
	assert.Equal(t, file.Node, items.Root())
	assert.Equal(t, 1, items.At(1).IndexInParent())
	assert.Equal(t, items.Node, items.At(1).Parent())
	assert.Equal(t, items.At(1), items.At(1), "contexts are cached")
	assert.True(t, file.Parent().IsZero())
	assert.Equal(t, 0, file.IndexInParent())
	assert.Equal(t, 2, file.NumChildren())

	var kinds []raw.Kind
	for _, child := range file.Children() {
		kinds = append(kinds, child.Kind())
	}
	assert.Equal(t, []raw.Kind{raw.ExprList, raw.Token}, kinds)

	assert.Panics(t, func() { file.Child(2) })
	assert.Panics(t, func() { file.Child(-1) })
}

func TestTokens(t *testing.T) {
	t.Parallel()

	file := twoLines(t)

	var texts []string
	for tok := range file.Tokens() {
		texts = append(texts, tok.Text())
	}
	assert.Equal(t, []string{"foo", "-", "42", ""}, texts)

	tree := file.Tree()
	assert.Equal(t, "foo", tree.TokenAt(0).Text())
	assert.Equal(t, "foo", tree.TokenAt(2).Text())
	assert.Equal(t, "-", tree.TokenAt(3).Text())
	assert.Equal(t, "-", tree.TokenAt(6).Text())
	assert.Equal(t, "42", tree.TokenAt(8).Text())
	assert.Equal(t, token.EOF, tree.TokenAt(9).TokenKind())
	assert.True(t, tree.TokenAt(10).IsZero())
	assert.True(t, tree.TokenAt(-1).IsZero())

	assert.Equal(t, tree.String(), syntax.PrintTokens(tree.Lexed()))
	for lexed := range tree.Lexed() {
		assert.Same(t, tree.TokenAt(lexed.Position.Offset).Raw(), lexed.Raw)
	}
}

func TestReplaceShares(t *testing.T) {
	t.Parallel()

	file := twoLines(t)
	old := file.Raw()

	bar := syntax.BlankSymbolicReferenceExpr().WithIdentifier(syntax.Identifier("bar"))
	ref := file.Items().At(0).AsSymbolicReference().WithIdentifier(bar.Identifier())

	assert.Equal(t, "bar\n  -42\n", ref.Root().String())
	assert.Equal(t, "foo\n  -42\n", file.String())
	assert.Equal(t, []int{0, 0}, path(ref.Node))

	// Only the path from the root to the edit was rebuilt.
	root := ref.Root().Raw()
	items := root.Child(int(raw.SourceFileItems))
	assert.NotSame(t, old, root)
	assert.NotSame(t, old.Child(int(raw.SourceFileItems)), items)
	assert.Same(t, old.Child(int(raw.SourceFileEOF)), root.Child(int(raw.SourceFileEOF)))
	assert.Same(t, old.Child(0).Child(1), items.Child(1))
	assert.Same(t, old.Child(0).Child(0).Child(1), items.Child(0).Child(1))
	assert.Same(t, bar.Identifier().Raw(), items.Child(0).Child(0))
}

func path(n syntax.Node) []int {
	var out []int
	for ; !n.Parent().IsZero(); n = n.Parent() {
		out = append(out, n.IndexInParent())
	}
	slices.Reverse(out)
	return out
}

func TestSharedSubtrees(t *testing.T) {
	t.Parallel()

	// The same raw argument list appears in two different calls.
	arg := syntax.BlankFunctionCallArgument().
		WithExpression(syntax.BlankIntegerLiteralExpr().WithDigits(syntax.IntegerLiteral("1")).AsExpr())
	args := syntax.BlankFunctionCallArgumentList().Appending(arg, arg)

	f := syntax.BlankFunctionCallExpr().
		WithCalledExpression(syntax.BlankSymbolicReferenceExpr().WithIdentifier(syntax.Identifier("f")).AsExpr()).
		WithLeftParen(syntax.LeftParen()).
		WithArgumentList(args).
		WithRightParen(syntax.RightParen())
	long := f.WithCalledExpression(
		syntax.BlankSymbolicReferenceExpr().WithIdentifier(syntax.Identifier("longer")).AsExpr(),
	)
	require.Equal(t, "f(11)", f.String())
	require.Equal(t, "longer(11)", long.String())
	require.Same(t, f.ArgumentList().Raw(), long.ArgumentList().Raw())

	var g errgroup.Group
	for i := range 16 {
		call := f
		want := len("f(")
		if i%2 == 1 {
			call, want = long, len("longer(")
		}
		g.Go(func() error {
			for _, a := range seq.All(call.ArgumentList()) {
				digits := a.Expression().AsIntegerLiteral().Digits()
				if got := digits.Position().Offset; got != want {
					return fmt.Errorf("offset of %v: got %d, want %d", digits, got, want)
				}
				want++
			}
			if s := syntax.PrintTokens(call.Tree().Lexed()); s != call.String() {
				return fmt.Errorf("printed tokens %q, want %q", s, call.String())
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	file := twoLines(t)
	lit := file.Items().At(1)
	assert.Equal(t, "\n  -42", fmt.Sprint(lit))
	assert.Equal(t, `"\n  -42"`, fmt.Sprintf("%q", lit))
	assert.Equal(t, "IntegerLiteralExpr[2]@1:4[3]", fmt.Sprintf("%+v", lit))
	assert.Equal(t, "<zero>", fmt.Sprintf("%+v", syntax.Node{}))
}

func TestTreeFormat(t *testing.T) {
	t.Parallel()

	lit := syntax.BlankIntegerLiteralExpr().
		WithSign(syntax.PrefixOperator("-")).
		WithDigits(syntax.IntegerLiteral("42"))
	tree := syntax.NewTree(lit.Raw())
	assert.Equal(t, "-42", fmt.Sprint(tree))
	assert.Equal(t, `"-42"`, fmt.Sprintf("%q", tree))
	assert.Equal(t,
		`Tree(3 nodes, 2 tokens){IntegerLiteralExpr[2] PrefixOperator "-" IntegerLiteral "42"; `+
			`[0, 0]: PrefixOperator "-", [1, 2]: IntegerLiteral "42"}`,
		fmt.Sprintf("%+v", tree))
}
