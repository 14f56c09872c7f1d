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

package syntax

import (
	"github.com/bufbuild/syntaxtree/seq"
	"github.com/bufbuild/syntaxtree/syntax/raw"
)

// FunctionCallExpr is a call, such as foo(x: 1, 2).
type FunctionCallExpr struct{ Node }

func (FunctionCallExpr) accepts(kind raw.Kind) bool { return kind == raw.FunctionCallExpr }
func (FunctionCallExpr) viewName() string           { return "FunctionCallExpr" }

// BlankFunctionCallExpr returns a call with a missing callee, missing
// parentheses and no arguments.
func BlankFunctionCallExpr() FunctionCallExpr {
	return blank[FunctionCallExpr](raw.FunctionCallExpr)
}

// AsExpr converts this view into an Expr.
func (e FunctionCallExpr) AsExpr() Expr { return Expr(e) }

// CalledExpression returns the expression being called.
func (e FunctionCallExpr) CalledExpression() Expr {
	return child[Expr](e.Node, int(raw.FunctionCallExprCalledExpression))
}

// LeftParen returns the opening parenthesis.
func (e FunctionCallExpr) LeftParen() Token {
	return child[Token](e.Node, int(raw.FunctionCallExprLeftParen))
}

// ArgumentList returns the arguments of this call.
//
// A missing argument list reads as an empty one. The result is zero only if
// e is zero or is a missing call with no children.
func (e FunctionCallExpr) ArgumentList() FunctionCallArgumentList {
	return list[FunctionCallArgumentList](e.Node, int(raw.FunctionCallExprArgumentList))
}

// RightParen returns the closing parenthesis.
func (e FunctionCallExpr) RightParen() Token {
	return child[Token](e.Node, int(raw.FunctionCallExprRightParen))
}

// WithCalledExpression returns a copy of e with a different callee.
func (e FunctionCallExpr) WithCalledExpression(callee Expr) FunctionCallExpr {
	return FunctionCallExpr{e.with(int(raw.FunctionCallExprCalledExpression), callee.Node)}
}

// WithLeftParen returns a copy of e with a different opening parenthesis.
func (e FunctionCallExpr) WithLeftParen(tok Token) FunctionCallExpr {
	return FunctionCallExpr{e.with(int(raw.FunctionCallExprLeftParen), tok.Node)}
}

// WithArgumentList returns a copy of e with different arguments.
func (e FunctionCallExpr) WithArgumentList(args FunctionCallArgumentList) FunctionCallExpr {
	return FunctionCallExpr{e.with(int(raw.FunctionCallExprArgumentList), args.Node)}
}

// WithRightParen returns a copy of e with a different closing parenthesis.
func (e FunctionCallExpr) WithRightParen(tok Token) FunctionCallExpr {
	return FunctionCallExpr{e.with(int(raw.FunctionCallExprRightParen), tok.Node)}
}

// AddingArgument returns a copy of e with arg appended to its arguments.
func (e FunctionCallExpr) AddingArgument(arg FunctionCallArgument) FunctionCallExpr {
	args := e.ArgumentList()
	if args.IsZero() {
		return e.WithArgumentList(BlankFunctionCallArgumentList().Appending(arg))
	}
	return FunctionCallExpr{args.Appending(arg).Parent()}
}

// FunctionCallArgumentList is the list of arguments in a [FunctionCallExpr].
type FunctionCallArgumentList struct{ Node }

var _ seq.Indexer[FunctionCallArgument] = FunctionCallArgumentList{}

func (FunctionCallArgumentList) accepts(kind raw.Kind) bool {
	return kind == raw.FunctionCallArgumentList
}
func (FunctionCallArgumentList) viewName() string { return "FunctionCallArgumentList" }

// BlankFunctionCallArgumentList returns an empty list.
func BlankFunctionCallArgumentList() FunctionCallArgumentList {
	return blank[FunctionCallArgumentList](raw.FunctionCallArgumentList)
}

// Len implements [seq.Indexer].
func (l FunctionCallArgumentList) Len() int {
	return l.NumChildren()
}

// At implements [seq.Indexer].
func (l FunctionCallArgumentList) At(n int) FunctionCallArgument {
	return FunctionCallArgument{l.Child(n)}
}

// Appending returns a copy of l with args appended.
func (l FunctionCallArgumentList) Appending(args ...FunctionCallArgument) FunctionCallArgumentList {
	return appending[FunctionCallArgumentList](l.Node, raw.FunctionCallArgumentList, nodes(args))
}

// Removing returns a copy of l without its n'th argument.
func (l FunctionCallArgumentList) Removing(n int) FunctionCallArgumentList {
	return removing[FunctionCallArgumentList](l.Node, n)
}

// FunctionCallArgument is a single argument in a call: an optional label and
// colon, the argument expression, and an optional trailing comma.
type FunctionCallArgument struct{ Node }

func (FunctionCallArgument) accepts(kind raw.Kind) bool { return kind == raw.FunctionCallArgument }
func (FunctionCallArgument) viewName() string           { return "FunctionCallArgument" }

// BlankFunctionCallArgument returns an argument with no label and a missing
// expression. Its missing colon and comma keep their spellings.
func BlankFunctionCallArgument() FunctionCallArgument {
	return blank[FunctionCallArgument](raw.FunctionCallArgument)
}

// Label returns the argument label, if there is one.
func (a FunctionCallArgument) Label() Token {
	return child[Token](a.Node, int(raw.FunctionCallArgumentLabel))
}

// Colon returns the colon after the label, if there is one.
func (a FunctionCallArgument) Colon() Token {
	return child[Token](a.Node, int(raw.FunctionCallArgumentColon))
}

// Expression returns the argument's value.
func (a FunctionCallArgument) Expression() Expr {
	return child[Expr](a.Node, int(raw.FunctionCallArgumentExpression))
}

// TrailingComma returns the comma after the argument, if there is one.
func (a FunctionCallArgument) TrailingComma() Token {
	return child[Token](a.Node, int(raw.FunctionCallArgumentComma))
}

// WithLabel returns a copy of a with a different label. A zero token removes
// the label, but not the colon.
//
// Panics if label is not an identifier.
func (a FunctionCallArgument) WithLabel(label Token) FunctionCallArgument {
	return FunctionCallArgument{a.with(int(raw.FunctionCallArgumentLabel), label.Node)}
}

// WithColon returns a copy of a with a different colon.
//
// Panics if colon is not a colon spelled ":".
func (a FunctionCallArgument) WithColon(colon Token) FunctionCallArgument {
	return FunctionCallArgument{a.with(int(raw.FunctionCallArgumentColon), colon.Node)}
}

// WithExpression returns a copy of a with a different value.
func (a FunctionCallArgument) WithExpression(expr Expr) FunctionCallArgument {
	return FunctionCallArgument{a.with(int(raw.FunctionCallArgumentExpression), expr.Node)}
}

// WithTrailingComma returns a copy of a with a different trailing comma.
//
// Panics if comma is not a comma spelled ",".
func (a FunctionCallArgument) WithTrailingComma(comma Token) FunctionCallArgument {
	return FunctionCallArgument{a.with(int(raw.FunctionCallArgumentComma), comma.Node)}
}
