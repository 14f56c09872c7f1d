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

// SymbolicReferenceExpr is a reference to a name, optionally with generic
// arguments, such as foo or Array<Int>.
type SymbolicReferenceExpr struct{ Node }

func (SymbolicReferenceExpr) accepts(kind raw.Kind) bool { return kind == raw.SymbolicReferenceExpr }
func (SymbolicReferenceExpr) viewName() string           { return "SymbolicReferenceExpr" }

// BlankSymbolicReferenceExpr returns a reference with no name and no generic
// arguments.
func BlankSymbolicReferenceExpr() SymbolicReferenceExpr {
	return blank[SymbolicReferenceExpr](raw.SymbolicReferenceExpr)
}

// AsExpr converts this view into an Expr.
func (e SymbolicReferenceExpr) AsExpr() Expr { return Expr(e) }

// Identifier returns the referenced name.
func (e SymbolicReferenceExpr) Identifier() Token {
	return child[Token](e.Node, int(raw.SymbolicReferenceExprIdentifier))
}

// GenericArgumentClause returns the generic arguments, if there are any.
func (e SymbolicReferenceExpr) GenericArgumentClause() GenericArgumentClause {
	return child[GenericArgumentClause](e.Node, int(raw.SymbolicReferenceExprGenericArgumentClause))
}

// WithIdentifier returns a copy of e with a different name.
//
// Panics if name is not an identifier.
func (e SymbolicReferenceExpr) WithIdentifier(name Token) SymbolicReferenceExpr {
	return SymbolicReferenceExpr{e.with(int(raw.SymbolicReferenceExprIdentifier), name.Node)}
}

// WithGenericArgumentClause returns a copy of e with different generic
// arguments. A zero clause removes them.
func (e SymbolicReferenceExpr) WithGenericArgumentClause(clause GenericArgumentClause) SymbolicReferenceExpr {
	return SymbolicReferenceExpr{e.with(int(raw.SymbolicReferenceExprGenericArgumentClause), clause.Node)}
}

// GenericArgumentClause is the angle-bracketed argument list of a
// [SymbolicReferenceExpr].
type GenericArgumentClause struct{ Node }

func (GenericArgumentClause) accepts(kind raw.Kind) bool { return kind == raw.GenericArgumentClause }
func (GenericArgumentClause) viewName() string           { return "GenericArgumentClause" }

// BlankGenericArgumentClause returns a clause whose brackets are missing
// and which has no arguments.
func BlankGenericArgumentClause() GenericArgumentClause {
	return blank[GenericArgumentClause](raw.GenericArgumentClause)
}

// LeftAngle returns the opening angle bracket.
func (c GenericArgumentClause) LeftAngle() Token {
	return child[Token](c.Node, int(raw.GenericArgumentClauseLeftAngle))
}

// Arguments returns the arguments between the brackets.
func (c GenericArgumentClause) Arguments() GenericArgumentList {
	return list[GenericArgumentList](c.Node, int(raw.GenericArgumentClauseArguments))
}

// RightAngle returns the closing angle bracket.
func (c GenericArgumentClause) RightAngle() Token {
	return child[Token](c.Node, int(raw.GenericArgumentClauseRightAngle))
}

// WithLeftAngle returns a copy of c with a different opening bracket.
func (c GenericArgumentClause) WithLeftAngle(tok Token) GenericArgumentClause {
	return GenericArgumentClause{c.with(int(raw.GenericArgumentClauseLeftAngle), tok.Node)}
}

// WithArguments returns a copy of c with different arguments.
func (c GenericArgumentClause) WithArguments(args GenericArgumentList) GenericArgumentClause {
	return GenericArgumentClause{c.with(int(raw.GenericArgumentClauseArguments), args.Node)}
}

// WithRightAngle returns a copy of c with a different closing bracket.
func (c GenericArgumentClause) WithRightAngle(tok Token) GenericArgumentClause {
	return GenericArgumentClause{c.with(int(raw.GenericArgumentClauseRightAngle), tok.Node)}
}

// GenericArgumentList is the list of arguments in a [GenericArgumentClause].
type GenericArgumentList struct{ Node }

var _ seq.Indexer[GenericArgument] = GenericArgumentList{}

func (GenericArgumentList) accepts(kind raw.Kind) bool { return kind == raw.GenericArgumentList }
func (GenericArgumentList) viewName() string           { return "GenericArgumentList" }

// BlankGenericArgumentList returns an empty list.
func BlankGenericArgumentList() GenericArgumentList {
	return blank[GenericArgumentList](raw.GenericArgumentList)
}

// Len implements [seq.Indexer].
func (l GenericArgumentList) Len() int {
	return l.NumChildren()
}

// At implements [seq.Indexer].
func (l GenericArgumentList) At(n int) GenericArgument {
	return GenericArgument{l.Child(n)}
}

// Appending returns a copy of l with args appended.
func (l GenericArgumentList) Appending(args ...GenericArgument) GenericArgumentList {
	return appending[GenericArgumentList](l.Node, raw.GenericArgumentList, nodes(args))
}

// Removing returns a copy of l without its n'th argument.
func (l GenericArgumentList) Removing(n int) GenericArgumentList {
	return removing[GenericArgumentList](l.Node, n)
}

// GenericArgument is a single argument in a [GenericArgumentList], together
// with the comma that follows it.
type GenericArgument struct{ Node }

func (GenericArgument) accepts(kind raw.Kind) bool { return kind == raw.GenericArgument }
func (GenericArgument) viewName() string           { return "GenericArgument" }

// BlankGenericArgument returns an argument with a missing type and comma.
func BlankGenericArgument() GenericArgument {
	return blank[GenericArgument](raw.GenericArgument)
}

// Type returns the argument itself.
func (a GenericArgument) Type() Expr {
	return child[Expr](a.Node, int(raw.GenericArgumentType))
}

// TrailingComma returns the comma after the argument, if there is one.
func (a GenericArgument) TrailingComma() Token {
	return child[Token](a.Node, int(raw.GenericArgumentComma))
}

// WithType returns a copy of a with a different argument.
func (a GenericArgument) WithType(ty Expr) GenericArgument {
	return GenericArgument{a.with(int(raw.GenericArgumentType), ty.Node)}
}

// WithTrailingComma returns a copy of a with a different trailing comma. A
// zero token removes the comma.
func (a GenericArgument) WithTrailingComma(comma Token) GenericArgument {
	return GenericArgument{a.with(int(raw.GenericArgumentComma), comma.Node)}
}
