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

import "github.com/bufbuild/syntaxtree/syntax/raw"

// Expr is any expression.
//
// It can be converted back to one of the concrete expression views using its
// As* methods, each of which returns the zero view if the expression is of a
// different kind.
type Expr struct{ Node }

func (Expr) accepts(kind raw.Kind) bool { return kind.IsExpr() }
func (Expr) viewName() string           { return "expression" }

// BlankExpr returns a missing expression.
func BlankExpr() Expr {
	return blank[Expr](raw.MissingExpr)
}

// AsUnknown converts e into an UnknownExpr, if that is what it is.
func (e Expr) AsUnknown() UnknownExpr {
	return as[UnknownExpr](e)
}

// AsIntegerLiteral converts e into an IntegerLiteralExpr, if that is what it
// is.
func (e Expr) AsIntegerLiteral() IntegerLiteralExpr {
	return as[IntegerLiteralExpr](e)
}

// AsSymbolicReference converts e into a SymbolicReferenceExpr, if that is
// what it is.
func (e Expr) AsSymbolicReference() SymbolicReferenceExpr {
	return as[SymbolicReferenceExpr](e)
}

// AsFunctionCall converts e into a FunctionCallExpr, if that is what it is.
func (e Expr) AsFunctionCall() FunctionCallExpr {
	return as[FunctionCallExpr](e)
}

func as[V View](e Expr) V {
	var zero V
	if e.IsZero() || !zero.accepts(e.Kind()) {
		return zero
	}
	return wrap[V](e.Node)
}

// UnknownExpr is an expression the parser could not make sense of. It may
// have any children at all.
type UnknownExpr struct{ Node }

func (UnknownExpr) accepts(kind raw.Kind) bool { return kind == raw.UnknownExpr }
func (UnknownExpr) viewName() string           { return "UnknownExpr" }

// NewUnknownExpr returns a new unknown expression wrapping the given nodes,
// in a tree of its own.
func NewUnknownExpr(children ...Node) UnknownExpr {
	layout := make([]*raw.Raw, 0, len(children))
	for _, child := range children {
		if !child.IsZero() {
			layout = append(layout, child.Raw())
		}
	}
	return UnknownExpr{NewTree(raw.Make(raw.UnknownExpr, layout, raw.Present)).Root()}
}

// BlankUnknownExpr returns an empty unknown expression.
func BlankUnknownExpr() UnknownExpr {
	return blank[UnknownExpr](raw.UnknownExpr)
}

// AsExpr converts this view into an Expr.
func (e UnknownExpr) AsExpr() Expr { return Expr(e) }
