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

package raw

import "fmt"

const (
	Token                    Kind = iota // A leaf carrying text and trivia.
	MissingExpr                          // A placeholder for an absent expression.
	UnknownExpr                          // An expression the parser could not classify.
	IntegerLiteralExpr                   // An optionally signed integer, such as -42.
	SymbolicReferenceExpr                // A name with optional generic arguments, such as foo<T>.
	GenericArgumentClause                // The <...> of a symbolic reference.
	GenericArgumentList                  // The arguments inside a generic argument clause.
	GenericArgument                      // A single generic argument and its comma.
	FunctionCallArgument                 // A single call argument, such as x: 1,.
	FunctionCallArgumentList             // The arguments inside a call's parentheses.
	FunctionCallExpr                     // A call, such as foo(x: 1).
	ExprList                             // A sequence of top-level expressions.
	SourceFile                           // A whole file: its expressions and the EOF token.

	kindCount // Total number of kinds.
)

// Kind identifies the kind of a [Raw] node. The set of kinds is closed.
type Kind byte

var kindNames = [...]string{
	Token:                    "Token",
	MissingExpr:              "MissingExpr",
	UnknownExpr:              "UnknownExpr",
	IntegerLiteralExpr:       "IntegerLiteralExpr",
	SymbolicReferenceExpr:    "SymbolicReferenceExpr",
	GenericArgumentClause:    "GenericArgumentClause",
	GenericArgumentList:      "GenericArgumentList",
	GenericArgument:          "GenericArgument",
	FunctionCallArgument:     "FunctionCallArgument",
	FunctionCallArgumentList: "FunctionCallArgumentList",
	FunctionCallExpr:         "FunctionCallExpr",
	ExprList:                 "ExprList",
	SourceFile:               "SourceFile",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// KindByName looks up a kind by the name [Kind.String] returns for it.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns every kind, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// IsExpr returns whether nodes of this kind may appear where an expression
// is expected.
func (k Kind) IsExpr() bool {
	switch k {
	case MissingExpr, UnknownExpr, IntegerLiteralExpr,
		SymbolicReferenceExpr, FunctionCallExpr:
		return true
	default:
		return false
	}
}

// IsList returns whether nodes of this kind have a variable number of
// children of a single element kind.
func (k Kind) IsList() bool {
	switch k {
	case GenericArgumentList, FunctionCallArgumentList, ExprList:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("raw.Kind(%d)", int(k))
}
