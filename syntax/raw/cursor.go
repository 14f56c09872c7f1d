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

// Cursor is implemented by the per-kind enums that name the slots in a
// fixed-shape node's layout.
type Cursor interface {
	~int
	fmt.Stringer

	// Kind returns the kind of node whose layout this cursor indexes.
	Kind() Kind
}

// At returns the child of r at the slot named by cursor.
//
// Panics if r's kind is not cursor's kind, or if the slot is out of range.
func At[C Cursor](r *Raw, cursor C) *Raw {
	if r.kind != cursor.Kind() {
		panic(fmt.Sprintf("syntaxtree/raw: %v cursor used on %v", cursor.Kind(), r.kind))
	}
	return r.Child(int(cursor))
}

// IntegerLiteralExprCursor names the slots of an [IntegerLiteralExpr].
type IntegerLiteralExprCursor int

const (
	IntegerLiteralExprSign   IntegerLiteralExprCursor = iota // PrefixOperator token.
	IntegerLiteralExprDigits                                 // IntegerLiteral token.
)

// SymbolicReferenceExprCursor names the slots of a [SymbolicReferenceExpr].
type SymbolicReferenceExprCursor int

const (
	SymbolicReferenceExprIdentifier            SymbolicReferenceExprCursor = iota // Identifier token.
	SymbolicReferenceExprGenericArgumentClause                                    // GenericArgumentClause node.
)

// GenericArgumentClauseCursor names the slots of a [GenericArgumentClause].
type GenericArgumentClauseCursor int

const (
	GenericArgumentClauseLeftAngle  GenericArgumentClauseCursor = iota // LeftAngle token.
	GenericArgumentClauseArguments                                     // GenericArgumentList node.
	GenericArgumentClauseRightAngle                                    // RightAngle token.
)

// GenericArgumentCursor names the slots of a [GenericArgument].
type GenericArgumentCursor int

const (
	GenericArgumentType  GenericArgumentCursor = iota // Any expression.
	GenericArgumentComma                              // Comma token.
)

// FunctionCallArgumentCursor names the slots of a [FunctionCallArgument].
type FunctionCallArgumentCursor int

const (
	FunctionCallArgumentLabel      FunctionCallArgumentCursor = iota // Identifier token.
	FunctionCallArgumentColon                                        // Colon token.
	FunctionCallArgumentExpression                                   // Any expression.
	FunctionCallArgumentComma                                        // Comma token.
)

// FunctionCallExprCursor names the slots of a [FunctionCallExpr].
type FunctionCallExprCursor int

const (
	FunctionCallExprCalledExpression FunctionCallExprCursor = iota // Any expression.
	FunctionCallExprLeftParen                                      // LeftParen token.
	FunctionCallExprArgumentList                                   // FunctionCallArgumentList node.
	FunctionCallExprRightParen                                     // RightParen token.
)

// SourceFileCursor names the slots of a [SourceFile].
type SourceFileCursor int

const (
	SourceFileItems SourceFileCursor = iota // ExprList node.
	SourceFileEOF                           // EOF token.
)

func (IntegerLiteralExprCursor) Kind() Kind    { return IntegerLiteralExpr }
func (SymbolicReferenceExprCursor) Kind() Kind { return SymbolicReferenceExpr }
func (GenericArgumentClauseCursor) Kind() Kind { return GenericArgumentClause }
func (GenericArgumentCursor) Kind() Kind       { return GenericArgument }
func (FunctionCallArgumentCursor) Kind() Kind  { return FunctionCallArgument }
func (FunctionCallExprCursor) Kind() Kind      { return FunctionCallExpr }
func (SourceFileCursor) Kind() Kind            { return SourceFile }

func (c IntegerLiteralExprCursor) String() string    { return slotName(c) }
func (c SymbolicReferenceExprCursor) String() string { return slotName(c) }
func (c GenericArgumentClauseCursor) String() string { return slotName(c) }
func (c GenericArgumentCursor) String() string       { return slotName(c) }
func (c FunctionCallArgumentCursor) String() string  { return slotName(c) }
func (c FunctionCallExprCursor) String() string      { return slotName(c) }
func (c SourceFileCursor) String() string            { return slotName(c) }

// slotName looks up a cursor's name in its kind's shape, so that names are
// only spelled out once.
func slotName[C interface {
	~int
	Kind() Kind
}](c C) string {
	slots := shapeOf(c.Kind()).slots
	if int(c) < 0 || int(c) >= len(slots) {
		return fmt.Sprintf("%vCursor(%d)", c.Kind(), int(c))
	}
	return slots[c].name
}
