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

import (
	"fmt"

	"github.com/bufbuild/syntaxtree/syntax/token"
)

// shape is the layout contract of a kind.
//
// A fixed-shape kind has one slot per child; a list kind has an element
// contract that every child must satisfy. A kind with neither has no
// children, unless open is set, in which case anything goes.
type shape struct {
	slots []slot
	elem  *contract
	open  bool
}

type slot struct {
	name string
	contract
}

type want byte

const (
	wantToken want = iota + 1
	wantNode
	wantExpr
)

// contract is what may occupy a single position in a layout.
type contract struct {
	want  want
	token token.Kind
	node  Kind
}

func tokenOf(kind token.Kind) contract { return contract{want: wantToken, token: kind} }
func nodeOf(kind Kind) contract        { return contract{want: wantNode, node: kind} }

var anyExpr = contract{want: wantExpr}

var shapes = [kindCount]shape{
	MissingExpr: {},
	UnknownExpr: {open: true},
	IntegerLiteralExpr: {slots: []slot{
		IntegerLiteralExprSign:   {"Sign", tokenOf(token.PrefixOperator)},
		IntegerLiteralExprDigits: {"Digits", tokenOf(token.IntegerLiteral)},
	}},
	SymbolicReferenceExpr: {slots: []slot{
		SymbolicReferenceExprIdentifier:            {"Identifier", tokenOf(token.Identifier)},
		SymbolicReferenceExprGenericArgumentClause: {"GenericArgumentClause", nodeOf(GenericArgumentClause)},
	}},
	GenericArgumentClause: {slots: []slot{
		GenericArgumentClauseLeftAngle:  {"LeftAngle", tokenOf(token.LeftAngle)},
		GenericArgumentClauseArguments:  {"Arguments", nodeOf(GenericArgumentList)},
		GenericArgumentClauseRightAngle: {"RightAngle", tokenOf(token.RightAngle)},
	}},
	GenericArgumentList: {elem: ptr(nodeOf(GenericArgument))},
	GenericArgument: {slots: []slot{
		GenericArgumentType:  {"Type", anyExpr},
		GenericArgumentComma: {"Comma", tokenOf(token.Comma)},
	}},
	FunctionCallArgument: {slots: []slot{
		FunctionCallArgumentLabel:      {"Label", tokenOf(token.Identifier)},
		FunctionCallArgumentColon:      {"Colon", tokenOf(token.Colon)},
		FunctionCallArgumentExpression: {"Expression", anyExpr},
		FunctionCallArgumentComma:      {"Comma", tokenOf(token.Comma)},
	}},
	FunctionCallArgumentList: {elem: ptr(nodeOf(FunctionCallArgument))},
	FunctionCallExpr: {slots: []slot{
		FunctionCallExprCalledExpression: {"CalledExpression", anyExpr},
		FunctionCallExprLeftParen:        {"LeftParen", tokenOf(token.LeftParen)},
		FunctionCallExprArgumentList:     {"ArgumentList", nodeOf(FunctionCallArgumentList)},
		FunctionCallExprRightParen:       {"RightParen", tokenOf(token.RightParen)},
	}},
	ExprList: {elem: &anyExpr},
	SourceFile: {slots: []slot{
		SourceFileItems: {"Items", nodeOf(ExprList)},
		SourceFileEOF:   {"EOF", tokenOf(token.EOF)},
	}},
}

// blanks holds the canonical blank node of each kind. Nodes are immutable,
// so a single blank can be shared by every tree that needs one.
var blanks = func() (b [kindCount]*Raw) {
	for k := range kindCount {
		if k == Token {
			continue
		}
		b[k] = makeBlank(k)
	}
	return b
}()

func ptr[T any](v T) *T { return &v }

func shapeOf(kind Kind) *shape {
	if kind >= kindCount {
		panic(fmt.Sprintf("syntaxtree/raw: invalid kind %v", kind))
	}
	return &shapes[kind]
}

// accepts returns whether r may occupy a position with this contract.
func (c contract) accepts(r *Raw) bool {
	switch c.want {
	case wantToken:
		if r.kind != Token || r.tok != c.token {
			return false
		}
		spelling := c.token.Spelling()
		return spelling == "" || r.text == spelling
	case wantNode:
		return r.kind == c.node
	case wantExpr:
		return r.kind.IsExpr()
	default:
		return false
	}
}

// blank returns the missing node that fills a position with this contract
// in a blank layout.
func (c contract) blank() *Raw {
	switch c.want {
	case wantToken:
		return MissingToken(c.token, c.token.Spelling())
	case wantNode:
		return MissingNode(c.node)
	default:
		return MissingNode(MissingExpr)
	}
}

// String implements [fmt.Stringer].
func (c contract) String() string {
	switch c.want {
	case wantToken:
		if spelling := c.token.Spelling(); spelling != "" {
			return fmt.Sprintf("%v token %q", c.token, spelling)
		}
		return fmt.Sprintf("%v token", c.token)
	case wantNode:
		return c.node.String()
	default:
		return "expression"
	}
}

func makeBlank(kind Kind) *Raw {
	s := shapeOf(kind)
	switch {
	case kind == MissingExpr:
		return MissingNode(MissingExpr)
	case len(s.slots) == 0:
		// Lists and unknown expressions start out empty.
		return newNode(kind, nil, Present)
	}

	layout := make([]*Raw, len(s.slots))
	for i, slot := range s.slots {
		layout[i] = slot.blank()
	}
	return newNode(kind, layout, Present)
}

// Blank returns the canonical blank node of the given kind: a present node
// whose every slot holds a missing placeholder. Missing punctuation keeps its
// canonical spelling. Lists are blank when empty.
//
// Panics if kind is [Token]; use [MissingToken] instead.
func Blank(kind Kind) *Raw {
	if kind == Token {
		panic("syntaxtree/raw: tokens have no blank layout; use MissingToken")
	}
	shapeOf(kind) // Bounds check.
	return blanks[kind]
}

// NumSlots returns the number of children a fixed-shape kind has. Returns -1
// for kinds with a variable number of children.
func NumSlots(kind Kind) int {
	s := shapeOf(kind)
	if s.elem != nil || s.open {
		return -1
	}
	return len(s.slots)
}

// SlotName returns the name of the index'th slot of a fixed-shape kind, or
// "" if kind has a variable number of children or index is out of range.
func SlotName(kind Kind, index int) string {
	s := shapeOf(kind)
	if index < 0 || index >= len(s.slots) {
		return ""
	}
	return s.slots[index].name
}

// Validate checks that r's layout satisfies the contract of r's kind. It
// does not look at grandchildren; see [Raw.ValidateTree].
//
// A missing node with an empty layout satisfies any contract. Tokens and
// [UnknownExpr] nodes are always valid.
//
// Returns a [*ShapeError] describing the first violation found.
func (r *Raw) Validate() error {
	if err := r.validate(); err != nil {
		return newShapeError(1, err)
	}
	return nil
}

// ValidateTree is like [Raw.Validate], but checks every node in the subtree
// rooted at r.
func (r *Raw) ValidateTree() error {
	var walk func(*Raw) *ShapeError
	walk = func(r *Raw) *ShapeError {
		if err := r.validate(); err != nil {
			return err
		}
		for _, child := range r.layout {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(r); err != nil {
		return newShapeError(1, err)
	}
	return nil
}

func (r *Raw) validate() *ShapeError {
	if r.kind == Token || (r.presence == Missing && len(r.layout) == 0) {
		return nil
	}

	s := shapeOf(r.kind)
	switch {
	case s.open:
		return nil
	case s.elem != nil:
		for i, child := range r.layout {
			if !s.elem.accepts(child) {
				return &ShapeError{Kind: r.kind, Slot: i, Want: s.elem.String(), Got: describe(child)}
			}
		}
		return nil
	case len(r.layout) != len(s.slots):
		return &ShapeError{
			Kind: r.kind,
			Slot: -1,
			Want: fmt.Sprintf("%v with %d children", r.kind, len(s.slots)),
			Got:  fmt.Sprintf("%v with %d children", r.kind, len(r.layout)),
		}
	}

	for i, slot := range s.slots {
		if !slot.accepts(r.layout[i]) {
			return &ShapeError{
				Kind:  r.kind,
				Slot:  i,
				Field: slot.name,
				Want:  slot.String(),
				Got:   describe(r.layout[i]),
			}
		}
	}
	return nil
}

// CheckChild checks whether child may be placed at the given index in the
// layout of a node of the given kind. For lists, any index is accepted if
// child satisfies the element contract.
//
// Panics if index is out of range for a fixed-shape kind.
func CheckChild(parent Kind, index int, child *Raw) error {
	s := shapeOf(parent)
	var c contract
	var name string
	switch {
	case s.open:
		return nil
	case s.elem != nil:
		c = *s.elem
	default:
		if index < 0 || index >= len(s.slots) {
			panic(fmt.Sprintf("syntaxtree/raw: slot %d out of range for %v with %d slots",
				index, parent, len(s.slots)))
		}
		c, name = s.slots[index].contract, s.slots[index].name
	}

	if c.accepts(child) {
		return nil
	}
	return newShapeError(1, &ShapeError{
		Kind:  parent,
		Slot:  index,
		Field: name,
		Want:  c.String(),
		Got:   describe(child),
	})
}
