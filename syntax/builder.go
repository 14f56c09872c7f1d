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

// builder is the shared state of the staged builders in this package: the
// layout of the node being built, seeded from its blank layout, and the
// elements of one list child, which are spliced in by build.
type builder struct {
	kind     raw.Kind
	layout   []*raw.Raw
	listKind raw.Kind
	listSlot int
	elems    []*raw.Raw
	err      error
}

func newBuilder(kind raw.Kind, listSlot int) builder {
	blank := raw.Blank(kind)
	return builder{
		kind:     kind,
		layout:   seq.ToSlice(blank.Children()),
		listKind: blank.Child(listSlot).Kind(),
		listSlot: listSlot,
	}
}

// use overwrites a fixed slot, recording the first contract violation.
func (b *builder) use(slot int, n Node) {
	if n.IsZero() {
		b.layout[slot] = raw.Blank(b.kind).Child(slot)
		return
	}
	if err := raw.CheckChild(b.kind, slot, n.Raw()); err != nil {
		if b.err == nil {
			b.err = err
		}
		return
	}
	b.layout[slot] = n.Raw()
}

// add appends an element to the list, recording the first contract
// violation.
func (b *builder) add(n Node) {
	if n.IsZero() {
		return
	}
	if err := raw.CheckChild(b.listKind, len(b.elems), n.Raw()); err != nil {
		if b.err == nil {
			b.err = err
		}
		return
	}
	b.elems = append(b.elems, n.Raw())
}

// build assembles the node. The builder is not modified, so calling build
// again yields an independent node.
func (b *builder) build() (Node, error) {
	if b.err != nil {
		return Node{}, b.err
	}
	list := raw.Make(b.listKind, b.elems, raw.Present)
	node := raw.Make(b.kind, b.layout, raw.Present).ReplaceChild(b.listSlot, list)
	if err := node.Validate(); err != nil {
		return Node{}, err
	}
	return NewTree(node).Root(), nil
}

// FunctionCallExprBuilder builds a [FunctionCallExpr] piece by piece.
//
// Each Use method overwrites a slot; each call to AppendArgument appends to the
// argument list. Contract violations are recorded, and the first one is
// returned by Build.
type FunctionCallExprBuilder struct{ b builder }

// NewFunctionCallExprBuilder returns a builder for a blank call.
func NewFunctionCallExprBuilder() *FunctionCallExprBuilder {
	return &FunctionCallExprBuilder{newBuilder(raw.FunctionCallExpr, int(raw.FunctionCallExprArgumentList))}
}

// UseCalledExpression sets the expression being called.
func (b *FunctionCallExprBuilder) UseCalledExpression(callee Expr) *FunctionCallExprBuilder {
	b.b.use(int(raw.FunctionCallExprCalledExpression), callee.Node)
	return b
}

// UseLeftParen sets the opening parenthesis.
func (b *FunctionCallExprBuilder) UseLeftParen(tok Token) *FunctionCallExprBuilder {
	b.b.use(int(raw.FunctionCallExprLeftParen), tok.Node)
	return b
}

// AppendArgument adds arg after any arguments already appended.
func (b *FunctionCallExprBuilder) AppendArgument(arg FunctionCallArgument) *FunctionCallExprBuilder {
	b.b.add(arg.Node)
	return b
}

// UseRightParen sets the closing parenthesis.
func (b *FunctionCallExprBuilder) UseRightParen(tok Token) *FunctionCallExprBuilder {
	b.b.use(int(raw.FunctionCallExprRightParen), tok.Node)
	return b
}

// Build returns the call that has been built so far, in a new tree.
func (b *FunctionCallExprBuilder) Build() (FunctionCallExpr, error) {
	n, err := b.b.build()
	return FunctionCallExpr{n}, err
}

// GenericArgumentClauseBuilder builds a [GenericArgumentClause] piece by
// piece. See [FunctionCallExprBuilder].
type GenericArgumentClauseBuilder struct{ b builder }

// NewGenericArgumentClauseBuilder returns a builder for a blank clause.
func NewGenericArgumentClauseBuilder() *GenericArgumentClauseBuilder {
	return &GenericArgumentClauseBuilder{newBuilder(raw.GenericArgumentClause, int(raw.GenericArgumentClauseArguments))}
}

// UseLeftAngle sets the opening angle bracket.
func (b *GenericArgumentClauseBuilder) UseLeftAngle(tok Token) *GenericArgumentClauseBuilder {
	b.b.use(int(raw.GenericArgumentClauseLeftAngle), tok.Node)
	return b
}

// AppendArgument adds arg after any arguments already appended.
func (b *GenericArgumentClauseBuilder) AppendArgument(arg GenericArgument) *GenericArgumentClauseBuilder {
	b.b.add(arg.Node)
	return b
}

// UseRightAngle sets the closing angle bracket.
func (b *GenericArgumentClauseBuilder) UseRightAngle(tok Token) *GenericArgumentClauseBuilder {
	b.b.use(int(raw.GenericArgumentClauseRightAngle), tok.Node)
	return b
}

// Build returns the clause that has been built so far, in a new tree.
func (b *GenericArgumentClauseBuilder) Build() (GenericArgumentClause, error) {
	n, err := b.b.build()
	return GenericArgumentClause{n}, err
}

// SourceFileBuilder builds a [SourceFile] piece by piece. See
// [FunctionCallExprBuilder].
type SourceFileBuilder struct{ b builder }

// NewSourceFileBuilder returns a builder for an empty file.
func NewSourceFileBuilder() *SourceFileBuilder {
	return &SourceFileBuilder{newBuilder(raw.SourceFile, int(raw.SourceFileItems))}
}

// AppendItem adds expr after any items already appended.
func (b *SourceFileBuilder) AppendItem(expr Expr) *SourceFileBuilder {
	b.b.add(expr.Node)
	return b
}

// UseEOF sets the end-of-file token, which carries the trailing trivia of
// the file.
func (b *SourceFileBuilder) UseEOF(eof Token) *SourceFileBuilder {
	b.b.use(int(raw.SourceFileEOF), eof.Node)
	return b
}

// Build returns the file that has been built so far, in a new tree.
func (b *SourceFileBuilder) Build() (SourceFile, error) {
	n, err := b.b.build()
	return SourceFile{n}, err
}
