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

// SourceFile is an entire file: its top-level expressions, followed by the
// end-of-file token that carries any trailing trivia.
type SourceFile struct{ Node }

func (SourceFile) accepts(kind raw.Kind) bool { return kind == raw.SourceFile }
func (SourceFile) viewName() string           { return "SourceFile" }

// BlankSourceFile returns an empty file.
func BlankSourceFile() SourceFile {
	return blank[SourceFile](raw.SourceFile)
}

// Items returns the top-level expressions in this file.
func (f SourceFile) Items() ExprList {
	return list[ExprList](f.Node, int(raw.SourceFileItems))
}

// EOF returns the end-of-file token.
func (f SourceFile) EOF() Token {
	return child[Token](f.Node, int(raw.SourceFileEOF))
}

// WithItems returns a copy of f with different top-level items.
func (f SourceFile) WithItems(items ExprList) SourceFile {
	return SourceFile{f.with(int(raw.SourceFileItems), items.Node)}
}

// WithEOF returns a copy of f with a different end-of-file token.
func (f SourceFile) WithEOF(eof Token) SourceFile {
	return SourceFile{f.with(int(raw.SourceFileEOF), eof.Node)}
}

// ExprList is a sequence of expressions with nothing between them.
type ExprList struct{ Node }

var _ seq.Indexer[Expr] = ExprList{}

func (ExprList) accepts(kind raw.Kind) bool { return kind == raw.ExprList }
func (ExprList) viewName() string           { return "ExprList" }

// BlankExprList returns an empty list.
func BlankExprList() ExprList {
	return blank[ExprList](raw.ExprList)
}

// Len implements [seq.Indexer].
func (l ExprList) Len() int {
	return l.NumChildren()
}

// At implements [seq.Indexer].
func (l ExprList) At(n int) Expr {
	return Expr{l.Child(n)}
}

// Appending returns a copy of l with exprs appended.
func (l ExprList) Appending(exprs ...Expr) ExprList {
	return appending[ExprList](l.Node, raw.ExprList, nodes(exprs))
}

// Removing returns a copy of l without its n'th expression.
func (l ExprList) Removing(n int) ExprList {
	return removing[ExprList](l.Node, n)
}
