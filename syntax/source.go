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
	"errors"
	"iter"
	"strings"

	"github.com/bufbuild/syntaxtree/source"
	"github.com/bufbuild/syntaxtree/syntax/raw"
	"github.com/bufbuild/syntaxtree/syntax/token"
)

// LexedToken is a token produced by a [Lexer], together with where it
// starts.
type LexedToken struct {
	Raw      *raw.Raw
	Position source.Location
}

// Lexer turns text into tokens.
//
// The tokens of a well-behaved lexer cover the whole input, trivia included,
// and end with a [token.EOF] token, so that printing them reproduces the
// text exactly; see [PrintTokens].
type Lexer interface {
	Lex(text string) iter.Seq[LexedToken]
}

// TreeSource produces the top-level trees of a file, such as a parser does.
//
// The last tree produced should be the [token.EOF] token.
type TreeSource interface {
	Trees() iter.Seq2[*raw.Raw, error]
}

// PrintTokens returns the concatenated text of every present token, trivia
// included.
func PrintTokens(tokens iter.Seq[LexedToken]) string {
	var b strings.Builder
	for tok := range tokens {
		_, _ = tok.Raw.WriteTo(&b)
	}
	return b.String()
}

// Lexed returns the present tokens of this tree in the form a [Lexer] would
// produce them.
func (t *Tree) Lexed() iter.Seq[LexedToken] {
	return func(yield func(LexedToken) bool) {
		for tok := range t.Root().Tokens() {
			if !yield(LexedToken{Raw: tok.Raw(), Position: tok.Position()}) {
				return
			}
		}
	}
}

// CollectSourceFile assembles the trees produced by src into a
// [SourceFile]: every expression becomes an item, and the final EOF token
// becomes the file's EOF.
//
// Trees that are not expressions are wrapped in an [UnknownExpr]. If src
// produces no EOF token, the file's EOF is missing.
func CollectSourceFile(src TreeSource) (SourceFile, error) {
	b := NewSourceFileBuilder()
	for tree, err := range src.Trees() {
		if err != nil {
			return SourceFile{}, err
		}
		if tree == nil {
			return SourceFile{}, errors.New("syntaxtree: tree source produced a nil tree")
		}
		if err := tree.ValidateTree(); err != nil {
			return SourceFile{}, err
		}

		root := NewTree(tree).Root()
		switch {
		case tree.IsToken() && tree.TokenKind() == token.EOF:
			b.UseEOF(Token{root})
		case tree.Kind().IsExpr():
			b.AppendItem(Expr{root})
		default:
			b.AppendItem(NewUnknownExpr(root).AsExpr())
		}
	}
	return b.Build()
}
