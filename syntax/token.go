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
	"github.com/bufbuild/syntaxtree/source"
	"github.com/bufbuild/syntaxtree/syntax/raw"
	"github.com/bufbuild/syntaxtree/syntax/token"
)

// Token is a token leaf: a piece of text with the trivia around it.
type Token struct{ Node }

func (Token) accepts(kind raw.Kind) bool { return kind == raw.Token }
func (Token) viewName() string           { return "token" }

// NewToken returns a new present token in a tree of its own.
func NewToken(kind token.Kind, text string, leading, trailing raw.Trivia) Token {
	return newToken(raw.MakeToken(kind, text, leading, trailing, raw.Present))
}

// MissingToken returns a new missing token. It keeps kind's canonical
// spelling, if it has one.
func MissingToken(kind token.Kind) Token {
	return newToken(raw.MissingToken(kind, kind.Spelling()))
}

// Identifier returns a new identifier token.
func Identifier(name string) Token { return NewToken(token.Identifier, name, nil, nil) }

// IntegerLiteral returns a new integer literal token.
func IntegerLiteral(digits string) Token { return NewToken(token.IntegerLiteral, digits, nil, nil) }

// PrefixOperator returns a new prefix operator token, such as -.
func PrefixOperator(op string) Token { return NewToken(token.PrefixOperator, op, nil, nil) }

// Colon returns a new ":" token.
func Colon() Token { return punct(token.Colon) }

// Comma returns a new "," token.
func Comma() Token { return punct(token.Comma) }

// LeftParen returns a new "(" token.
func LeftParen() Token { return punct(token.LeftParen) }

// RightParen returns a new ")" token.
func RightParen() Token { return punct(token.RightParen) }

// LeftAngle returns a new "<" token.
func LeftAngle() Token { return punct(token.LeftAngle) }

// RightAngle returns a new ">" token.
func RightAngle() Token { return punct(token.RightAngle) }

// EOF returns a new end-of-file token. Its leading trivia is whatever
// follows the last real token of a file.
func EOF(leading raw.Trivia) Token { return NewToken(token.EOF, "", leading, nil) }

func punct(kind token.Kind) Token {
	return NewToken(kind, kind.Spelling(), nil, nil)
}

func newToken(r *raw.Raw) Token {
	return Token{NewTree(r).Root()}
}

// TokenKind returns the kind of this token.
func (t Token) TokenKind() token.Kind {
	if t.IsZero() {
		return token.Unknown
	}
	return t.Raw().TokenKind()
}

// Text returns this token's text, without trivia.
func (t Token) Text() string {
	if t.IsZero() {
		return ""
	}
	return t.Raw().Text()
}

// LeadingTrivia returns the trivia before this token's text.
func (t Token) LeadingTrivia() raw.Trivia {
	if t.IsZero() {
		return nil
	}
	return t.Raw().LeadingTrivia()
}

// TrailingTrivia returns the trivia after this token's text.
func (t Token) TrailingTrivia() raw.Trivia {
	if t.IsZero() {
		return nil
	}
	return t.Raw().TrailingTrivia()
}

// TextPosition returns the location of this token's text, after its leading
// trivia.
func (t Token) TextPosition() source.Location {
	if t.IsZero() {
		return source.Location{}
	}
	from, afterCR := t.locate(LocationOptions{})
	loc := source.Resume(from, afterCR, source.Bytes, 0)
	if !t.IsMissing() {
		for _, piece := range t.LeadingTrivia() {
			_, _ = loc.WriteString(piece.Text)
		}
	}
	return loc.Location()
}

// WithLeadingTrivia returns this token, with different leading trivia, in a
// new tree.
func (t Token) WithLeadingTrivia(trivia raw.Trivia) Token {
	return Token{t.Replace(t.Raw().WithLeadingTrivia(trivia))}
}

// WithTrailingTrivia returns this token, with different trailing trivia, in
// a new tree.
func (t Token) WithTrailingTrivia(trivia raw.Trivia) Token {
	return Token{t.Replace(t.Raw().WithTrailingTrivia(trivia))}
}
