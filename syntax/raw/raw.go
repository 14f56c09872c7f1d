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

// Package raw contains the untyped, immutable representation of a syntax
// tree.
//
// A [Raw] is a node of some [Kind] with an ordered layout of children, or a
// token leaf carrying its text and the trivia around it. Once constructed a
// Raw is never modified. Edits build new nodes that share every untouched
// child with the original, so a single Raw may appear in any number of
// trees at once and may be read from any number of goroutines.
//
// Raw nodes know nothing about their parents or their absolute position;
// that is the job of the syntax package, which wraps a Raw tree in a
// position-aware context.
package raw

import (
	"fmt"
	"iter"
	"slices"

	"github.com/bufbuild/syntaxtree/seq"
	"github.com/bufbuild/syntaxtree/syntax/token"
)

// Raw is an immutable syntax tree node.
//
// The zero value is not valid; use [Make], [MakeToken], [MissingNode],
// [MissingToken] or [Blank].
type Raw struct {
	kind     Kind
	presence Presence
	layout   []*Raw

	// Only set for tokens.
	tok               token.Kind
	text              string
	leading, trailing Trivia

	// Printed width in bytes, trivia included. Zero when missing.
	width int
}

// Make constructs a new non-token node.
//
// layout is copied, so the caller may continue to modify it. Make does not
// check that layout satisfies kind's contract; use [Raw.Validate] for that.
//
// Panics if kind is [Token] or any element of layout is nil.
func Make(kind Kind, layout []*Raw, presence Presence) *Raw {
	if kind == Token {
		panic("syntaxtree/raw: use MakeToken to construct tokens")
	}
	for i, child := range layout {
		if child == nil {
			panic(fmt.Sprintf("syntaxtree/raw: nil child at index %d of %v", i, kind))
		}
	}
	return newNode(kind, slices.Clone(layout), presence)
}

// MakeToken constructs a new token leaf.
//
// The trivia slices are copied.
func MakeToken(kind token.Kind, text string, leading, trailing Trivia, presence Presence) *Raw {
	r := &Raw{
		kind:     Token,
		presence: presence,
		tok:      kind,
		text:     text,
		leading:  leading.clone(),
		trailing: trailing.clone(),
	}
	if presence == Present {
		r.width = r.leading.Len() + len(r.text) + r.trailing.Len()
	}
	return r
}

// MissingNode constructs a missing node of the given kind with an empty
// layout. Such a node satisfies the contract of any kind.
func MissingNode(kind Kind) *Raw {
	if kind == Token {
		panic("syntaxtree/raw: use MissingToken to construct missing tokens")
	}
	return newNode(kind, nil, Missing)
}

// MissingToken constructs a missing token. It keeps text, which for
// punctuation should be its canonical spelling, but prints as nothing.
func MissingToken(kind token.Kind, text string) *Raw {
	return MakeToken(kind, text, nil, nil, Missing)
}

// newNode is like [Make], but takes ownership of layout.
func newNode(kind Kind, layout []*Raw, presence Presence) *Raw {
	r := &Raw{kind: kind, presence: presence, layout: layout}
	if presence == Present {
		for _, child := range layout {
			r.width += child.width
		}
	}
	return r
}

// Kind returns this node's kind.
func (r *Raw) Kind() Kind {
	return r.kind
}

// Presence returns whether this node was written in the source.
func (r *Raw) Presence() Presence {
	return r.presence
}

// IsMissing returns whether this node is a placeholder for something that
// was not written in the source.
func (r *Raw) IsMissing() bool {
	return r.presence == Missing
}

// IsToken returns whether this node is a token leaf.
func (r *Raw) IsToken() bool {
	return r.kind == Token
}

// Width returns the number of bytes this node prints as, trivia included.
//
// Missing nodes have zero width.
func (r *Raw) Width() int {
	return r.width
}

// NumChildren returns the length of this node's layout. Tokens have no
// children.
func (r *Raw) NumChildren() int {
	return len(r.layout)
}

// Child returns the child at the given index.
//
// Panics if index is out of range.
func (r *Raw) Child(index int) *Raw {
	r.checkIndex(index)
	return r.layout[index]
}

// Children returns this node's layout as a read-only sequence.
func (r *Raw) Children() seq.Indexer[*Raw] {
	return seq.NewFunc(len(r.layout), func(i int) *Raw { return r.layout[i] })
}

// TokenKind returns the kind of this token. Returns [token.Unknown] for
// non-tokens.
func (r *Raw) TokenKind() token.Kind {
	return r.tok
}

// Text returns this token's text, without trivia. This is the text the token
// would print as if it were present; see [Raw.IsMissing].
func (r *Raw) Text() string {
	return r.text
}

// LeadingTrivia returns the trivia before this token's text.
//
// The returned slice must not be modified.
func (r *Raw) LeadingTrivia() Trivia {
	return r.leading
}

// TrailingTrivia returns the trivia after this token's text.
//
// The returned slice must not be modified.
func (r *Raw) TrailingTrivia() Trivia {
	return r.trailing
}

// WithLeadingTrivia returns a copy of this token with different leading
// trivia.
//
// Panics if r is not a token.
func (r *Raw) WithLeadingTrivia(trivia Trivia) *Raw {
	r.mustBeToken("WithLeadingTrivia")
	return MakeToken(r.tok, r.text, trivia, r.trailing, r.presence)
}

// WithTrailingTrivia returns a copy of this token with different trailing
// trivia.
//
// Panics if r is not a token.
func (r *Raw) WithTrailingTrivia(trivia Trivia) *Raw {
	r.mustBeToken("WithTrailingTrivia")
	return MakeToken(r.tok, r.text, r.leading, trivia, r.presence)
}

// ReplaceChild returns a new node of the same kind and presence whose layout
// is identical to r's, except that the child at index is child.
//
// Every other child is shared with r, not copied.
//
// Panics if index is out of range or child is nil.
func (r *Raw) ReplaceChild(index int, child *Raw) *Raw {
	r.checkIndex(index)
	if child == nil {
		panic("syntaxtree/raw: ReplaceChild with nil child")
	}
	layout := slices.Clone(r.layout)
	layout[index] = child
	return newNode(r.kind, layout, r.presence)
}

// Appending returns a new list node with children appended to r's layout.
//
// Appending to a missing list yields a present one.
//
// Panics if r is not a list.
func (r *Raw) Appending(children ...*Raw) *Raw {
	r.mustBeList("Appending")
	layout := make([]*Raw, 0, len(r.layout)+len(children))
	layout = append(layout, r.layout...)
	for _, child := range children {
		if child == nil {
			panic("syntaxtree/raw: Appending nil child")
		}
		layout = append(layout, child)
	}
	return newNode(r.kind, layout, Present)
}

// Removing returns a new list node with the child at index removed.
//
// Panics if r is not a list, or if index is out of range.
func (r *Raw) Removing(index int) *Raw {
	r.mustBeList("Removing")
	r.checkIndex(index)
	return newNode(r.kind, slices.Delete(slices.Clone(r.layout), index, index+1), r.presence)
}

// Tokens returns an iterator over every token in this subtree, in order,
// including missing ones.
func (r *Raw) Tokens() iter.Seq[*Raw] {
	return func(yield func(*Raw) bool) {
		r.tokens(yield)
	}
}

func (r *Raw) tokens(yield func(*Raw) bool) bool {
	if r.kind == Token {
		return yield(r)
	}
	for _, child := range r.layout {
		if !child.tokens(yield) {
			return false
		}
	}
	return true
}

// Equal returns whether two trees have the same structure, text and
// trivia. Nodes need not be shared for trees to be equal.
func Equal(a, b *Raw) bool {
	switch {
	case a == b:
		return true
	case a == nil || b == nil:
		return false
	case a.kind != b.kind || a.presence != b.presence || a.width != b.width:
		return false
	case a.kind == Token:
		return a.tok == b.tok && a.text == b.text &&
			slices.Equal(a.leading, b.leading) &&
			slices.Equal(a.trailing, b.trailing)
	}
	return slices.EqualFunc(a.layout, b.layout, Equal)
}

func (r *Raw) checkIndex(index int) {
	if index < 0 || index >= len(r.layout) {
		panic(fmt.Sprintf("syntaxtree/raw: child index %d out of range for %v with %d children",
			index, r.kind, len(r.layout)))
	}
}

func (r *Raw) mustBeToken(op string) {
	if r.kind != Token {
		panic(fmt.Sprintf("syntaxtree/raw: %s called on non-token %v", op, r.kind))
	}
}

func (r *Raw) mustBeList(op string) {
	if !r.kind.IsList() {
		panic(fmt.Sprintf("syntaxtree/raw: %s called on non-list %v", op, r.kind))
	}
}
