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

// Package syntax provides position-aware, typed access to immutable syntax
// trees.
//
// A [Tree] anchors a [raw.Raw] tree and lazily materializes a context for
// every node that is visited: the node's parent, its index in that parent,
// and its absolute position in the printed text. A [Node] is a lightweight
// handle to one such context. Typed views such as [FunctionCallExpr] wrap a
// Node and give names to its children.
//
// Trees are never modified. Every With* method returns a view into a new
// tree that shares all of its untouched subtrees with the old one.
package syntax

import (
	"fmt"
	"io"
	"iter"
	"sync"

	"github.com/bufbuild/syntaxtree/internal/arena"
	"github.com/bufbuild/syntaxtree/internal/interval"
	"github.com/bufbuild/syntaxtree/source"
	"github.com/bufbuild/syntaxtree/syntax/raw"
)

// Tree is the root anchor of a syntax tree.
//
// A Tree owns every node context created for it; contexts refer to their
// parents by index into the tree rather than by pointer. A Tree is safe for
// concurrent use.
type Tree struct {
	root *raw.Raw

	mu    sync.RWMutex
	nodes arena.Arena[nodeData]

	indexOnce sync.Once
	index     interval.Map[int, arena.Pointer[nodeData]]
}

// nodeData is the context of a single node in a [Tree].
type nodeData struct {
	raw    *raw.Raw
	parent arena.Pointer[nodeData]
	index  int

	// Guarded by Tree.mu.
	children []arena.Pointer[nodeData]
	pos      source.Location
	afterCR  bool // Whether the text before pos ends in '\r'.
}

// NewTree returns a tree rooted at r.
//
// Panics if r is nil.
func NewTree(r *raw.Raw) *Tree {
	if r == nil {
		panic("syntaxtree: NewTree with nil root")
	}
	t := &Tree{root: r}
	t.nodes.New(nodeData{raw: r, pos: source.Start})
	return t
}

// Root returns the context of this tree's root node.
func (t *Tree) Root() Node {
	return Node{tree: t, id: 1}
}

// Raw returns the root raw node of this tree.
func (t *Tree) Raw() *raw.Raw {
	return t.root
}

// Tokens returns an iterator over the present tokens in this tree, in order.
func (t *Tree) Tokens() iter.Seq[Token] {
	return t.Root().Tokens()
}

// String returns the printed text of this tree.
func (t *Tree) String() string {
	return raw.Print(t.root)
}

// Format implements [fmt.Formatter].
//
// %v prints this tree's text; %+v prints the node contexts created so far and
// the token index, for debugging.
func (t *Tree) Format(s fmt.State, verb rune) {
	if verb != 'v' || !s.Flag('+') {
		fmt.Fprintf(s, fmt.FormatString(s, verb), t.String())
		return
	}
	t.indexOnce.Do(t.buildIndex)

	t.mu.RLock()
	defer t.mu.RUnlock()
	fmt.Fprintf(s, "Tree(%d nodes, %d tokens){", t.nodes.Len(), t.index.Len())
	first := true
	for _, d := range t.nodes.All() {
		if !first {
			_, _ = io.WriteString(s, " ")
		}
		first = false
		fmt.Fprint(s, d.raw)
	}
	_, _ = io.WriteString(s, "; ")
	first = true
	for iv := range t.index.Intervals() {
		if !first {
			_, _ = io.WriteString(s, ", ")
		}
		first = false
		fmt.Fprintf(s, "[%d, %d]: %v", iv.Start, iv.End, t.nodes.Deref(*iv.Value).raw)
	}
	_, _ = io.WriteString(s, "}")
}

// TokenAt returns the present token whose printed text, trivia included,
// contains the given byte offset.
//
// Returns the zero token if offset is out of range.
func (t *Tree) TokenAt(offset int) Token {
	t.indexOnce.Do(t.buildIndex)
	found := t.index.Get(offset)
	if found.Value == nil {
		return Token{}
	}
	return Token{Node{tree: t, id: *found.Value}}
}

func (t *Tree) buildIndex() {
	for tok := range t.Tokens() {
		width := tok.Raw().Width()
		if width == 0 {
			continue
		}
		start := tok.Position().Offset
		t.index.Insert(start, start+width-1, tok.id)
	}
}

// data returns the context for id.
func (t *Tree) data(id arena.Pointer[nodeData]) *nodeData {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes.Deref(id)
}

// child returns the context for the index'th child of parent, creating it if
// necessary.
func (t *Tree) child(parent arena.Pointer[nodeData], index int) arena.Pointer[nodeData] {
	t.mu.RLock()
	d := t.nodes.Deref(parent)
	if d.children != nil {
		if id := d.children[index]; !id.Nil() {
			t.mu.RUnlock()
			return id
		}
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	d = t.nodes.Deref(parent)
	if d.children == nil {
		d.children = make([]arena.Pointer[nodeData], d.raw.NumChildren())
	}
	if id := d.children[index]; !id.Nil() {
		// Another goroutine got here first.
		return id
	}
	id := t.nodes.New(nodeData{
		raw:    d.raw.Child(index),
		parent: parent,
		index:  index,
	})
	// New may have grown the arena, but values never move, so d is still
	// valid.
	d.children[index] = id
	return id
}

// cachedPosition returns the cached byte position of id, if it has been
// computed.
func (t *Tree) cachedPosition(id arena.Pointer[nodeData]) (pos source.Location, afterCR, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d := t.nodes.Deref(id)
	return d.pos, d.afterCR, !d.pos.IsZero()
}

func (t *Tree) cachePosition(id arena.Pointer[nodeData], pos source.Location, afterCR bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.nodes.Deref(id)
	d.pos, d.afterCR = pos, afterCR
}
