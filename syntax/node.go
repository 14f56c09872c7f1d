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
	"fmt"
	"io"
	"iter"

	"github.com/bufbuild/syntaxtree/internal/arena"
	"github.com/bufbuild/syntaxtree/seq"
	"github.com/bufbuild/syntaxtree/source"
	"github.com/bufbuild/syntaxtree/syntax/raw"
)

// Node is a node in a [Tree], together with its position in that tree.
//
// Node is a small value type and is comparable: two Nodes are equal if they
// are the same node of the same tree. The zero value is the absent node;
// most methods on it return zero values.
type Node struct {
	tree *Tree
	id   arena.Pointer[nodeData]
}

// LocationOptions configures [Node.Location].
type LocationOptions struct {
	// The unit columns are measured in. Defaults to bytes.
	Unit source.Unit

	// The width of a tabstop, for [source.TermWidth]. Zero selects the
	// default of 4.
	TabstopWidth int
}

// IsZero returns whether this is the zero node.
func (n Node) IsZero() bool {
	return n.tree == nil
}

// Tree returns the tree this node belongs to.
func (n Node) Tree() *Tree {
	return n.tree
}

// Raw returns the raw node this context wraps.
func (n Node) Raw() *raw.Raw {
	if n.IsZero() {
		return nil
	}
	return n.tree.data(n.id).raw
}

// Kind returns the kind of this node.
//
// The zero node has kind [raw.Token]; check [Node.IsZero] first.
func (n Node) Kind() raw.Kind {
	if n.IsZero() {
		return raw.Token
	}
	return n.Raw().Kind()
}

// IsMissing returns whether this node is a placeholder for something that
// was not written in the source. The zero node is considered missing.
func (n Node) IsMissing() bool {
	return n.IsZero() || n.Raw().IsMissing()
}

// NumChildren returns the number of children this node has.
func (n Node) NumChildren() int {
	if n.IsZero() {
		return 0
	}
	return n.Raw().NumChildren()
}

// Child returns the index'th child of this node, whether it is present or
// not.
//
// Panics if index is out of range.
func (n Node) Child(index int) Node {
	if n.IsZero() {
		panic(fmt.Sprintf("syntaxtree: child %d of zero node", index))
	}
	if index < 0 || index >= n.NumChildren() {
		panic(fmt.Sprintf("syntaxtree: child index %d out of range for %v with %d children",
			index, n.Kind(), n.NumChildren()))
	}
	return Node{tree: n.tree, id: n.tree.child(n.id, index)}
}

// Children returns an iterator over this node's children.
func (n Node) Children() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		for i := range n.NumChildren() {
			if !yield(i, n.Child(i)) {
				return
			}
		}
	}
}

// Parent returns this node's parent. Returns the zero node for a root.
func (n Node) Parent() Node {
	if n.IsZero() {
		return Node{}
	}
	parent := n.tree.data(n.id).parent
	if parent.Nil() {
		return Node{}
	}
	return Node{tree: n.tree, id: parent}
}

// IndexInParent returns this node's index in its parent's layout. Returns
// zero for a root.
func (n Node) IndexInParent() int {
	if n.IsZero() {
		return 0
	}
	return n.tree.data(n.id).index
}

// Root returns the root of the tree this node belongs to.
func (n Node) Root() Node {
	if n.IsZero() {
		return Node{}
	}
	return n.tree.Root()
}

// Position returns the location of the first byte this node prints, leading
// trivia included. Columns are measured in bytes.
//
// The position of a missing node is where it would be if it were present.
func (n Node) Position() source.Location {
	if n.IsZero() {
		return source.Location{}
	}
	pos, _ := n.locate(LocationOptions{})
	return pos
}

// Location is like [Node.Position], but allows measuring columns in other
// units.
func (n Node) Location(opts LocationOptions) source.Location {
	if n.IsZero() {
		return source.Location{}
	}
	pos, _ := n.locate(opts)
	return pos
}

// locate returns n's location, and whether the text before it ends in '\r'.
// Byte locations are cached.
func (n Node) locate(opts LocationOptions) (source.Location, bool) {
	bytes := opts.Unit == source.Bytes
	if bytes {
		if pos, afterCR, ok := n.tree.cachedPosition(n.id); ok {
			return pos, afterCR
		}
	}

	parent := n.Parent()
	if parent.IsZero() {
		return source.Start, false
	}
	from, afterCR := parent.locate(opts)
	loc := source.Resume(from, afterCR, opts.Unit, opts.TabstopWidth)
	n.writePreceding(loc)

	pos, afterCR := loc.Location(), loc.AfterCR()
	if bytes {
		n.tree.cachePosition(n.id, pos, afterCR)
	}
	return pos, afterCR
}

// writePreceding prints every sibling before n into w.
func (n Node) writePreceding(w io.Writer) {
	parent := n.Parent().Raw()
	if parent == nil {
		return
	}
	for i := range n.IndexInParent() {
		_, _ = parent.Child(i).WriteTo(w)
	}
}

// Tokens returns an iterator over the present tokens in this subtree, in
// order.
func (n Node) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		n.tokens(yield)
	}
}

func (n Node) tokens(yield func(Token) bool) bool {
	switch {
	case n.IsMissing():
		return true
	case n.Kind() == raw.Token:
		return yield(Token{n})
	}
	for _, child := range n.Children() {
		if !child.tokens(yield) {
			return false
		}
	}
	return true
}

// Replace returns the node at the same path as n in a new tree, in which n
// has been replaced with r.
//
// Only the ancestors of n are rebuilt; every other subtree is shared with
// n's tree.
func (n Node) Replace(r *raw.Raw) Node {
	if n.IsZero() {
		panic("syntaxtree: Replace on zero node")
	}

	var path []int
	for node := n; ; {
		parent := node.Parent()
		if parent.IsZero() {
			break
		}
		path = append(path, node.IndexInParent())
		r = parent.Raw().ReplaceChild(node.IndexInParent(), r)
		node = parent
	}

	node := NewTree(r).Root()
	for i := len(path) - 1; i >= 0; i-- {
		node = node.Child(path[i])
	}
	return node
}

// replaceChild is like [Node.Replace], but replaces the index'th child of n
// and returns n's counterpart in the new tree.
func (n Node) replaceChild(index int, child *raw.Raw) Node {
	return n.Replace(n.expanded().ReplaceChild(index, child))
}

// expanded returns n's raw node. A missing fixed-shape node with no children
// is given the blank layout of its kind first, keeping it missing.
func (n Node) expanded() *raw.Raw {
	r := n.Raw()
	if !r.IsMissing() || r.NumChildren() > 0 || raw.NumSlots(r.Kind()) <= 0 {
		return r
	}
	return raw.Make(r.Kind(), seq.ToSlice(raw.Blank(r.Kind()).Children()), raw.Missing)
}

// with replaces the child at index after checking it against the contract of
// n's kind. A zero child resets the slot to its blank value.
//
// Panics with a [*raw.ShapeError] if the contract is violated.
func (n Node) with(index int, child Node) Node {
	if n.IsZero() {
		panic("syntaxtree: With on zero node")
	}
	if child.IsZero() {
		return n.replaceChild(index, raw.Blank(n.Kind()).Child(index))
	}
	if err := raw.CheckChild(n.Kind(), index, child.Raw()); err != nil {
		panic(err)
	}
	return n.replaceChild(index, child.Raw())
}

// String returns the printed text of this node.
func (n Node) String() string {
	if n.IsZero() {
		return ""
	}
	return raw.Print(n.Raw())
}

// WriteTo implements [io.WriterTo], writing the text [Node.String] returns.
func (n Node) WriteTo(w io.Writer) (int64, error) {
	if n.IsZero() {
		return 0, nil
	}
	return n.Raw().WriteTo(w)
}

// Format implements [fmt.Formatter].
//
// %v prints this node's text; %+v prints a short description of its kind and
// position, for debugging.
func (n Node) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		if n.IsZero() {
			fmt.Fprint(s, "<zero>")
			return
		}
		fmt.Fprintf(s, "%v@%v", n.Raw(), n.Position())
		return
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), n.String())
}
