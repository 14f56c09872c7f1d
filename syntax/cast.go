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

import "github.com/bufbuild/syntaxtree/syntax/raw"

// View is implemented by the typed views in this package, such as
// [FunctionCallExpr] and [Expr].
type View interface {
	~struct{ Node }

	// accepts returns whether a node of the given kind may be viewed as this
	// type.
	accepts(kind raw.Kind) bool
	// viewName is the name of this view, for errors.
	viewName() string
}

// Cast views n as a V.
//
// Returns a [*raw.ShapeError] if n's kind is not one V accepts, or if n's
// layout does not satisfy its kind's contract. This is the boundary at which
// trees built elsewhere, such as by a parser, enter the typed layer.
//
// Casting the zero node yields the zero view.
func Cast[V View](n Node) (V, error) {
	var zero V
	if n.IsZero() {
		return zero, nil
	}
	if !zero.accepts(n.Kind()) {
		return zero, raw.Mismatch(zero.viewName(), n.Raw())
	}
	if err := n.Raw().Validate(); err != nil {
		return zero, err
	}
	return V(struct{ Node }{n}), nil
}

// MustCast is like [Cast], but panics on failure.
func MustCast[V View](n Node) V {
	v, err := Cast[V](n)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse validates every node in r and returns it as the root of a new tree,
// viewed as a V.
func Parse[V View](r *raw.Raw) (V, error) {
	if err := r.ValidateTree(); err != nil {
		var zero V
		return zero, err
	}
	return Cast[V](NewTree(r).Root())
}

// wrap views n as a V without checking anything.
func wrap[V View](n Node) V {
	return V(struct{ Node }{n})
}

// child returns the index'th child of n as a V, or the zero V if n is zero,
// the child is missing, or the child is not something V accepts.
//
// A missing node with no children reads as if every slot were missing.
func child[V View](n Node, index int) V {
	var zero V
	if index >= n.NumChildren() {
		return zero
	}
	c := n.Child(index)
	if c.IsMissing() || !zero.accepts(c.Kind()) {
		return zero
	}
	return wrap[V](c)
}

// list returns the index'th child of n as a list view. Unlike [child], a
// missing list is still returned, since it reads as an empty list. The list
// slot of a missing node with no children is the zero list, which is also
// empty.
func list[V View](n Node, index int) V {
	var zero V
	if index >= n.NumChildren() {
		return zero
	}
	c := n.Child(index)
	if !zero.accepts(c.Kind()) {
		return zero
	}
	return wrap[V](c)
}

// blank returns the blank node of the given kind, in a fresh tree.
func blank[V View](kind raw.Kind) V {
	return wrap[V](NewTree(raw.Blank(kind)).Root())
}

// appending implements Appending for the list views.
func appending[V View](n Node, kind raw.Kind, elems []Node) V {
	if n.IsZero() {
		n = NewTree(raw.Blank(kind)).Root()
	}
	raws := make([]*raw.Raw, len(elems))
	for i, elem := range elems {
		if elem.IsZero() {
			panic("syntaxtree: appending zero node to list")
		}
		if err := raw.CheckChild(kind, n.NumChildren()+i, elem.Raw()); err != nil {
			panic(err)
		}
		raws[i] = elem.Raw()
	}
	return wrap[V](n.Replace(n.Raw().Appending(raws...)))
}

// removing implements Removing for the list views.
func removing[V View](n Node, index int) V {
	if n.IsZero() {
		panic("syntaxtree: Removing from zero list")
	}
	return wrap[V](n.Replace(n.Raw().Removing(index)))
}

// nodes converts a slice of views into nodes.
func nodes[V View](views []V) []Node {
	out := make([]Node, len(views))
	for i, v := range views {
		out[i] = struct{ Node }(v).Node
	}
	return out
}
