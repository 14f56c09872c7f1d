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

// Package dump converts syntax trees to and from a structured form.
//
// A [Node] mirrors a raw tree one-to-one and can be encoded as YAML,
// MessagePack or a protobuf [structpb.Value]. [Load] turns a Node back into
// a validated raw tree, which makes dumps a convenient way to describe trees
// in test data.
package dump

import (
	"fmt"

	"github.com/bufbuild/syntaxtree/syntax/raw"
	"github.com/bufbuild/syntaxtree/syntax/token"
)

// Node is the structured form of a single raw node.
type Node struct {
	// The name of the node's kind, as returned by [raw.Kind.String].
	Kind string `yaml:"kind" msgpack:"kind"`
	// The name of the slot this node occupies in its parent, if it has one.
	// Ignored by [Load].
	Slot    string `yaml:"slot,omitempty" msgpack:"slot,omitempty"`
	Missing bool   `yaml:"missing,omitempty" msgpack:"missing,omitempty"`

	// Only set for tokens.
	Token    string   `yaml:"token,omitempty" msgpack:"token,omitempty"`
	Text     string   `yaml:"text,omitempty" msgpack:"text,omitempty"`
	Leading  []Trivia `yaml:"leading,omitempty" msgpack:"leading,omitempty"`
	Trailing []Trivia `yaml:"trailing,omitempty" msgpack:"trailing,omitempty"`

	Children []*Node `yaml:"children,omitempty" msgpack:"children,omitempty"`
}

// Trivia is the structured form of a [raw.TriviaPiece].
type Trivia struct {
	Kind string `yaml:"kind" msgpack:"kind"`
	Text string `yaml:"text" msgpack:"text"`
}

// Of returns the structured form of r.
func Of(r *raw.Raw) *Node {
	n := &Node{
		Kind:    r.Kind().String(),
		Missing: r.IsMissing(),
	}

	if r.IsToken() {
		n.Token = r.TokenKind().String()
		n.Text = r.Text()
		n.Leading = trivia(r.LeadingTrivia())
		n.Trailing = trivia(r.TrailingTrivia())
		return n
	}

	for i := range r.NumChildren() {
		child := Of(r.Child(i))
		child.Slot = raw.SlotName(r.Kind(), i)
		n.Children = append(n.Children, child)
	}
	return n
}

func trivia(t raw.Trivia) []Trivia {
	if len(t) == 0 {
		return nil
	}
	out := make([]Trivia, len(t))
	for i, p := range t {
		out[i] = Trivia{Kind: p.Kind.String(), Text: p.Text}
	}
	return out
}

// Load converts a structured node back into a raw tree.
//
// Returns an error if a kind name is not recognized, or if the resulting
// tree does not satisfy the contracts of its kinds.
func Load(n *Node) (*raw.Raw, error) {
	r, err := load(n, "$")
	if err != nil {
		return nil, err
	}
	if err := r.ValidateTree(); err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	return r, nil
}

func load(n *Node, path string) (*raw.Raw, error) {
	if n == nil {
		return nil, fmt.Errorf("dump: %s: missing node", path)
	}

	kind, ok := raw.KindByName(n.Kind)
	if !ok {
		return nil, fmt.Errorf("dump: %s: unknown node kind %q", path, n.Kind)
	}
	presence := raw.Present
	if n.Missing {
		presence = raw.Missing
	}

	if kind == raw.Token {
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("dump: %s: token has children", path)
		}
		tok, ok := token.KindByName(n.Token)
		if !ok {
			return nil, fmt.Errorf("dump: %s: unknown token kind %q", path, n.Token)
		}
		leading, err := loadTrivia(n.Leading, path+".leading")
		if err != nil {
			return nil, err
		}
		trailing, err := loadTrivia(n.Trailing, path+".trailing")
		if err != nil {
			return nil, err
		}
		return raw.MakeToken(tok, n.Text, leading, trailing, presence), nil
	}

	if n.Token != "" || n.Text != "" || n.Leading != nil || n.Trailing != nil {
		return nil, fmt.Errorf("dump: %s: %v has token fields", path, kind)
	}
	layout := make([]*raw.Raw, len(n.Children))
	for i, child := range n.Children {
		r, err := load(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		layout[i] = r
	}
	return raw.Make(kind, layout, presence), nil
}

func loadTrivia(pieces []Trivia, path string) (raw.Trivia, error) {
	var out raw.Trivia
	for i, p := range pieces {
		kind, ok := raw.TriviaKindByName(p.Kind)
		if !ok {
			return nil, fmt.Errorf("dump: %s[%d]: unknown trivia kind %q", path, i, p.Kind)
		}
		out = append(out, raw.TriviaPiece{Kind: kind, Text: p.Text})
	}
	return out, nil
}
