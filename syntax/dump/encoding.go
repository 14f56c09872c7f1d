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

package dump

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// Format is an encoding for a [Node].
type Format int

const (
	FormatYAML    Format = iota // YAML, for humans and test data.
	FormatMsgPack               // MessagePack, for compact storage.
	FormatProto                 // A google.protobuf.Value, in the protobuf binary format.
)

// Protobuf strings must be UTF-8, so the proto form stores text that is not
// under this key instead, base64-encoded.
const text64 = "text64"

// String implements [fmt.Stringer].
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMsgPack:
		return "msgpack"
	case FormatProto:
		return "proto"
	default:
		return fmt.Sprintf("dump.Format(%d)", int(f))
	}
}

// Options configures [Marshal] and [Unmarshal]. The zero value selects YAML.
type Options struct {
	Format Format

	// Indentation width for YAML. Zero selects 2.
	Indent int
}

// Marshal encodes n.
func Marshal(n *Node, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatYAML:
		indent := opts.Indent
		if indent == 0 {
			indent = 2
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(indent)
		if err := enc.Encode(n); err != nil {
			return nil, fmt.Errorf("dump: encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("dump: encoding yaml: %w", err)
		}
		return buf.Bytes(), nil

	case FormatMsgPack:
		data, err := msgpack.Marshal(n)
		if err != nil {
			return nil, fmt.Errorf("dump: encoding msgpack: %w", err)
		}
		return data, nil

	case FormatProto:
		value, err := structpb.NewValue(toValue(n))
		if err != nil {
			return nil, fmt.Errorf("dump: encoding proto: %w", err)
		}
		data, err := proto.MarshalOptions{Deterministic: true}.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("dump: encoding proto: %w", err)
		}
		return data, nil

	default:
		return nil, fmt.Errorf("dump: unknown format %v", opts.Format)
	}
}

// Unmarshal decodes a node encoded by [Marshal] with the same format.
func Unmarshal(data []byte, opts Options) (*Node, error) {
	n := new(Node)
	switch opts.Format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(n); err != nil {
			return nil, fmt.Errorf("dump: decoding yaml: %w", err)
		}

	case FormatMsgPack:
		if err := msgpack.Unmarshal(data, n); err != nil {
			return nil, fmt.Errorf("dump: decoding msgpack: %w", err)
		}

	case FormatProto:
		value := new(structpb.Value)
		if err := proto.Unmarshal(data, value); err != nil {
			return nil, fmt.Errorf("dump: decoding proto: %w", err)
		}
		var err error
		if n, err = fromValue(value.AsInterface()); err != nil {
			return nil, fmt.Errorf("dump: decoding proto: %w", err)
		}

	default:
		return nil, fmt.Errorf("dump: unknown format %v", opts.Format)
	}
	return n, nil
}

// toValue converts n into the dynamic form [structpb.NewValue] accepts.
func toValue(n *Node) map[string]any {
	m := map[string]any{"kind": n.Kind}
	if n.Slot != "" {
		m["slot"] = n.Slot
	}
	if n.Missing {
		m["missing"] = true
	}
	if n.Token != "" {
		m["token"] = n.Token
	}
	if n.Text != "" {
		putText(m, n.Text)
	}
	if len(n.Leading) > 0 {
		m["leading"] = triviaValue(n.Leading)
	}
	if len(n.Trailing) > 0 {
		m["trailing"] = triviaValue(n.Trailing)
	}
	if len(n.Children) > 0 {
		children := make([]any, len(n.Children))
		for i, child := range n.Children {
			children[i] = toValue(child)
		}
		m["children"] = children
	}
	return m
}

func triviaValue(pieces []Trivia) []any {
	out := make([]any, len(pieces))
	for i, p := range pieces {
		m := map[string]any{"kind": p.Kind}
		putText(m, p.Text)
		out[i] = m
	}
	return out
}

func putText(m map[string]any, text string) {
	if utf8.ValidString(text) {
		m["text"] = text
		return
	}
	m[text64] = base64.StdEncoding.EncodeToString([]byte(text))
}

func decodeText(key string, value any) (string, error) {
	s, err := str(key, value)
	if err != nil {
		return "", err
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return string(data), nil
}

// fromValue is the inverse of [toValue].
func fromValue(v any) (*Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("want object, got %T", v)
	}

	n := new(Node)
	for key, value := range m {
		var err error
		switch key {
		case "kind":
			n.Kind, err = str(key, value)
		case "slot":
			n.Slot, err = str(key, value)
		case "token":
			n.Token, err = str(key, value)
		case "text":
			n.Text, err = str(key, value)
		case text64:
			n.Text, err = decodeText(key, value)
		case "missing":
			var ok bool
			if n.Missing, ok = value.(bool); !ok {
				err = fmt.Errorf("missing: want bool, got %T", value)
			}
		case "leading":
			n.Leading, err = triviaFrom(key, value)
		case "trailing":
			n.Trailing, err = triviaFrom(key, value)
		case "children":
			var list []any
			if list, err = listOf(key, value); err != nil {
				break
			}
			for _, elem := range list {
				child, err := fromValue(elem)
				if err != nil {
					return nil, err
				}
				n.Children = append(n.Children, child)
			}
		default:
			err = fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return nil, err
		}
	}
	if n.Kind == "" {
		return nil, errors.New("node without kind")
	}
	return n, nil
}

func triviaFrom(key string, value any) ([]Trivia, error) {
	list, err := listOf(key, value)
	if err != nil {
		return nil, err
	}
	out := make([]Trivia, len(list))
	for i, elem := range list {
		m, ok := elem.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: want object, got %T", key, i, elem)
		}
		if out[i].Kind, err = str(key, m["kind"]); err != nil {
			return nil, err
		}
		if encoded, ok := m[text64]; ok {
			out[i].Text, err = decodeText(key, encoded)
		} else {
			out[i].Text, err = str(key, m["text"])
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func str(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s: want string, got %T", key, value)
	}
	return s, nil
}

func listOf(key string, value any) ([]any, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: want list, got %T", key, value)
	}
	return list, nil
}
