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

// Package token defines the kinds of token leaves in a syntax tree.
//
// A token kind determines whether a token has a fixed spelling. Punctuation
// such as [Colon] always spells the same way, and tree validation checks the
// exact text; identifiers, literals and operators carry arbitrary text.
package token

import "fmt"

const (
	Unknown        Kind = iota // Unrecognized garbage in the input.
	EOF                        // End of input. Carries the file's final trivia.
	Identifier                 // A name, such as foo.
	IntegerLiteral             // A run of digits, such as 42.
	PrefixOperator             // An operator applied to what follows it, such as -.
	Colon                      // The : after an argument label.
	Comma                      // A , separating list elements.
	LeftParen                  // An opening (.
	RightParen                 // A closing ).
	LeftAngle                  // An opening < of a generic argument clause.
	RightAngle                 // A closing > of a generic argument clause.

	kindCount // Total number of kinds.
)

// Kind identifies what kind of token a particular token leaf is.
type Kind byte

var kindNames = [...]string{
	Unknown:        "Unknown",
	EOF:            "EOF",
	Identifier:     "Identifier",
	IntegerLiteral: "IntegerLiteral",
	PrefixOperator: "PrefixOperator",
	Colon:          "Colon",
	Comma:          "Comma",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	LeftAngle:      "LeftAngle",
	RightAngle:     "RightAngle",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// KindByName looks up a kind by the name [Kind.String] returns for it.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Spelling returns the only text a token of this kind may have, or "" if
// tokens of this kind carry arbitrary text.
func (k Kind) Spelling() string {
	switch k {
	case Colon:
		return ":"
	case Comma:
		return ","
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case LeftAngle:
		return "<"
	case RightAngle:
		return ">"
	default:
		return ""
	}
}

// IsPunct returns whether this kind has a fixed spelling.
func (k Kind) IsPunct() bool {
	return k.Spelling() != ""
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("token.Kind(%d)", int(k))
}
