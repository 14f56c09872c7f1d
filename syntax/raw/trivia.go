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

package raw

import (
	"fmt"
	"strings"
)

const (
	Present Presence = iota // The node was written in the source.
	Missing                 // The node was expected but not written.
)

// Presence records whether a node was actually written in the source.
//
// A missing node is a placeholder: it has a kind, and a missing token keeps
// its canonical spelling, but it prints as nothing.
type Presence byte

// String implements [fmt.Stringer].
func (p Presence) String() string {
	switch p {
	case Present:
		return "Present"
	case Missing:
		return "Missing"
	default:
		return fmt.Sprintf("raw.Presence(%d)", int(p))
	}
}

const (
	Space                  TriviaKind = iota // A run of ' '.
	Tab                                      // A run of '\t'.
	Newline                                  // A run of '\n'.
	CarriageReturn                           // A run of '\r'.
	CarriageReturnLineFeed                   // A run of "\r\n".
	LineComment                              // A // comment, without its line break.
	BlockComment                             // A /* */ comment.
	DocLineComment                           // A /// comment, without its line break.
	DocBlockComment                          // A /** */ comment.
	Garbage                                  // Source text the lexer skipped.

	triviaKindCount
)

// TriviaKind identifies what a [TriviaPiece] contains.
type TriviaKind byte

var triviaKindNames = [...]string{
	Space:                  "Space",
	Tab:                    "Tab",
	Newline:                "Newline",
	CarriageReturn:         "CarriageReturn",
	CarriageReturnLineFeed: "CarriageReturnLineFeed",
	LineComment:            "LineComment",
	BlockComment:           "BlockComment",
	DocLineComment:         "DocLineComment",
	DocBlockComment:        "DocBlockComment",
	Garbage:                "Garbage",
}

var triviaKindsByName = func() map[string]TriviaKind {
	m := make(map[string]TriviaKind, triviaKindCount)
	for k, name := range triviaKindNames {
		m[name] = TriviaKind(k)
	}
	return m
}()

// TriviaKindByName looks up a trivia kind by the name [TriviaKind.String]
// returns for it.
func TriviaKindByName(name string) (TriviaKind, bool) {
	k, ok := triviaKindsByName[name]
	return k, ok
}

// String implements [fmt.Stringer].
func (k TriviaKind) String() string {
	if k < triviaKindCount {
		return triviaKindNames[k]
	}
	return fmt.Sprintf("raw.TriviaKind(%d)", int(k))
}

// TriviaPiece is a single piece of trivia: whitespace, a comment, or skipped
// text. Text is exactly what appears in the source.
type TriviaPiece struct {
	Kind TriviaKind
	Text string
}

// Trivia is a run of trivia pieces attached to one side of a token.
//
// A nil Trivia is empty.
type Trivia []TriviaPiece

// Spaces returns trivia consisting of n spaces.
func Spaces(n int) Trivia { return repeat(Space, " ", n) }

// Tabs returns trivia consisting of n tabs.
func Tabs(n int) Trivia { return repeat(Tab, "\t", n) }

// Newlines returns trivia consisting of n line feeds.
func Newlines(n int) Trivia { return repeat(Newline, "\n", n) }

// LineComments returns trivia consisting of a single line comment. text
// should include the leading //.
func LineComments(text string) Trivia {
	return Trivia{{Kind: LineComment, Text: text}}
}

// BlockComments returns trivia consisting of a single block comment. text
// should include the delimiters.
func BlockComments(text string) Trivia {
	return Trivia{{Kind: BlockComment, Text: text}}
}

func repeat(kind TriviaKind, unit string, n int) Trivia {
	if n <= 0 {
		return nil
	}
	return Trivia{{Kind: kind, Text: strings.Repeat(unit, n)}}
}

// Append returns a new trivia run consisting of t followed by more. t is not
// modified.
func (t Trivia) Append(more ...TriviaPiece) Trivia {
	if len(more) == 0 {
		return t
	}
	out := make(Trivia, 0, len(t)+len(more))
	out = append(out, t...)
	return append(out, more...)
}

// Len returns the length of this trivia's text, in bytes.
func (t Trivia) Len() int {
	var n int
	for _, p := range t {
		n += len(p.Text)
	}
	return n
}

// String returns the concatenated text of every piece.
func (t Trivia) String() string {
	var b strings.Builder
	b.Grow(t.Len())
	for _, p := range t {
		b.WriteString(p.Text)
	}
	return b.String()
}

// clone copies t, so that callers cannot mutate a node's trivia through a
// slice they still hold.
func (t Trivia) clone() Trivia {
	if len(t) == 0 {
		return nil
	}
	return append(Trivia(nil), t...)
}
