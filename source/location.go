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

// Package source provides positions within printed source text.
//
// A syntax tree does not store positions: they are derived from the printed
// width of everything that precedes a node. [Locator] performs that
// derivation incrementally, and [Location] is its result.
package source

import "fmt"

// Location is a user-displayable location within printed source text.
type Location struct {
	// The byte offset for this location, zero-indexed.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// The units of measurement for column depend on the [Unit] used when
	// computing it.
	//
	// Because these are 1-indexed, a zero Line can be used as a sentinel.
	Line, Column int
}

// Start is the location of the first byte of any text.
var Start = Location{Offset: 0, Line: 1, Column: 1}

// IsZero returns whether this is the zero location, which is not a valid
// position.
func (l Location) IsZero() bool {
	return l.Line == 0
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	if l.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("%d:%d[%d]", l.Line, l.Column, l.Offset)
}

// Unit is a unit of measurement for columns.
type Unit int8

const (
	// Bytes measures columns in bytes of UTF-8.
	Bytes Unit = iota
	// Runes measures columns in Unicode code points.
	Runes
	// UTF16 measures columns in UTF-16 code units, as the Language Server
	// Protocol does.
	UTF16
	// TermWidth measures columns in approximate terminal cells, expanding
	// tabstops and counting wide grapheme clusters as two cells.
	TermWidth
)

// String implements [fmt.Stringer].
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "Bytes"
	case Runes:
		return "Runes"
	case UTF16:
		return "UTF16"
	case TermWidth:
		return "TermWidth"
	default:
		return fmt.Sprintf("source.Unit(%d)", int(u))
	}
}
