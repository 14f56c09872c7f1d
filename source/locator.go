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

package source

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bufbuild/syntaxtree/internal/ext/unicodex"
)

// Locator advances a [Location] over text.
//
// Line breaks are "\n", "\r\n" and a lone "\r". A "\r\n" pair split across
// two calls to WriteString is still counted as one line break.
//
// The zero value is not ready to use; see [NewLocator].
type Locator struct {
	loc  Location
	unit Unit

	// Column offset inside the current line, in unit. Only used for
	// TermWidth, which needs the zero-indexed column to expand tabs.
	width unicodex.Width
	// Whether the last byte written was a '\r'.
	pendingCR bool
}

// NewLocator returns a locator that starts at from and measures columns in
// unit. tabstop is only consulted for [TermWidth]; zero selects a default.
func NewLocator(from Location, unit Unit, tabstop int) *Locator {
	if from.IsZero() {
		from = Start
	}
	return &Locator{
		loc:   from,
		unit:  unit,
		width: unicodex.Width{Column: from.Column - 1, Tabstop: tabstop},
	}
}

// Resume is like [NewLocator], but picks up where another locator left off.
// afterCR is that locator's [Locator.AfterCR], so that a '\n' written first
// completes the "\r\n" break it already counted.
func Resume(from Location, afterCR bool, unit Unit, tabstop int) *Locator {
	l := NewLocator(from, unit, tabstop)
	l.pendingCR = afterCR
	return l
}

// AfterCR reports whether the last byte written was a '\r'.
func (l *Locator) AfterCR() bool {
	return l.pendingCR
}

// Location returns the current location.
func (l *Locator) Location() Location {
	return l.loc
}

// WriteString advances the locator past text. It implements
// [io.StringWriter] and never returns an error.
func (l *Locator) WriteString(text string) (int, error) {
	n := len(text)
	for text != "" {
		if l.pendingCR && text[0] == '\n' {
			// Second half of a "\r\n" that was already counted as a break.
			l.pendingCR = false
			l.loc.Offset++
			text = text[1:]
			continue
		}

		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			l.advance(text)
			l.pendingCR = false
			break
		}

		l.advance(text[:i])
		l.loc.Offset++
		l.loc.Line++
		l.loc.Column = 1
		l.width.Column = 0
		l.pendingCR = text[i] == '\r'
		text = text[i+1:]
	}
	return n, nil
}

// Write implements [io.Writer], so that a Locator may be handed to anything
// that prints text. It never returns an error.
func (l *Locator) Write(text []byte) (int, error) {
	return l.WriteString(string(text))
}

// advance moves across text that contains no line breaks.
func (l *Locator) advance(text string) {
	if text == "" {
		return
	}

	l.loc.Offset += len(text)
	switch l.unit {
	case Runes:
		l.loc.Column += utf8.RuneCountInString(text)
	case UTF16:
		for _, r := range text {
			l.loc.Column += utf16.RuneLen(r)
		}
	case TermWidth:
		_, _ = l.width.WriteString(text)
		l.loc.Column = l.width.Column + 1
	default:
		l.loc.Column += len(text)
	}
}
