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

// Package unicodex contains Unicode helpers that the standard library lacks.
package unicodex

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the default width of a tabstop, in columns.
const TabstopWidth int = 4

// Width calculates the approximate width of text in terminal columns.
//
// Text is measured one line at a time: callers are expected to reset Column
// when they encounter a line break.
type Width struct {
	// The column at which the text is being rendered, zero-indexed. This is
	// necessary for tabstop calculations.
	Column int

	// The width of a tabstop in columns. If set to zero, [TabstopWidth] is
	// used.
	Tabstop int
}

// WriteString advances w.Column past text.
//
// It implements [io.StringWriter] so that a Width can be used as a sink, and
// never returns an error.
func (w *Width) WriteString(text string) (int, error) {
	tabstop := w.Tabstop
	if tabstop <= 0 {
		tabstop = TabstopWidth
	}

	// uniseg.StringWidth does not know about tabstops, so split on tabs and
	// advance to the next stop for each one.
	for i, chunk := range strings.Split(text, "\t") {
		if i > 0 {
			w.Column += tabstop - (w.Column % tabstop)
		}
		w.Column += uniseg.StringWidth(chunk)
	}

	return len(text), nil
}
