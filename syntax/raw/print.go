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
	"io"
	"strings"
)

// Print returns the source text of r: the leading trivia, text and trailing
// trivia of every present token, in order.
//
// Missing subtrees print as nothing.
func Print(r *Raw) string {
	var b strings.Builder
	b.Grow(r.width)
	_, _ = r.WriteTo(&b)
	return b.String()
}

// WriteTo implements [io.WriterTo], writing the text [Print] returns.
func (r *Raw) WriteTo(w io.Writer) (int64, error) {
	p := printer{w: w}
	p.print(r)
	return p.n, p.err
}

type printer struct {
	w   io.Writer
	n   int64
	err error
}

func (p *printer) print(r *Raw) {
	if p.err != nil || r.presence == Missing {
		return
	}
	if r.kind != Token {
		for _, child := range r.layout {
			p.print(child)
		}
		return
	}

	for _, t := range r.leading {
		p.write(t.Text)
	}
	p.write(r.text)
	for _, t := range r.trailing {
		p.write(t.Text)
	}
}

func (p *printer) write(s string) {
	if p.err != nil || s == "" {
		return
	}
	n, err := io.WriteString(p.w, s)
	p.n += int64(n)
	p.err = err
}

// String returns a short description of r, for debugging.
func (r *Raw) String() string {
	if r == nil {
		return "<nil>"
	}
	var missing string
	if r.presence == Missing {
		missing = "missing "
	}
	if r.kind == Token {
		return fmt.Sprintf("%s%v %q", missing, r.tok, r.text)
	}
	return fmt.Sprintf("%s%v[%d]", missing, r.kind, len(r.layout))
}
