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
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// ErrShape is the sentinel that every [ShapeError] matches with [errors.Is].
var ErrShape = errors.New("malformed syntax tree")

// debug is set from the SYNTAXTREE_DEBUG environment variable; when set,
// shape errors record where they were created.
var debug = os.Getenv("SYNTAXTREE_DEBUG") != ""

// ShapeError reports a node whose layout does not satisfy its kind's
// contract, or a node that cannot be viewed as the requested kind.
type ShapeError struct {
	// The kind of the node whose contract was violated.
	Kind Kind
	// The offending slot, or -1 if the error is about the node as a whole
	// (its kind or its number of children).
	Slot int
	// The name of the offending slot, if it has one. List elements are
	// unnamed.
	Field string
	// Descriptions of what the contract wants and what was found.
	Want, Got string

	// Stack trace of the call that found the violation. Only populated when
	// the env var SYNTAXTREE_DEBUG is set.
	Trace []runtime.Frame
}

// Mismatch returns an error reporting that got is not a node of the wanted
// kind or category.
func Mismatch(want string, got *Raw) *ShapeError {
	return newShapeError(1, &ShapeError{
		Kind: got.kind,
		Slot: -1,
		Want: want,
		Got:  describe(got),
	})
}

func newShapeError(skip int, err *ShapeError) *ShapeError {
	if !debug {
		return err
	}

	pc := make([]uintptr, 64)
	pc = pc[:runtime.Callers(skip+2, pc)]

	var zero runtime.Frame
	frames := runtime.CallersFrames(pc)
	for {
		next, more := frames.Next()
		if next != zero {
			err.Trace = append(err.Trace, next)
		}
		if !more {
			break
		}
	}
	return err
}

// Error implements [error].
func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString("syntaxtree: ")
	if e.Slot < 0 {
		fmt.Fprintf(&b, "want %s, got %s", e.Want, e.Got)
	} else {
		fmt.Fprintf(&b, "malformed %v: ", e.Kind)
		if e.Field != "" {
			fmt.Fprintf(&b, "%s (child %d)", e.Field, e.Slot)
		} else {
			fmt.Fprintf(&b, "child %d", e.Slot)
		}
		fmt.Fprintf(&b, ": want %s, got %s", e.Want, e.Got)
	}

	if len(e.Trace) > 0 {
		b.WriteString("\nat:")
		for _, frame := range e.Trace {
			fmt.Fprintf(&b, "\n  %s\n    %s:%d", frame.Function, frame.File, frame.Line)
		}
	}
	return b.String()
}

// Unwrap returns [ErrShape].
func (e *ShapeError) Unwrap() error {
	return ErrShape
}

// describe returns a short description of r for use in errors.
func describe(r *Raw) string {
	if r.kind == Token {
		return fmt.Sprintf("%v token %q", r.tok, r.text)
	}
	return r.kind.String()
}
