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

import (
	"math"
	"math/bits"

	"fortio.org/safecast"

	"github.com/bufbuild/syntaxtree/internal/ext/unicodex"
	"github.com/bufbuild/syntaxtree/syntax/raw"
)

// IntegerLiteralExpr is an integer literal with an optional sign, such as
// -42.
type IntegerLiteralExpr struct{ Node }

func (IntegerLiteralExpr) accepts(kind raw.Kind) bool { return kind == raw.IntegerLiteralExpr }
func (IntegerLiteralExpr) viewName() string           { return "IntegerLiteralExpr" }

// BlankIntegerLiteralExpr returns an integer literal with no sign and no
// digits.
func BlankIntegerLiteralExpr() IntegerLiteralExpr {
	return blank[IntegerLiteralExpr](raw.IntegerLiteralExpr)
}

// AsExpr converts this view into an Expr.
func (e IntegerLiteralExpr) AsExpr() Expr { return Expr(e) }

// Sign returns the prefix operator before the digits, if there is one.
func (e IntegerLiteralExpr) Sign() Token {
	return child[Token](e.Node, int(raw.IntegerLiteralExprSign))
}

// Digits returns the digits of this literal.
func (e IntegerLiteralExpr) Digits() Token {
	return child[Token](e.Node, int(raw.IntegerLiteralExprDigits))
}

// WithSign returns a copy of e with a different sign. A zero token removes
// the sign.
//
// Panics if sign is not a prefix operator.
func (e IntegerLiteralExpr) WithSign(sign Token) IntegerLiteralExpr {
	return IntegerLiteralExpr{e.with(int(raw.IntegerLiteralExprSign), sign.Node)}
}

// WithDigits returns a copy of e with different digits.
//
// Panics if digits is not an integer literal.
func (e IntegerLiteralExpr) WithDigits(digits Token) IntegerLiteralExpr {
	return IntegerLiteralExpr{e.with(int(raw.IntegerLiteralExprDigits), digits.Node)}
}

// Value returns the value of this literal with its sign applied.
//
// The digits may start with a 0x, 0o or 0b base prefix, and may use _ as a
// separator. Returns false if the digits are malformed, if the sign is
// anything other than - or +, or if the value does not fit in an int64.
func (e IntegerLiteralExpr) Value() (int64, bool) {
	digits := e.Digits().Text()
	base := 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] | 0x20 {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 10 {
			digits = digits[2:]
		}
	}

	var magnitude uint64
	var seen bool
	for _, r := range digits {
		if r == '_' && seen {
			continue
		}
		d, ok := unicodex.Digit(r, base)
		if !ok {
			return 0, false
		}
		hi, lo := bits.Mul64(magnitude, uint64(base))
		lo, carry := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 {
			return 0, false
		}
		magnitude, seen = lo, true
	}
	if !seen {
		return 0, false
	}

	negate := false
	switch e.Sign().Text() {
	case "", "+":
	case "-":
		if magnitude == -math.MinInt64 {
			return math.MinInt64, true
		}
		negate = true
	default:
		return 0, false
	}

	v, err := safecast.Conv[int64](magnitude)
	if err != nil {
		return 0, false
	}
	if negate {
		v = -v
	}
	return v, true
}
