// Copyright 2018 Nicolas Lykke Iversen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "strconv"

// LiteralKind distinguishes the token identity of a Literal.
type LiteralKind int

const (
	// NumberLiteral is an integer literal in source text (e.g. "5").
	NumberLiteral LiteralKind = iota
	// BoolLiteral is the "true"/"false" token.
	BoolLiteral
	// StringLiteral is a quoted string token.
	StringLiteral
)

// Literal is a token-level constant: a number, bool, or string.
type Literal struct {
	exprBase
	Kind  LiteralKind
	Value string
}

func (l *Literal) Children() []Node { return nil }

// NewNumberLiteral constructs an integer literal from its decimal text.
func NewNumberLiteral(value string) *Literal {
	return &Literal{exprBase: exprBase{newBase()}, Kind: NumberLiteral, Value: value}
}

// NewIntLiteral constructs an integer literal from an int.
func NewIntLiteral(value int) *Literal {
	return NewNumberLiteral(strconv.Itoa(value))
}

// NewBoolLiteral constructs a boolean literal.
func NewBoolLiteral(value bool) *Literal {
	v := "false"
	if value {
		v = "true"
	}
	return &Literal{exprBase: exprBase{newBase()}, Kind: BoolLiteral, Value: v}
}

// NewStringLiteral constructs a string literal. value is the literal's
// content, not including surrounding quotes.
func NewStringLiteral(value string) *Literal {
	return &Literal{exprBase: exprBase{newBase()}, Kind: StringLiteral, Value: value}
}
