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

// TypeName is any node usable in type position: an elementary type, an
// array of some base type, or (by identifier) a previously declared
// struct/event name.
type TypeName interface {
	Node
	typeName()
	// String renders the type the way it appears in emitted source, e.g.
	// "uint" (for 256 bits), "uint16", "bytes32", "string[3]".
	String() string
}

type typeBase struct{ base }

func (typeBase) typeName() {}

// ElementaryKind distinguishes the built-in value types §4.A lists.
type ElementaryKind int

const (
	KindFixedBytes ElementaryKind = iota
	KindString
	KindUint
	KindBool
	KindBytes
)

// ElementaryTypeName is a built-in Solidity value type, e.g. "uint256",
// "bytes32", "bool", "string", "bytes".
type ElementaryTypeName struct {
	typeBase
	Kind ElementaryKind
	// Width is the bit width for Kind == KindUint (default 256 when 0)
	// or the byte count for Kind == KindFixedBytes (1..32).
	Width int
}

func (e *ElementaryTypeName) Children() []Node { return nil }

func (e *ElementaryTypeName) String() string {
	switch e.Kind {
	case KindFixedBytes:
		return "bytes" + strconv.Itoa(e.Width)
	case KindString:
		return "string"
	case KindUint:
		width := e.Width
		if width == 0 {
			width = 256
		}
		if width == 256 {
			return "uint"
		}
		return "uint" + strconv.Itoa(width)
	case KindBool:
		return "bool"
	case KindBytes:
		return "bytes"
	}
	return ""
}

// NewFixedBytesType constructs bytesN for 1 <= n <= 32.
func NewFixedBytesType(n int) *ElementaryTypeName {
	return &ElementaryTypeName{typeBase: typeBase{newBase()}, Kind: KindFixedBytes, Width: n}
}

// NewStringType constructs the "string" type.
func NewStringType() *ElementaryTypeName {
	return &ElementaryTypeName{typeBase: typeBase{newBase()}, Kind: KindString}
}

// NewUintType constructs "uint" (256-bit, the default).
func NewUintType() *ElementaryTypeName {
	return &ElementaryTypeName{typeBase: typeBase{newBase()}, Kind: KindUint, Width: 256}
}

// NewUintNType constructs "uintN" for a caller-supplied bit width.
func NewUintNType(width int) *ElementaryTypeName {
	return &ElementaryTypeName{typeBase: typeBase{newBase()}, Kind: KindUint, Width: width}
}

// NewBoolType constructs the "bool" type.
func NewBoolType() *ElementaryTypeName {
	return &ElementaryTypeName{typeBase: typeBase{newBase()}, Kind: KindBool}
}

// NewBytesType constructs the dynamically-sized "bytes" type.
func NewBytesType() *ElementaryTypeName {
	return &ElementaryTypeName{typeBase: typeBase{newBase()}, Kind: KindBytes}
}

// ArrayTypeName is `BaseType[]` or, with a fixed Length, `BaseType[N]`.
type ArrayTypeName struct {
	typeBase
	BaseType TypeName
	// Length is the fixed array length, or nil for a dynamic array.
	Length *int
}

func (a *ArrayTypeName) Children() []Node { return []Node{a.BaseType} }

func (a *ArrayTypeName) String() string {
	if a.Length == nil {
		return a.BaseType.String() + "[]"
	}
	return a.BaseType.String() + "[" + strconv.Itoa(*a.Length) + "]"
}

// NewArrayType constructs a dynamic array of base.
func NewArrayType(base TypeName) *ArrayTypeName {
	return &ArrayTypeName{typeBase: typeBase{newBase()}, BaseType: base}
}

// NewFixedArrayType constructs a fixed-length array of base.
func NewFixedArrayType(base TypeName, length int) *ArrayTypeName {
	return &ArrayTypeName{typeBase: typeBase{newBase()}, BaseType: base, Length: &length}
}

// NamedTypeName refers to a user-declared type by name, e.g. a synthesized
// environment struct such as "OEnv0".
type NamedTypeName struct {
	typeBase
	Name string
}

func (n *NamedTypeName) Children() []Node { return nil }

func (n *NamedTypeName) String() string { return n.Name }

// NewNamedType constructs a reference to a previously declared type.
func NewNamedType(name string) *NamedTypeName {
	return &NamedTypeName{typeBase: typeBase{newBase()}, Name: name}
}
