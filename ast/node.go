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

// Package ast provides factory operations for a small Solidity-flavored
// abstract syntax tree. Every node constructed here carries a shared,
// synthetic source location: the package never reads or reports source
// positions, it only builds trees that the host compiler frontend can
// splice into an author-supplied tree.
package ast

// Location is the source-range a node occupies. Nodes synthesized by this
// package always carry the zero value: they have no author-visible
// position of their own.
type Location struct {
	File       string
	StartLine  int
	StartCol   int
	EndLine    int
	EndCol     int
}

// emptyLocation is shared by every node this package constructs.
var emptyLocation = Location{}

// Node is implemented by every tree node this package can construct.
// Children returns the node's immediate subnodes in evaluation/declaration
// order; it is used by callers that need to walk a freshly synthesized
// subtree without type-switching on every concrete kind.
type Node interface {
	node()
	Location() Location
	Doc() string
	Children() []Node
}

// base is embedded by every concrete node type. It supplies the Location
// and Doc accessors so concrete types only need to implement node() and
// Children().
type base struct {
	loc Location
	doc string
}

func (base) node() {}

func (b base) Location() Location { return b.loc }

func (b base) Doc() string { return b.doc }

func newBase() base {
	return base{loc: emptyLocation, doc: ""}
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expression()
}

type exprBase struct{ base }

func (exprBase) expression() {}

// Statement is a Node that appears in a function or block body.
type Statement interface {
	Node
	statement()
}

type stmtBase struct{ base }

func (stmtBase) statement() {}

// Declaration is a Node that introduces a contract-level member: a
// struct, event, function, or state variable.
type Declaration interface {
	Node
	declaration()
}

type declBase struct{ base }

func (declBase) declaration() {}
