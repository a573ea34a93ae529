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

// ContractDefinition is the unit Recognition, Synthesis, and the Rewriter
// all operate on. Subnodes is mutable and ordered: the Environment
// synthesizer inserts struct/event declarations at specific indices, and
// the Callback synthesizer appends the dispatch function, so callers must
// not assume Subnodes is stable across a pass.
type ContractDefinition struct {
	declBase
	Name     string
	Subnodes []Declaration
}

func (c *ContractDefinition) Children() []Node {
	children := make([]Node, len(c.Subnodes))
	for i, n := range c.Subnodes {
		children[i] = n
	}
	return children
}

// NewContractDefinition constructs a contract named name with the given
// initial subnodes.
func NewContractDefinition(name string, subnodes ...Declaration) *ContractDefinition {
	return &ContractDefinition{declBase: declBase{newBase()}, Name: name, Subnodes: subnodes}
}

// InsertSubnode inserts decl at position pos, shifting subsequent
// subnodes right.
func (c *ContractDefinition) InsertSubnode(pos int, decl Declaration) {
	c.Subnodes = append(c.Subnodes, nil)
	copy(c.Subnodes[pos+1:], c.Subnodes[pos:])
	c.Subnodes[pos] = decl
}

// AppendSubnode appends decl to the end of the subnode list.
func (c *ContractDefinition) AppendSubnode(decl Declaration) {
	c.Subnodes = append(c.Subnodes, decl)
}

// Functions returns the contract's function definitions in declaration
// order.
func (c *ContractDefinition) Functions() []*FunctionDefinition {
	var funcs []*FunctionDefinition
	for _, n := range c.Subnodes {
		if fn, ok := n.(*FunctionDefinition); ok {
			funcs = append(funcs, fn)
		}
	}
	return funcs
}
