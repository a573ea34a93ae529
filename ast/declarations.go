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

// Visibility is a state-variable or function visibility modifier.
type Visibility int

const (
	VisibilityDefault Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityInternal
)

// VariableDeclaration introduces a name of a given type: a function
// parameter, a struct member, or a contract-level state variable.
type VariableDeclaration struct {
	declBase
	Name       string
	Type       TypeName
	Visibility Visibility
}

func (v *VariableDeclaration) Children() []Node { return []Node{v.Type} }

// NewVariableDeclaration constructs a variable declaration with the given
// visibility (VisibilityDefault for parameters and struct members).
func NewVariableDeclaration(name string, typ TypeName, visibility Visibility) *VariableDeclaration {
	return &VariableDeclaration{declBase: declBase{newBase()}, Name: name, Type: typ, Visibility: visibility}
}

// ParameterList is an ordered list of VariableDeclarations, used for
// function parameters and return parameters.
type ParameterList struct {
	base
	Parameters []*VariableDeclaration
}

func (p *ParameterList) Children() []Node {
	children := make([]Node, len(p.Parameters))
	for i, param := range p.Parameters {
		children[i] = param
	}
	return children
}

// NewParameterList constructs a parameter list from its members.
func NewParameterList(parameters ...*VariableDeclaration) *ParameterList {
	return &ParameterList{base: newBase(), Parameters: parameters}
}

// StructDefinition is a contract-level struct declaration; its Members
// are ordered exactly as they must appear in emitted source.
type StructDefinition struct {
	declBase
	Name    string
	Members []*VariableDeclaration
}

func (s *StructDefinition) Children() []Node {
	children := make([]Node, len(s.Members))
	for i, m := range s.Members {
		children[i] = m
	}
	return children
}

// NewStructDefinition constructs a struct named name with the given
// ordered members.
func NewStructDefinition(name string, members ...*VariableDeclaration) *StructDefinition {
	return &StructDefinition{declBase: declBase{newBase()}, Name: name, Members: members}
}

// EventDefinition is a contract-level event declaration.
type EventDefinition struct {
	declBase
	Name       string
	Parameters *ParameterList
}

func (e *EventDefinition) Children() []Node { return []Node{e.Parameters} }

// NewEventDefinition constructs an event named name with the given
// parameters.
func NewEventDefinition(name string, parameters *ParameterList) *EventDefinition {
	return &EventDefinition{declBase: declBase{newBase()}, Name: name, Parameters: parameters}
}

// StateMutability distinguishes the small subset of function mutability
// modifiers this pass ever emits.
type StateMutability int

const (
	MutabilityNonPayable StateMutability = iota
	MutabilityView
	MutabilityPayable
)

// FunctionDefinition is a contract-level function. Body is mutable: the
// container rewriter (component E) removes and inserts statements in
// place.
type FunctionDefinition struct {
	declBase
	Name       string
	Parameters *ParameterList
	Returns    *ParameterList
	Visibility Visibility
	Mutability StateMutability
	Body       *Block
}

func (f *FunctionDefinition) Children() []Node {
	children := []Node{f.Parameters}
	if f.Returns != nil {
		children = append(children, f.Returns)
	}
	children = append(children, f.Body)
	return children
}

// NewFunctionDefinition constructs a function named name.
func NewFunctionDefinition(name string, parameters *ParameterList, visibility Visibility, mutability StateMutability, body *Block) *FunctionDefinition {
	return &FunctionDefinition{
		declBase:   declBase{newBase()},
		Name:       name,
		Parameters: parameters,
		Visibility: visibility,
		Mutability: mutability,
		Body:       body,
	}
}
