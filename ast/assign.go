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

// AssignOperator distinguishes plain assignment from compound assignment.
type AssignOperator string

const (
	AssignPlain AssignOperator = "="
	AssignAdd   AssignOperator = "+="
)

// Assignment is `target <op> value`.
type Assignment struct {
	exprBase
	Operator AssignOperator
	Target   Expression
	Value    Expression
}

func (a *Assignment) Children() []Node { return []Node{a.Target, a.Value} }

// NewAssignment constructs a plain assignment target = value.
func NewAssignment(target, value Expression) *Assignment {
	return &Assignment{exprBase: exprBase{newBase()}, Operator: AssignPlain, Target: target, Value: value}
}

// NewAddAssignment constructs a compound assignment target += value.
func NewAddAssignment(target, value Expression) *Assignment {
	return &Assignment{exprBase: exprBase{newBase()}, Operator: AssignAdd, Target: target, Value: value}
}
