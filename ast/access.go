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

// IndexAccess is `base[index]`.
type IndexAccess struct {
	exprBase
	Base  Expression
	Index Expression
}

func (a *IndexAccess) Children() []Node { return []Node{a.Base, a.Index} }

// NewIndexAccess constructs base[index].
func NewIndexAccess(base, index Expression) *IndexAccess {
	return &IndexAccess{exprBase: exprBase{newBase()}, Base: base, Index: index}
}

// MemberAccess is `base.member`.
type MemberAccess struct {
	exprBase
	Base   Expression
	Member string
}

func (a *MemberAccess) Children() []Node { return []Node{a.Base} }

// NewMemberAccess constructs base.member.
func NewMemberAccess(base Expression, member string) *MemberAccess {
	return &MemberAccess{exprBase: exprBase{newBase()}, Base: base, Member: member}
}
