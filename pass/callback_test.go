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

package pass

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlykkei/oraclize-solidity-compiler/ast"
	"github.com/nlykkei/oraclize-solidity-compiler/query"
)

func TestSynthesizeCallbackSingleURLDataBranch(t *testing.T) {
	require := require.New(t)

	cb := ast.NewIdentifier("cb")
	call := oracleQueryCall(ast.NewStringLiteral("data"), ast.NewStringLiteral("https://x/y"), cb)
	fn := containerWithCall("f", call)
	contract := ast.NewContractDefinition("C", fn)

	q := query.NewData([]string{"https://x/y"}, cb, fn)
	cfg := DefaultConfig()
	SynthesizeEnvironment(contract, []*query.Query{q}, cfg)

	out := SynthesizeCallback(contract, []*query.Query{q}, cfg)
	require.Equal("__callback", out.Name)
	require.Equal(ast.VisibilityPublic, out.Visibility)
	require.Equal(ast.MutabilityNonPayable, out.Mutability)
	require.Len(out.Parameters.Parameters, 2)
	require.Equal("_queryId", out.Parameters.Parameters[0].Name)
	require.Equal("_result", out.Parameters.Parameters[1].Name)

	ifStmt, ok := out.Body.Statements[len(out.Body.Statements)-1].(*ast.IfStatement)
	require.True(ok)
	require.Nil(ifStmt.Else)

	condition, ok := ifStmt.Condition.(*ast.BinaryOp)
	require.True(ok)
	require.Equal(ast.OpEq, condition.Operator)

	then, ok := ifStmt.Then.(*ast.Block)
	require.True(ok)
	require.Len(then.Statements, 2)

	invocation, ok := then.Statements[0].(*ast.ExpressionStatement)
	require.True(ok)
	invokeCall, ok := invocation.Expression.(*ast.Call)
	require.True(ok)
	require.Same(cb, invokeCall.Callee)

	del, ok := then.Statements[1].(*ast.ExpressionStatement)
	require.True(ok)
	deleteOp, ok := del.Expression.(*ast.UnaryOp)
	require.True(ok)
	require.Equal(ast.OpDelete, deleteOp.Operator)
}

func TestSynthesizeCallbackMultiURLDataAccumulatesBeforeInvoking(t *testing.T) {
	require := require.New(t)

	cb := ast.NewIdentifier("cb")
	call := oracleQueryCall(
		ast.NewStringLiteral("data"), ast.NewStringLiteral("https://a"), ast.NewStringLiteral("https://b"), cb)
	fn := containerWithCall("f", call)
	contract := ast.NewContractDefinition("C", fn)

	q := query.NewData([]string{"https://a", "https://b"}, cb, fn)
	cfg := DefaultConfig()
	SynthesizeEnvironment(contract, []*query.Query{q}, cfg)

	out := SynthesizeCallback(contract, []*query.Query{q}, cfg)
	ifStmt := out.Body.Statements[len(out.Body.Statements)-1].(*ast.IfStatement)
	then := ifStmt.Then.(*ast.Block)

	// store, advance, dispatch-if — the three statements §4.F's Data(n>1)
	// template always produces regardless of n.
	require.Len(then.Statements, 3)
	dispatch, ok := then.Statements[2].(*ast.IfStatement)
	require.True(ok)
	require.NotNil(dispatch.Else)

	allReceived, ok := dispatch.Then.(*ast.Block)
	require.True(ok)
	invocation, ok := allReceived.Statements[0].(*ast.ExpressionStatement)
	require.True(ok)
	invokeCall, ok := invocation.Expression.(*ast.Call)
	require.True(ok)
	require.Len(invokeCall.Arguments, 2)
}

func TestSynthesizeCallbackVerifyingBranchPrependsVerificationBlock(t *testing.T) {
	require := require.New(t)

	cb := ast.NewIdentifier("cb")
	call := oracleQueryCall(ast.NewStringLiteral("sqrt"), ast.NewIdentifier("n"), cb, ast.NewBoolLiteral(true))
	fn := containerWithCall("f", call)
	contract := ast.NewContractDefinition("C", fn)

	q := query.NewSqrt(ast.NewIdentifier("n"), true, "", nil, cb, fn)
	cfg := DefaultConfig()
	SynthesizeEnvironment(contract, []*query.Query{q}, cfg)

	out := SynthesizeCallback(contract, []*query.Query{q}, cfg)
	ifStmt := out.Body.Statements[len(out.Body.Statements)-1].(*ast.IfStatement)
	then := ifStmt.Then.(*ast.Block)

	// declaration + guard, then invocation + delete.
	require.Len(then.Statements, 4)
	decl, ok := then.Statements[0].(*ast.VariableDeclarationStatement)
	require.True(ok)
	require.Equal("_sqrt0", decl.Declaration.Name)
}

func TestSynthesizeCallbackChainsInReverseOrderFirstQueryOutermost(t *testing.T) {
	require := require.New(t)

	cb1 := ast.NewIdentifier("cb1")
	cb2 := ast.NewIdentifier("cb2")
	fn := ast.NewFunctionDefinition("f", ast.NewParameterList(), ast.VisibilityPublic, ast.MutabilityNonPayable, ast.NewBlock())
	contract := ast.NewContractDefinition("C", fn)

	q0 := query.NewData([]string{"https://x"}, cb1, fn)
	q1 := query.NewData([]string{"https://y"}, cb2, fn)
	cfg := DefaultConfig()
	SynthesizeEnvironment(contract, []*query.Query{q0, q1}, cfg)

	out := SynthesizeCallback(contract, []*query.Query{q0, q1}, cfg)

	outer := out.Body.Statements[len(out.Body.Statements)-1].(*ast.IfStatement)
	outerCond := outer.Condition.(*ast.BinaryOp)
	outerTarget := outerCond.Right.(*ast.MemberAccess)
	outerVar := outerTarget.Base.(*ast.Identifier)
	require.Equal("_oEnv0", outerVar.Name)

	inner, ok := outer.Else.(*ast.IfStatement)
	require.True(ok)
	innerCond := inner.Condition.(*ast.BinaryOp)
	innerTarget := innerCond.Right.(*ast.MemberAccess)
	innerVar := innerTarget.Base.(*ast.Identifier)
	require.Equal("_oEnv1", innerVar.Name)
	require.Nil(inner.Else)
}

func TestSynthesizeCallbackAppendsToContract(t *testing.T) {
	require := require.New(t)

	cb := ast.NewIdentifier("cb")
	fn := ast.NewFunctionDefinition("f", ast.NewParameterList(), ast.VisibilityPublic, ast.MutabilityNonPayable, ast.NewBlock())
	contract := ast.NewContractDefinition("C", fn)

	q := query.NewData([]string{"https://x"}, cb, fn)
	cfg := DefaultConfig()
	SynthesizeEnvironment(contract, []*query.Query{q}, cfg)
	before := len(contract.Subnodes)

	out := SynthesizeCallback(contract, []*query.Query{q}, cfg)

	require.Len(contract.Subnodes, before+1)
	require.Same(out, contract.Subnodes[len(contract.Subnodes)-1])
}
