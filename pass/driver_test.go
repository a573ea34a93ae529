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
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/nlykkei/oraclize-solidity-compiler/ast"
)

func TestDriverSkipsIgnoredContracts(t *testing.T) {
	require := require.New(t)

	cb := ast.NewIdentifier("cb")
	call := oracleQueryCall(ast.NewStringLiteral("data"), ast.NewStringLiteral("https://x"), cb)
	fn := containerWithCall("f", call)
	contract := ast.NewContractDefinition("usingOraclize", fn)

	err := Run([]*ast.ContractDefinition{contract}, DefaultConfig())
	require.NoError(err)

	require.Len(fn.Body.Statements, 1)
	require.Len(contract.Subnodes, 1)
	require.Same(fn, contract.Subnodes[0])
}

func TestDriverLeavesContractsWithNoQueriesUntouched(t *testing.T) {
	require := require.New(t)

	fn := ast.NewFunctionDefinition("f", ast.NewParameterList(), ast.VisibilityPublic, ast.MutabilityNonPayable,
		ast.NewBlock(ast.NewExpressionStatement(ast.NewCallByName("doSomethingElse"))))
	contract := ast.NewContractDefinition("C", fn)

	err := Run([]*ast.ContractDefinition{contract}, DefaultConfig())
	require.NoError(err)
	require.Len(contract.Subnodes, 1)
	require.Len(fn.Body.Statements, 1)
}

func TestDriverEndToEndSingleQuery(t *testing.T) {
	require := require.New(t)

	cb := ast.NewIdentifier("cb")
	call := oracleQueryCall(ast.NewStringLiteral("sqrt"), ast.NewIdentifier("n"), cb, ast.NewBoolLiteral(true))
	fn := containerWithCall("f", call)
	contract := ast.NewContractDefinition("C", fn)

	err := Run([]*ast.ContractDefinition{contract}, DefaultConfig())
	require.NoError(err)

	// event + struct + var + fn + __callback.
	require.Len(contract.Subnodes, 5)
	_, isEvent := contract.Subnodes[0].(*ast.EventDefinition)
	require.True(isEvent)
	_, isStruct := contract.Subnodes[1].(*ast.StructDefinition)
	require.True(isStruct)
	_, isVar := contract.Subnodes[2].(*ast.VariableDeclaration)
	require.True(isVar)
	require.Same(fn, contract.Subnodes[3])
	callbackFn, ok := contract.Subnodes[4].(*ast.FunctionDefinition)
	require.True(ok)
	require.Equal("__callback", callbackFn.Name)

	// The container's oracleQuery call must be gone, replaced by the
	// environment-init + dispatch statements.
	for _, stmt := range fn.Body.Statements {
		exprStmt, ok := stmt.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		if call, ok := exprStmt.Expression.(*ast.Call); ok {
			if callee, ok := call.Callee.(*ast.Identifier); ok {
				require.NotEqual(oracleQueryName, callee.Name)
			}
		}
	}
}

func TestDriverEndToEndUnknownKindLeavesContractUnmodified(t *testing.T) {
	require := require.New(t)

	call := oracleQueryCall(ast.NewStringLiteral("foo"), ast.NewIdentifier("cb"))
	fn := containerWithCall("f", call)
	contract := ast.NewContractDefinition("C", fn)

	err := Run([]*ast.ContractDefinition{contract}, DefaultConfig())
	require.NoError(err)
	require.Len(contract.Subnodes, 1)
	require.Same(fn, contract.Subnodes[0])
	require.Len(fn.Body.Statements, 1)
}

func TestDriverPropagatesRecognitionErrors(t *testing.T) {
	require := require.New(t)

	call := oracleQueryCall(ast.NewStringLiteral("sqrt"), ast.NewIdentifier("n"))
	fn := containerWithCall("f", call)
	contract := ast.NewContractDefinition("C", fn)

	err := Run([]*ast.ContractDefinition{contract}, DefaultConfig())
	require.Error(err)
	require.True(ErrRecognition.Is(err))
}

func TestDriverProcessesMultipleContractsIndependently(t *testing.T) {
	require := require.New(t)

	cb1 := ast.NewIdentifier("cb1")
	call1 := oracleQueryCall(ast.NewStringLiteral("data"), ast.NewStringLiteral("https://x"), cb1)
	fn1 := containerWithCall("f1", call1)
	contract1 := ast.NewContractDefinition("C1", fn1)

	fn2 := ast.NewFunctionDefinition("f2", ast.NewParameterList(), ast.VisibilityPublic, ast.MutabilityNonPayable, ast.NewBlock())
	contract2 := ast.NewContractDefinition("C2", fn2)

	err := Run([]*ast.ContractDefinition{contract1, contract2}, DefaultConfig())
	require.NoError(err)

	require.Len(contract1.Subnodes, 5)
	require.Len(contract2.Subnodes, 1)
}

func TestDriverDumpsQueriesWhenContractDebugEnabled(t *testing.T) {
	require := require.New(t)

	cb := ast.NewIdentifier("cb")
	call := oracleQueryCall(ast.NewStringLiteral("data"), ast.NewStringLiteral("https://x"), cb)
	fn := containerWithCall("f", call)
	contract := ast.NewContractDefinition("C", fn)

	var out bytes.Buffer
	logger := logrus.New()
	logger.Out = &out
	logger.Level = logrus.DebugLevel

	cfg := DefaultConfig()
	cfg.ContractDebug = true
	cfg.Logger = logger

	err := Run([]*ast.ContractDefinition{contract}, cfg)
	require.NoError(err)
	require.Len(contract.Subnodes, 5)
	require.Contains(out.String(), "query_dump")
}
