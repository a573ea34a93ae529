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
	"github.com/nlykkei/oraclize-solidity-compiler/ast"
	"github.com/nlykkei/oraclize-solidity-compiler/query"
)

const callbackFunctionName = "__callback"

// SynthesizeCallback implements component F (§4.F). It appends a single
// __callback(bytes32, string) public function to contract, whose body is
// an else-if chain — one branch per query, right-nested so the first
// recognized query is outermost — built by walking queries in reverse.
//
// __callback is always public with non-payable mutability and carries no
// onlyOwner/authorization guard (§6); this is a known limitation of the
// emitted contract, not an oversight in this synthesizer.
func SynthesizeCallback(contract *ast.ContractDefinition, queries []*query.Query, cfg Config) *ast.FunctionDefinition {
	queryIDParam := ast.NewVariableDeclaration("_queryId", ast.NewFixedBytesType(32), ast.VisibilityDefault)
	resultParam := ast.NewVariableDeclaration("_result", ast.NewStringType(), ast.VisibilityDefault)
	params := ast.NewParameterList(queryIDParam, resultParam)

	var bodyStatements []ast.Statement
	if cfg.ContractDebug {
		bodyStatements = append(bodyStatements,
			debugEvent(ast.NewIdentifier("_queryId"), ast.NewStringLiteral(callbackFunctionName), ast.NewIdentifier("_result")),
			debugEvent(ast.NewIdentifier("_queryId"), ast.NewStringLiteral(callbackFunctionName), ast.NewStringLiteral(contract.Name)),
		)
	}

	var chain ast.Statement
	for i := len(queries) - 1; i >= 0; i-- {
		q := queries[i]
		condition := ast.NewBinaryOp(ast.OpEq, ast.NewIdentifier("_queryId"), varMember(q, "queryId"))
		then := callbackBranch(q, suffixFor(i), cfg)

		if chain == nil {
			chain = ast.NewIfStatement(condition, then)
		} else {
			chain = ast.NewIfElseStatement(condition, then, chain)
		}
	}
	if chain != nil {
		bodyStatements = append(bodyStatements, chain)
	}

	fn := ast.NewFunctionDefinition(callbackFunctionName, params, ast.VisibilityPublic, ast.MutabilityNonPayable, ast.NewBlock(bodyStatements...))
	contract.AppendSubnode(fn)

	cfg.logger().WithField("contract", contract.Name).WithFields(map[string]interface{}{
		"event":   "stage_done",
		"stage":   "callback",
		"queries": len(queries),
	}).Debug("oraclize: synthesized callback")

	return fn
}

// callbackBranch builds the then-branch body for one query's dispatch
// condition (§4.F).
func callbackBranch(q *query.Query, suffix string, cfg Config) *ast.Block {
	if q.Kind == query.Data {
		if q.Data.QuerySize() == 1 {
			return ast.NewBlock(callbackInvocation(q), deleteVar(q))
		}
		return dataMultiURLBranch(q, cfg)
	}

	statements := verificationBlock(q, suffix, cfg)
	statements = append(statements, callbackInvocation(q), deleteVar(q))
	return ast.NewBlock(statements...)
}

func callbackInvocation(q *query.Query) ast.Statement {
	return ast.NewExpressionStatement(ast.NewCall(q.Callback, ast.NewIdentifier("_result")))
}

func deleteVar(q *query.Query) ast.Statement {
	return ast.NewExpressionStatement(ast.NewUnaryOp(ast.OpDelete, ast.NewIdentifier(q.VarName), true))
}

// dataMultiURLBranch builds the §4.F Data(n>1) template: accumulate into
// retVals, advance index, and either dispatch the next URL or — once all
// n results are in — invoke the callback with all n results and clear
// the environment.
func dataMultiURLBranch(q *query.Query, cfg Config) *ast.Block {
	n := q.Data.QuerySize()
	indexMember := varMember(q, "index")
	retValsMember := varMember(q, "retVals")

	store := ast.NewExpressionStatement(ast.NewAssignment(
		ast.NewIndexAccess(retValsMember, indexMember), ast.NewIdentifier("_result")))
	advance := ast.NewExpressionStatement(ast.NewAddAssignment(indexMember, ast.NewIntLiteral(1)))

	callbackArgs := make([]ast.Expression, n)
	for i := 0; i < n; i++ {
		callbackArgs[i] = ast.NewIndexAccess(retValsMember, ast.NewIntLiteral(i))
	}
	allReceived := ast.NewBlock(
		ast.NewExpressionStatement(ast.NewCall(q.Callback, callbackArgs...)),
		deleteVar(q),
	)

	nextQueryStatements := []ast.Statement{
		ast.NewExpressionStatement(ast.NewAssignment(
			varMember(q, "queryId"),
			ast.NewCallByName("oraclize_query", ast.NewStringLiteral("URL"),
				ast.NewIndexAccess(varMember(q, "urls"), indexMember)))),
	}
	if cfg.ContractDebug {
		nextQueryStatements = append(nextQueryStatements,
			debugEvent(varMember(q, "queryId"), ast.NewStringLiteral(q.Kind.Name()), ast.NewIndexAccess(varMember(q, "urls"), indexMember)))
	}
	notYetComplete := ast.NewBlock(nextQueryStatements...)

	dispatch := ast.NewIfElseStatement(
		ast.NewBinaryOp(ast.OpEq, indexMember, ast.NewIntLiteral(n)),
		allReceived,
		notYetComplete,
	)

	return ast.NewBlock(store, advance, dispatch)
}
