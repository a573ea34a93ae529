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
	"strconv"

	"github.com/nlykkei/oraclize-solidity-compiler/ast"
	"github.com/nlykkei/oraclize-solidity-compiler/query"
)

// verificationBlock builds the §4.F.a validation template for q, or nil
// when q's kind emits none (Data never does; Sort accepts Verify but
// never emits a body even when it is true; Min and APSP take no verify
// argument, so Verify is always false for them). suffix
// distinguishes this query's locals (e.g. "_sqrt0") from every other
// query's locals in the same __callback body, since all branches share
// one function scope.
func verificationBlock(q *query.Query, suffix string, cfg Config) []ast.Statement {
	if !q.Verify() {
		return nil
	}
	switch q.Kind {
	case query.Sqrt:
		return sqrtVerification(q, suffix)
	case query.ThreeSum:
		return threeSumVerification(q, suffix, cfg)
	case query.KP:
		return kpVerification(q, suffix, cfg)
	case query.KDS:
		return kdsVerification(q, suffix, cfg)
	default:
		// Sort: verify accepted, never acted on.
		return nil
	}
}

func resultIdent() *ast.Identifier { return ast.NewIdentifier("_result") }

func resultLengthExpr() ast.Expression {
	return ast.NewMemberAccess(ast.NewCallByName("bytes", resultIdent()), "length")
}

func clearResultStatement() ast.Statement {
	return ast.NewExpressionStatement(ast.NewAssignment(resultIdent(), ast.NewStringLiteral("")))
}

func varMember(q *query.Query, member string) *ast.MemberAccess {
	return ast.NewMemberAccess(ast.NewIdentifier(q.VarName), member)
}

// sqrtVerification builds:
//
//	uint _sqrt<i> = parseInt(_result);
//	if (_sqrt<i>**2 <= v.sqrt && (_sqrt<i>+1)**2 > v.sqrt) {} else { _result = ""; }
func sqrtVerification(q *query.Query, suffix string) []ast.Statement {
	sqrtVar := ast.NewIdentifier("_sqrt" + suffix)
	decl := ast.NewVariableDeclarationStatement(
		ast.NewVariableDeclaration(sqrtVar.Name, ast.NewUintType(), ast.VisibilityDefault),
		ast.NewCallByName("parseInt", resultIdent()),
	)

	lowerBound := ast.NewBinaryOp(ast.OpLtEq,
		ast.NewBinaryOp(ast.OpExp, sqrtVar, ast.NewIntLiteral(2)),
		varMember(q, "sqrt"))
	upperBound := ast.NewBinaryOp(ast.OpGt,
		ast.NewBinaryOp(ast.OpExp, ast.NewBinaryOp(ast.OpAdd, sqrtVar, ast.NewIntLiteral(1)), ast.NewIntLiteral(2)),
		varMember(q, "sqrt"))
	condition := ast.NewBinaryOp(ast.OpAndAnd, lowerBound, upperBound)

	ifStmt := ast.NewIfElseStatement(condition, ast.NewBlock(), ast.NewBlock(clearResultStatement()))
	return []ast.Statement{decl, ifStmt}
}

// threeSumVerification builds the §4.F.a ThreeSum template.
func threeSumVerification(q *query.Query, suffix string, cfg Config) []ast.Statement {
	sumVar := ast.NewIdentifier("_3sum" + suffix)
	sumArrType := ast.NewArrayType(ast.NewUintType())

	decl := ast.NewVariableDeclarationStatement(
		ast.NewVariableDeclaration(sumVar.Name, sumArrType, ast.VisibilityDefault),
		ast.NewCallByName("stringToArray", resultIdent()),
	)

	idx := func(n int) ast.Expression { return ast.NewIndexAccess(sumVar, ast.NewIntLiteral(n)) }

	lengthCheck := ast.NewBinaryOp(ast.OpEq, ast.NewMemberAccess(sumVar, "length"), ast.NewIntLiteral(3))
	distinct01 := ast.NewBinaryOp(ast.OpNotEq, idx(0), idx(1))
	distinct02 := ast.NewBinaryOp(ast.OpNotEq, idx(0), idx(2))
	distinct12 := ast.NewBinaryOp(ast.OpNotEq, idx(1), idx(2))

	sumExpr := ast.NewBinaryOp(ast.OpAdd,
		ast.NewBinaryOp(ast.OpAdd,
			ast.NewIndexAccess(varMember(q, "nums"), idx(0)),
			ast.NewIndexAccess(varMember(q, "nums"), idx(1))),
		ast.NewIndexAccess(varMember(q, "nums"), idx(2)))
	sumMatches := ast.NewBinaryOp(ast.OpEq, sumExpr, varMember(q, "sum"))

	condition := ast.Expression(lengthCheck)
	for _, clause := range []ast.Expression{distinct01, distinct02, distinct12, sumMatches} {
		condition = ast.NewBinaryOp(ast.OpAndAnd, condition, clause)
	}

	validBranch := ast.NewIfElseStatement(condition, ast.NewBlock(), ast.NewBlock(clearResultStatement()))

	var noTripleBranch ast.Statement = ast.NewBlock()
	if cfg.ContractDebug {
		noTripleBranch = ast.NewBlock(debugEvent(varMember(q, "queryId"), ast.NewStringLiteral(q.Kind.Name()), ast.NewStringLiteral("no-triple")))
	}

	outer := ast.NewIfElseStatement(
		ast.NewBinaryOp(ast.OpNotEq, resultLengthExpr(), ast.NewIntLiteral(0)),
		ast.NewBlock(decl, validBranch),
		noTripleBranch,
	)
	return []ast.Statement{outer}
}

// kpVerification builds the §4.F.a KP template.
func kpVerification(q *query.Query, suffix string, cfg Config) []ast.Statement {
	pathVar := ast.NewIdentifier("_path" + suffix)
	nVar := ast.NewIdentifier("_n" + suffix)
	wVar := ast.NewIdentifier("_W" + suffix)
	loopVar := ast.NewIdentifier("_i" + suffix)

	pathDecl := ast.NewVariableDeclarationStatement(
		ast.NewVariableDeclaration(pathVar.Name, ast.NewArrayType(ast.NewUintType()), ast.VisibilityDefault),
		ast.NewCallByName("stringToArray", resultIdent()),
	)
	nDecl := ast.NewVariableDeclarationStatement(
		ast.NewVariableDeclaration(nVar.Name, ast.NewUintType(), ast.VisibilityDefault),
		ast.NewCallByName("babylonian", ast.NewMemberAccess(varMember(q, "w"), "length")),
	)

	pathLenMinus1 := ast.NewBinaryOp(ast.OpSub, ast.NewMemberAccess(pathVar, "length"), ast.NewIntLiteral(1))
	lengthCondition := ast.NewBinaryOp(ast.OpEq, varMember(q, "k"), pathLenMinus1)

	wDecl := ast.NewVariableDeclarationStatement(
		ast.NewVariableDeclaration(wVar.Name, ast.NewUintType(), ast.VisibilityDefault),
		ast.NewIntLiteral(0))

	edgeWeight := ast.NewIndexAccess(varMember(q, "w"),
		ast.NewBinaryOp(ast.OpAdd,
			ast.NewBinaryOp(ast.OpMul, ast.NewIndexAccess(pathVar, loopVar), nVar),
			ast.NewIndexAccess(pathVar, ast.NewBinaryOp(ast.OpAdd, loopVar, ast.NewIntLiteral(1)))))
	accumulate := ast.NewExpressionStatement(ast.NewAddAssignment(wVar, edgeWeight))

	forLoop := ast.NewForStatement(
		ast.NewVariableDeclarationStatement(ast.NewVariableDeclaration(loopVar.Name, ast.NewUintType(), ast.VisibilityDefault), ast.NewIntLiteral(0)),
		ast.NewBinaryOp(ast.OpLt, loopVar, pathLenMinus1),
		ast.NewUnaryOp(ast.OpIncrement, loopVar, true),
		accumulate,
	)

	weightCondition := ast.NewBinaryOp(ast.OpGtEq, varMember(q, "W"), wVar)
	weightCheck := ast.NewIfElseStatement(weightCondition, ast.NewBlock(), ast.NewBlock(clearResultStatement()))

	lengthOK := ast.NewIfElseStatement(lengthCondition,
		ast.NewBlock(wDecl, forLoop, weightCheck),
		ast.NewBlock(clearResultStatement()))

	var noPathBranch ast.Statement = ast.NewBlock()
	if cfg.ContractDebug {
		noPathBranch = ast.NewBlock(debugEvent(varMember(q, "queryId"), ast.NewStringLiteral(q.Kind.Name()), ast.NewStringLiteral("no-path")))
	}

	outer := ast.NewIfElseStatement(
		ast.NewBinaryOp(ast.OpNotEq, resultLengthExpr(), ast.NewIntLiteral(0)),
		ast.NewBlock(pathDecl, nDecl, lengthOK),
		noPathBranch,
	)
	return []ast.Statement{outer}
}

// kdsVerification builds the §4.F.a KDS template, preserving the §9
// documented quirk: the "no result" branch zeroes _result even though it
// is already empty.
func kdsVerification(q *query.Query, suffix string, cfg Config) []ast.Statement {
	dsetVar := ast.NewIdentifier("_dset" + suffix)
	nVar := ast.NewIdentifier("_n" + suffix)
	dominatedVar := ast.NewIdentifier("_dominated" + suffix)
	vvVar := ast.NewIdentifier("_vv" + suffix)
	uVar := ast.NewIdentifier("_u" + suffix)
	jVar := ast.NewIdentifier("_j" + suffix)

	dsetDecl := ast.NewVariableDeclarationStatement(
		ast.NewVariableDeclaration(dsetVar.Name, ast.NewArrayType(ast.NewUintType()), ast.VisibilityDefault),
		ast.NewCallByName("stringToArray", resultIdent()),
	)
	nDecl := ast.NewVariableDeclarationStatement(
		ast.NewVariableDeclaration(nVar.Name, ast.NewUintType(), ast.VisibilityDefault),
		ast.NewCallByName("babylonian", ast.NewMemberAccess(varMember(q, "m"), "length")),
	)

	sizeCondition := ast.NewBinaryOp(ast.OpLtEq, ast.NewMemberAccess(dsetVar, "length"), varMember(q, "k"))

	dominatedDecl := ast.NewVariableDeclarationStatement(
		ast.NewVariableDeclaration(dominatedVar.Name, ast.NewArrayType(ast.NewBoolType()), ast.VisibilityDefault),
		ast.NewArrayAllocation(ast.NewBoolType(), nVar),
	)

	markDominated := ast.NewExpressionStatement(ast.NewAssignment(
		ast.NewIndexAccess(dominatedVar, ast.NewIndexAccess(dsetVar, vvVar)),
		ast.NewBoolLiteral(true)))

	edgeExists := ast.NewBinaryOp(ast.OpNotEq,
		ast.NewIndexAccess(varMember(q, "m"),
			ast.NewBinaryOp(ast.OpAdd,
				ast.NewBinaryOp(ast.OpMul, ast.NewIndexAccess(dsetVar, vvVar), nVar),
				uVar)),
		ast.NewIntLiteral(0))
	markNeighbor := ast.NewIfStatement(edgeExists,
		ast.NewExpressionStatement(ast.NewAssignment(ast.NewIndexAccess(dominatedVar, uVar), ast.NewBoolLiteral(true))))

	innerLoop := ast.NewForStatement(
		ast.NewVariableDeclarationStatement(ast.NewVariableDeclaration(uVar.Name, ast.NewUintType(), ast.VisibilityDefault), ast.NewIntLiteral(0)),
		ast.NewBinaryOp(ast.OpLt, uVar, nVar),
		ast.NewUnaryOp(ast.OpIncrement, uVar, true),
		markNeighbor,
	)

	outerLoop := ast.NewForStatement(
		ast.NewVariableDeclarationStatement(ast.NewVariableDeclaration(vvVar.Name, ast.NewUintType(), ast.VisibilityDefault), ast.NewIntLiteral(0)),
		ast.NewBinaryOp(ast.OpLt, vvVar, ast.NewMemberAccess(dsetVar, "length")),
		ast.NewUnaryOp(ast.OpIncrement, vvVar, true),
		ast.NewBlock(markDominated, innerLoop),
	)

	jDeclStmt := ast.NewVariableDeclarationStatement(
		ast.NewVariableDeclaration(jVar.Name, ast.NewUintType(), ast.VisibilityDefault), nil)
	findUndominated := ast.NewForStatement(
		ast.NewExpressionStatement(ast.NewAssignment(jVar, ast.NewIntLiteral(0))),
		ast.NewBinaryOp(ast.OpLt, jVar, nVar),
		ast.NewUnaryOp(ast.OpIncrement, jVar, true),
		ast.NewIfStatement(ast.NewUnaryOp(ast.OpNot, ast.NewIndexAccess(dominatedVar, jVar), true), ast.NewBreakStatement()),
	)

	fullyDominated := ast.NewBinaryOp(ast.OpGtEq, jVar, nVar)
	domination := ast.NewIfElseStatement(fullyDominated, ast.NewBlock(), ast.NewBlock(clearResultStatement()))

	sizeOK := ast.NewIfElseStatement(sizeCondition,
		ast.NewBlock(dominatedDecl, outerLoop, jDeclStmt, findUndominated, domination),
		ast.NewBlock(clearResultStatement()))

	// §9: the "no result" branch zeroes _result even though it is
	// already empty — preserved bit-for-bit, not "fixed".
	noneBranch := []ast.Statement{clearResultStatement()}
	if cfg.ContractDebug {
		noneBranch = append([]ast.Statement{debugEvent(varMember(q, "queryId"), ast.NewStringLiteral(q.Kind.Name()), ast.NewStringLiteral("none"))}, noneBranch...)
	}

	outer := ast.NewIfElseStatement(
		ast.NewBinaryOp(ast.OpNotEq, resultLengthExpr(), ast.NewIntLiteral(0)),
		ast.NewBlock(dsetDecl, nDecl, sizeOK),
		ast.NewBlock(noneBranch...),
	)
	return []ast.Statement{outer}
}

// suffixFor renders a query's position as the locals suffix §4.F
// requires ("fresh variable names suffixed with i").
func suffixFor(index int) string {
	return strconv.Itoa(index)
}
