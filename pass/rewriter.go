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

// RewriteContainer implements component E (§4.E). It removes q's
// oracleQuery call from its container's top-level statement list and
// splices in the environment initialization, optional gas-price setup,
// and the outbound-query block (optionally wrapped in a KP/KDS
// shortcut). SynthesizeEnvironment must have already assigned
// q.EnvName/q.VarName.
func RewriteContainer(q *query.Query, cfg Config) {
	body := q.Container.Body

	p, ok := findOracleQueryCall(body)
	if !ok {
		// Idempotence (§8): a container whose call already vanished has
		// nothing left for this stage to do.
		return
	}
	body.RemoveAt(p)

	insertPos := p
	body.Insert(insertPos, envInitStatement(q, cfg))
	insertPos++

	if cfg.GasPrice != 0 {
		body.Insert(insertPos, gasPriceStatement(cfg))
		insertPos++
	}

	body.Insert(insertPos, queryDispatchStatement(q, cfg))
}

// findOracleQueryCall locates the first expression statement in body
// whose expression is a call to oracleQuery, per §4.E step 1.
func findOracleQueryCall(body *ast.Block) (int, bool) {
	for i, stmt := range body.Statements {
		exprStmt, ok := stmt.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		call, ok := exprStmt.Expression.(*ast.Call)
		if !ok {
			continue
		}
		callee, ok := call.Callee.(*ast.Identifier)
		if ok && callee.Name == oracleQueryName {
			return i, true
		}
	}
	return 0, false
}

// envInitStatement builds `var_name = env_name(args...)`, §4.E step 2.
func envInitStatement(q *query.Query, cfg Config) *ast.ExpressionStatement {
	zeroBytes32 := ast.NewCallByName("bytes32", ast.NewIntLiteral(0))

	var args []ast.Expression
	if q.Kind == query.Data && q.Data.QuerySize() > 1 {
		n := q.Data.QuerySize()
		urlLiterals := make([]ast.Expression, n)
		emptyLiterals := make([]ast.Expression, n)
		for i, u := range q.Data.URLs {
			urlLiterals[i] = ast.NewStringLiteral(u)
			emptyLiterals[i] = ast.NewStringLiteral("")
		}
		args = []ast.Expression{
			ast.NewTuple(urlLiterals...),
			ast.NewTuple(emptyLiterals...),
			ast.NewIntLiteral(0),
			zeroBytes32,
		}
	} else {
		args = []ast.Expression{zeroBytes32}
		if q.Verify() {
			args = append(args, verificationInputs(q)...)
		}
	}

	assign := ast.NewAssignment(ast.NewIdentifier(q.VarName), ast.NewCallByName(q.EnvName, args...))
	return ast.NewExpressionStatement(assign)
}

// verificationInputs returns, in struct-field order, the expressions a
// verifying query's env struct was initialized from (§4.E step 2's "the
// variant's verification inputs in struct-field order").
func verificationInputs(q *query.Query) []ast.Expression {
	switch q.Kind {
	case query.Sqrt:
		return []ast.Expression{q.Sqrt.Number}
	case query.ThreeSum:
		return []ast.Expression{q.ThreeSum.Array, q.ThreeSum.Sum}
	case query.KP:
		return []ast.Expression{q.KP.Array, q.KP.PathLength, q.KP.MaxWeight}
	case query.KDS:
		return []ast.Expression{q.KDS.Array, q.KDS.MaxSize}
	default:
		return nil
	}
}

// gasPriceStatement builds oraclize_setCustomGasPrice(gas_price), §4.E
// step 3.
func gasPriceStatement(cfg Config) *ast.ExpressionStatement {
	call := ast.NewCallByName("oraclize_setCustomGasPrice", ast.NewIntLiteral(int(cfg.GasPrice)))
	return ast.NewExpressionStatement(call)
}

// queryDispatchStatement builds the §4.E step 4/5 statement: the plain
// outbound-query block, or — for KP/KDS with a switch function — the if
// wrapping that bypasses it below a size threshold.
func queryDispatchStatement(q *query.Query, cfg Config) ast.Statement {
	block := outboundQueryBlock(q, cfg)

	switchFunc := q.SwitchFunc()
	if !q.Kind.SupportsShortcut() || switchFunc == nil {
		return block
	}

	sizeArg := shortcutSizeArg(q)
	condition := ast.NewBinaryOp(ast.OpLt, sizeArg, ast.NewIntLiteral(3))

	thenStatements := []ast.Statement{}
	if cfg.ContractDebug {
		thenStatements = append(thenStatements, debugEvent(
			ast.NewCallByName("bytes32", ast.NewIntLiteral(0)),
			ast.NewStringLiteral(q.Kind.Name()),
			ast.NewStringLiteral(q.Container.Name),
		))
	}
	thenStatements = append(thenStatements, ast.NewExpressionStatement(
		ast.NewCall(q.Callback, ast.NewCall(switchFunc, shortcutArgs(q)...))))

	return ast.NewIfElseStatement(condition, ast.NewBlock(thenStatements...), block)
}

// shortcutSizeArg is the size expression the shortcut condition compares
// against the literal 3: KP's path length, KDS's max size.
func shortcutSizeArg(q *query.Query) ast.Expression {
	switch q.Kind {
	case query.KP:
		return q.KP.PathLength
	case query.KDS:
		return q.KDS.MaxSize
	default:
		return ast.NewIntLiteral(0)
	}
}

// shortcutArgs are the switch function's arguments, in source order
// (§4.E step 5).
func shortcutArgs(q *query.Query) []ast.Expression {
	switch q.Kind {
	case query.KP:
		return []ast.Expression{q.KP.Array, q.KP.PathLength, q.KP.MaxWeight}
	case query.KDS:
		return []ast.Expression{q.KDS.Array, q.KDS.MaxSize}
	default:
		return nil
	}
}

// outboundQueryBlock builds `var_name.queryId = oraclize_query("URL",
// <url-expr> [, gas_limit])`, with optional debug events (§4.E step 4).
func outboundQueryBlock(q *query.Query, cfg Config) *ast.Block {
	urlExpr := outboundQueryExpr(q)

	queryArgs := []ast.Expression{ast.NewStringLiteral("URL"), urlExpr}
	if cfg.GasLimit != 0 {
		queryArgs = append(queryArgs, ast.NewIntLiteral(int(cfg.GasLimit)))
	}

	queryIdAccess := ast.NewMemberAccess(ast.NewIdentifier(q.VarName), "queryId")
	assign := ast.NewAssignment(queryIdAccess, ast.NewCallByName("oraclize_query", queryArgs...))

	statements := []ast.Statement{ast.NewExpressionStatement(assign)}
	if cfg.ContractDebug {
		statements = append(statements,
			debugEvent(queryIdAccess, ast.NewStringLiteral(q.Kind.Name()), urlExpr),
			debugEvent(queryIdAccess, ast.NewStringLiteral(q.Kind.Name()), ast.NewStringLiteral(q.Container.Name)),
		)
	}
	return ast.NewBlock(statements...)
}

// debugEvent builds OraclizeEvent(queryId, typ, what).
func debugEvent(queryID, typ, what ast.Expression) *ast.ExpressionStatement {
	return ast.NewExpressionStatement(ast.NewCallByName(oraclizeEventName, queryID, typ, what))
}

// outboundQueryExpr computes the second argument to oraclize_query per
// the §4.E.a table.
func outboundQueryExpr(q *query.Query) ast.Expression {
	prefix := ast.NewStringLiteral(q.EffectiveURL())
	slash := ast.NewStringLiteral("/")

	switch q.Kind {
	case query.Data:
		if q.Data.QuerySize() == 1 {
			return ast.NewStringLiteral(q.Data.URLs[0])
		}
		varIdent := ast.NewIdentifier(q.VarName)
		return ast.NewIndexAccess(
			ast.NewMemberAccess(varIdent, "urls"),
			ast.NewMemberAccess(varIdent, "index"),
		)
	case query.Min:
		return ast.NewCallByName("arrayToStringWithPrefix", q.Min.Array, slash, prefix)
	case query.APSP:
		return ast.NewCallByName("arrayToStringWithPrefix", q.APSP.Array, slash, prefix)
	case query.Sort:
		return ast.NewCallByName("arrayToStringWithPrefix", q.Sort.Array, slash, prefix)
	case query.ThreeSum:
		return ast.NewCallByName("uintAndArrayToStringWithPrefix", q.ThreeSum.Sum, q.ThreeSum.Array, slash, prefix)
	case query.Sqrt:
		return ast.NewCallByName("uintToStringWithPrefix", q.Sqrt.Number, prefix)
	case query.KP:
		return ast.NewCallByName("uintsAndArrayToStringWithPrefix", q.KP.PathLength, q.KP.MaxWeight, q.KP.Array, slash, prefix)
	case query.KDS:
		return ast.NewCallByName("uintAndArrayToStringWithPrefix", q.KDS.MaxSize, q.KDS.Array, slash, prefix)
	}
	return nil
}
