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

const oraclizeEventName = "OraclizeEvent"

// SynthesizeEnvironment assigns EnvName/VarName to each query (component
// D, §4.D) and inserts the corresponding struct and state-variable
// declarations, plus one contract-level OraclizeEvent event, into
// contract's subnode list. It must run before RewriteContainer and
// SynthesizeCallback, which both read EnvName/VarName.
func SynthesizeEnvironment(contract *ast.ContractDefinition, queries []*query.Query, cfg Config) {
	synthesized := make([]ast.Declaration, 0, 1+2*len(queries))
	synthesized = append(synthesized, newOraclizeEvent())

	for i, q := range queries {
		q.EnvName = "OEnv" + strconv.Itoa(i)
		q.VarName = "_oEnv" + strconv.Itoa(i)

		synthesized = append(synthesized, newEnvStruct(q, cfg))
		synthesized = append(synthesized,
			ast.NewVariableDeclaration(q.VarName, ast.NewNamedType(q.EnvName), ast.VisibilityPrivate))
	}

	contract.Subnodes = append(synthesized, contract.Subnodes...)

	cfg.logger().WithField("contract", contract.Name).WithFields(map[string]interface{}{
		"event":   "stage_done",
		"stage":   "environment",
		"queries": len(queries),
	}).Debug("oraclize: synthesized environment")
}

// newOraclizeEvent builds OraclizeEvent(bytes32 queryId, string type, string what).
func newOraclizeEvent() *ast.EventDefinition {
	params := ast.NewParameterList(
		ast.NewVariableDeclaration("queryId", ast.NewFixedBytesType(32), ast.VisibilityDefault),
		ast.NewVariableDeclaration("type", ast.NewStringType(), ast.VisibilityDefault),
		ast.NewVariableDeclaration("what", ast.NewStringType(), ast.VisibilityDefault),
	)
	return ast.NewEventDefinition(oraclizeEventName, params)
}

// newEnvStruct builds the OEnv<i> struct for q, with members in the
// fixed order §4.D specifies.
func newEnvStruct(q *query.Query, cfg Config) *ast.StructDefinition {
	var members []*ast.VariableDeclaration

	if q.Kind == query.Data && q.Data.QuerySize() > 1 {
		n := q.Data.QuerySize()
		members = append(members,
			ast.NewVariableDeclaration("urls", ast.NewFixedArrayType(ast.NewStringType(), n), ast.VisibilityDefault),
			ast.NewVariableDeclaration("retVals", ast.NewFixedArrayType(ast.NewStringType(), n), ast.VisibilityDefault),
			ast.NewVariableDeclaration("index", ast.NewUintNType(8), ast.VisibilityDefault),
		)
	}

	members = append(members,
		ast.NewVariableDeclaration("queryId", ast.NewFixedBytesType(32), ast.VisibilityDefault))

	if q.Verify() {
		switch q.Kind {
		case query.Sqrt:
			members = append(members,
				ast.NewVariableDeclaration("sqrt", ast.NewUintType(), ast.VisibilityDefault))
		case query.ThreeSum:
			x := int(cfg.threeSumUintX())
			members = append(members,
				ast.NewVariableDeclaration("nums", ast.NewArrayType(ast.NewUintNType(x)), ast.VisibilityDefault),
				ast.NewVariableDeclaration("sum", ast.NewUintNType(2*x), ast.VisibilityDefault),
			)
		case query.KP:
			x := int(cfg.kpUintX())
			members = append(members,
				ast.NewVariableDeclaration("w", ast.NewArrayType(ast.NewUintNType(x)), ast.VisibilityDefault),
				ast.NewVariableDeclaration("k", ast.NewUintType(), ast.VisibilityDefault),
				ast.NewVariableDeclaration("W", ast.NewUintType(), ast.VisibilityDefault),
			)
		case query.KDS:
			x := int(cfg.kdsUintX())
			members = append(members,
				ast.NewVariableDeclaration("m", ast.NewArrayType(ast.NewUintNType(x)), ast.VisibilityDefault),
				ast.NewVariableDeclaration("k", ast.NewUintType(), ast.VisibilityDefault),
			)
		}
	}

	return ast.NewStructDefinition(q.EnvName, members...)
}
