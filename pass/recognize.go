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
	"strings"

	"github.com/nlykkei/oraclize-solidity-compiler/ast"
	"github.com/nlykkei/oraclize-solidity-compiler/query"
)

const oracleQueryName = "oracleQuery"

// Recognize walks contract's function bodies looking for oracleQuery
// calls, validates each candidate's argument shape against its kind, and
// returns the recognized queries in the order they were encountered
// (component C, §4.C). Calls that don't look like oracleQuery — wrong
// callee, non-string first argument, or an unknown kind name — are
// silently skipped, per §7; once a kind has been identified, a shape
// mismatch is a fatal *errors.Error built from ErrRecognition.
func Recognize(contract *ast.ContractDefinition, cfg Config) ([]*query.Query, error) {
	log := cfg.logger().WithField("contract", contract.Name)

	var queries []*query.Query
	for _, fn := range contract.Functions() {
		for _, stmt := range fn.Body.Statements {
			exprStmt, ok := stmt.(*ast.ExpressionStatement)
			if !ok {
				continue
			}
			call, ok := exprStmt.Expression.(*ast.Call)
			if !ok {
				continue
			}
			callee, ok := call.Callee.(*ast.Identifier)
			if !ok || callee.Name != oracleQueryName {
				continue
			}

			q, recognized, err := recognizeCall(call, fn)
			if err != nil {
				log.WithFields(map[string]interface{}{
					"event": "recognition_error",
					"cause": err.Error(),
				}).Error("oraclize: recognition failed")
				return queries, err
			}
			if !recognized {
				continue
			}

			log.WithFields(map[string]interface{}{
				"event": "query_recognized",
				"kind":  q.Kind.Name(),
				"index": len(queries),
			}).Debug("oraclize: recognized query")
			queries = append(queries, q)
		}
	}
	return queries, nil
}

// recognizeCall validates a single oracleQuery(...) call against §4.C's
// arity table. recognized is false (with a nil error) when the call does
// not even determine a kind — too few arguments, or the first argument
// isn't a string literal, or it names an unknown kind.
func recognizeCall(call *ast.Call, container *ast.FunctionDefinition) (q *query.Query, recognized bool, err error) {
	if len(call.Arguments) < 2 {
		return nil, false, nil
	}

	kindLit, ok := call.Arguments[0].(*ast.Literal)
	if !ok || kindLit.Kind != ast.StringLiteral {
		return nil, false, nil
	}

	kind, ok := query.KindByName(strings.ToLower(kindLit.Value))
	if !ok {
		return nil, false, nil
	}

	rest := call.Arguments[1:]

	switch kind {
	case query.Data:
		q, err = recognizeData(rest, container)
	case query.Min:
		q, err = recognizeMin(rest, container)
	case query.APSP:
		q, err = recognizeAPSP(rest, container)
	case query.Sort:
		q, err = recognizeSort(rest, container)
	case query.Sqrt:
		q, err = recognizeSqrt(rest, container)
	case query.ThreeSum:
		q, err = recognizeThreeSum(rest, container)
	case query.KP:
		q, err = recognizeKP(rest, container)
	case query.KDS:
		q, err = recognizeKDS(rest, container)
	default:
		return nil, false, ErrUnknownKind.New(kind)
	}
	if err != nil {
		return nil, false, err
	}
	return q, true, nil
}

// --- per-kind argument-shape validation -----------------------------------
//
// Each function below mirrors the original's ParseIdentifier /
// ParseIdentifierOrNumber / ParseBool / ParseString helpers: small,
// single-purpose shape checks rather than one monolithic switch.

func parseIdentifierArg(args []ast.Expression, pos int, kindName string) (*ast.Identifier, error) {
	if pos >= len(args) {
		return nil, ErrRecognition.New(kindName, "missing identifier argument")
	}
	id, ok := args[pos].(*ast.Identifier)
	if !ok {
		return nil, ErrRecognition.New(kindName, "expected identifier argument")
	}
	return id, nil
}

func parseIdentifierOrNumberArg(args []ast.Expression, pos int, kindName string) (ast.Expression, error) {
	if pos >= len(args) {
		return nil, ErrRecognition.New(kindName, "missing identifier-or-number argument")
	}
	switch v := args[pos].(type) {
	case *ast.Identifier:
		return v, nil
	case *ast.Literal:
		if v.Kind == ast.NumberLiteral {
			return v, nil
		}
	}
	return nil, ErrRecognition.New(kindName, "expected identifier or numeric literal argument")
}

func parseBoolArg(args []ast.Expression, pos int, kindName string) (bool, error) {
	if pos >= len(args) {
		return false, ErrRecognition.New(kindName, "missing boolean argument")
	}
	lit, ok := args[pos].(*ast.Literal)
	if !ok || lit.Kind != ast.BoolLiteral {
		return false, ErrRecognition.New(kindName, "expected boolean literal argument")
	}
	return lit.Value == "true", nil
}

func parseStringArg(args []ast.Expression, pos int, kindName string) (string, error) {
	if pos >= len(args) {
		return "", ErrRecognition.New(kindName, "missing string argument")
	}
	lit, ok := args[pos].(*ast.Literal)
	if !ok || lit.Kind != ast.StringLiteral {
		return "", ErrRecognition.New(kindName, "expected string literal argument")
	}
	return lit.Value, nil
}

// optionalTail parses the common (verify bool?, url string?, switch
// identifier?) or (url string?, switch identifier?) tail shared by most
// kinds. hasVerify selects which shape to expect. Extra trailing
// arguments beyond the tail are a shape error ("too many arguments").
func optionalTail(args []ast.Expression, pos int, kindName string, hasVerify bool) (verify bool, url string, switchFunc *ast.Identifier, err error) {
	if hasVerify && pos < len(args) {
		verify, err = parseBoolArg(args, pos, kindName)
		if err != nil {
			return false, "", nil, err
		}
		pos++
	}
	if pos < len(args) {
		url, err = parseStringArg(args, pos, kindName)
		if err != nil {
			return false, "", nil, err
		}
		pos++
	}
	if pos < len(args) {
		switchFunc, err = parseIdentifierArg(args, pos, kindName)
		if err != nil {
			return false, "", nil, err
		}
		pos++
	}
	if pos != len(args) {
		return false, "", nil, ErrRecognition.New(kindName, "too many arguments")
	}
	return verify, url, switchFunc, nil
}

func recognizeData(args []ast.Expression, container *ast.FunctionDefinition) (*query.Query, error) {
	if len(args) < 2 {
		return nil, ErrRecognition.New("data", "requires at least one URL and a callback")
	}
	urls := make([]string, 0, len(args)-1)
	for i := 0; i < len(args)-1; i++ {
		u, err := parseStringArg(args, i, "data")
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	callback, err := parseIdentifierArg(args, len(args)-1, "data")
	if err != nil {
		return nil, err
	}
	return query.NewData(urls, callback, container), nil
}

func recognizeMin(args []ast.Expression, container *ast.FunctionDefinition) (*query.Query, error) {
	array, err := parseIdentifierArg(args, 0, "min")
	if err != nil {
		return nil, err
	}
	callback, err := parseIdentifierArg(args, 1, "min")
	if err != nil {
		return nil, err
	}
	_, url, switchFunc, err := optionalTail(args, 2, "min", false)
	if err != nil {
		return nil, err
	}
	return query.NewMin(array, url, switchFunc, callback, container), nil
}

func recognizeAPSP(args []ast.Expression, container *ast.FunctionDefinition) (*query.Query, error) {
	array, err := parseIdentifierArg(args, 0, "apsp")
	if err != nil {
		return nil, err
	}
	callback, err := parseIdentifierArg(args, 1, "apsp")
	if err != nil {
		return nil, err
	}
	_, url, switchFunc, err := optionalTail(args, 2, "apsp", false)
	if err != nil {
		return nil, err
	}
	return query.NewAPSP(array, url, switchFunc, callback, container), nil
}

func recognizeSort(args []ast.Expression, container *ast.FunctionDefinition) (*query.Query, error) {
	array, err := parseIdentifierArg(args, 0, "sort")
	if err != nil {
		return nil, err
	}
	callback, err := parseIdentifierArg(args, 1, "sort")
	if err != nil {
		return nil, err
	}
	verify, url, switchFunc, err := optionalTail(args, 2, "sort", true)
	if err != nil {
		return nil, err
	}
	return query.NewSort(array, verify, url, switchFunc, callback, container), nil
}

func recognizeSqrt(args []ast.Expression, container *ast.FunctionDefinition) (*query.Query, error) {
	number, err := parseIdentifierOrNumberArg(args, 0, "sqrt")
	if err != nil {
		return nil, err
	}
	callback, err := parseIdentifierArg(args, 1, "sqrt")
	if err != nil {
		return nil, err
	}
	verify, url, switchFunc, err := optionalTail(args, 2, "sqrt", true)
	if err != nil {
		return nil, err
	}
	return query.NewSqrt(number, verify, url, switchFunc, callback, container), nil
}

func recognizeThreeSum(args []ast.Expression, container *ast.FunctionDefinition) (*query.Query, error) {
	array, err := parseIdentifierArg(args, 0, "3sum")
	if err != nil {
		return nil, err
	}
	sum, err := parseIdentifierOrNumberArg(args, 1, "3sum")
	if err != nil {
		return nil, err
	}
	callback, err := parseIdentifierArg(args, 2, "3sum")
	if err != nil {
		return nil, err
	}
	verify, url, switchFunc, err := optionalTail(args, 3, "3sum", true)
	if err != nil {
		return nil, err
	}
	return query.NewThreeSum(array, sum, verify, url, switchFunc, callback, container), nil
}

func recognizeKP(args []ast.Expression, container *ast.FunctionDefinition) (*query.Query, error) {
	array, err := parseIdentifierArg(args, 0, "kp")
	if err != nil {
		return nil, err
	}
	pathLen, err := parseIdentifierOrNumberArg(args, 1, "kp")
	if err != nil {
		return nil, err
	}
	maxWeight, err := parseIdentifierOrNumberArg(args, 2, "kp")
	if err != nil {
		return nil, err
	}
	callback, err := parseIdentifierArg(args, 3, "kp")
	if err != nil {
		return nil, err
	}
	verify, url, switchFunc, err := optionalTail(args, 4, "kp", true)
	if err != nil {
		return nil, err
	}
	return query.NewKP(array, pathLen, maxWeight, verify, url, switchFunc, callback, container), nil
}

func recognizeKDS(args []ast.Expression, container *ast.FunctionDefinition) (*query.Query, error) {
	array, err := parseIdentifierArg(args, 0, "kds")
	if err != nil {
		return nil, err
	}
	maxSize, err := parseIdentifierOrNumberArg(args, 1, "kds")
	if err != nil {
		return nil, err
	}
	callback, err := parseIdentifierArg(args, 2, "kds")
	if err != nil {
		return nil, err
	}
	verify, url, switchFunc, err := optionalTail(args, 3, "kds", true)
	if err != nil {
		return nil, err
	}
	return query.NewKDS(array, maxSize, verify, url, switchFunc, callback, container), nil
}
