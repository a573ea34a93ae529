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

package query

import (
	"fmt"
	"strings"

	"github.com/nlykkei/oraclize-solidity-compiler/ast"
)

// Query is one recognized oracleQuery invocation. Common fields are
// always populated; the per-kind payload lives in the matching field
// below and must be read only when Kind matches it — NewData etc.
// guarantee at construction time that exactly the matching payload is
// set.
type Query struct {
	Kind     Kind
	Callback *ast.Identifier
	Container *ast.FunctionDefinition

	// EnvName and VarName are assigned by the Environment synthesizer
	// (component D), not at construction time; they are the zero value
	// ("") until then.
	EnvName string
	VarName string

	Data     *DataPayload
	Min      *MinAPSPPayload
	APSP     *MinAPSPPayload
	Sort     *SortPayload
	Sqrt     *SqrtPayload
	ThreeSum *ThreeSumPayload
	KP       *KPPayload
	KDS      *KDSPayload
}

// DataPayload holds the Data variant's ordered URL list. QuerySize is
// len(URLs) and is the only variant whose QuerySize may exceed 1.
type DataPayload struct {
	URLs []string
}

func (d *DataPayload) QuerySize() int { return len(d.URLs) }

// MinAPSPPayload is shared by Min and APSP: an array input plus the
// optional override URL and switch identifier.
type MinAPSPPayload struct {
	Array      ast.Expression // identifier referring to an array
	URL        string         // "" if not overridden
	SwitchFunc *ast.Identifier // nil if absent
}

// SortPayload is MinAPSPPayload plus the verify flag.
type SortPayload struct {
	Array      ast.Expression
	Verify     bool
	URL        string
	SwitchFunc *ast.Identifier
}

// SqrtPayload is the Sqrt variant's input (identifier or numeric literal)
// plus verify/URL/switch.
type SqrtPayload struct {
	Number     ast.Expression
	Verify     bool
	URL        string
	SwitchFunc *ast.Identifier
}

// ThreeSumPayload is the ThreeSum variant's array and target sum plus
// verify/URL/switch.
type ThreeSumPayload struct {
	Array      ast.Expression
	Sum        ast.Expression
	Verify     bool
	URL        string
	SwitchFunc *ast.Identifier
}

// KPPayload is the KP (k-shortest-path) variant's array, path length, and
// max weight, plus verify/URL/switch.
type KPPayload struct {
	Array      ast.Expression
	PathLength ast.Expression
	MaxWeight  ast.Expression
	Verify     bool
	URL        string
	SwitchFunc *ast.Identifier
}

// KDSPayload is the KDS (k-dominating-set) variant's array and max size,
// plus verify/URL/switch.
type KDSPayload struct {
	Array      ast.Expression
	MaxSize    ast.Expression
	Verify     bool
	URL        string
	SwitchFunc *ast.Identifier
}

// QuerySize reports the number of outbound oracle queries this Query
// represents. Every variant but Data is exactly 1; Data is len(URLs).
func (q *Query) QuerySize() int {
	if q.Kind == Data {
		return q.Data.QuerySize()
	}
	return 1
}

// Verify reports whether this Query should emit a client-side
// verification block. Always false for Data (it has none to emit).
func (q *Query) Verify() bool {
	switch q.Kind {
	case Sort:
		return q.Sort.Verify
	case Sqrt:
		return q.Sqrt.Verify
	case ThreeSum:
		return q.ThreeSum.Verify
	case KP:
		return q.KP.Verify
	case KDS:
		return q.KDS.Verify
	default:
		return false
	}
}

// SwitchFunc returns the switch/shortcut identifier for KP/KDS, or nil
// for every other kind or when none was supplied.
func (q *Query) SwitchFunc() *ast.Identifier {
	switch q.Kind {
	case KP:
		return q.KP.SwitchFunc
	case KDS:
		return q.KDS.SwitchFunc
	default:
		return nil
	}
}

// URL returns the query's override URL, or "" when none was given.
func (q *Query) URL() string {
	switch q.Kind {
	case Min:
		return q.Min.URL
	case APSP:
		return q.APSP.URL
	case Sort:
		return q.Sort.URL
	case Sqrt:
		return q.Sqrt.URL
	case ThreeSum:
		return q.ThreeSum.URL
	case KP:
		return q.KP.URL
	case KDS:
		return q.KDS.URL
	default:
		return ""
	}
}

// EffectiveURL returns the URL to use as the query's "prefix": the
// override when present, else the kind's default service URL.
func (q *Query) EffectiveURL() string {
	if u := q.URL(); u != "" {
		return u
	}
	return q.Kind.DefaultURL()
}

// NewData constructs a Data query. It panics if urls is empty — §4.B
// requires every constructor to validate its kind-specific invariants at
// construction time, and an empty Data query can never have been
// recognized successfully (Recognition requires at least one URL
// literal before a Data Query is ever built).
func NewData(urls []string, callback *ast.Identifier, container *ast.FunctionDefinition) *Query {
	if len(urls) == 0 {
		panic(fmt.Sprintf("query: Data requires at least one URL, got %d", len(urls)))
	}
	return &Query{
		Kind:      Data,
		Callback:  callback,
		Container: container,
		Data:      &DataPayload{URLs: urls},
	}
}

// NewMin constructs a Min query.
func NewMin(array ast.Expression, url string, switchFunc *ast.Identifier, callback *ast.Identifier, container *ast.FunctionDefinition) *Query {
	return &Query{
		Kind:      Min,
		Callback:  callback,
		Container: container,
		Min:       &MinAPSPPayload{Array: array, URL: url, SwitchFunc: switchFunc},
	}
}

// NewAPSP constructs an APSP query.
func NewAPSP(array ast.Expression, url string, switchFunc *ast.Identifier, callback *ast.Identifier, container *ast.FunctionDefinition) *Query {
	return &Query{
		Kind:      APSP,
		Callback:  callback,
		Container: container,
		APSP:      &MinAPSPPayload{Array: array, URL: url, SwitchFunc: switchFunc},
	}
}

// NewSort constructs a Sort query.
func NewSort(array ast.Expression, verify bool, url string, switchFunc *ast.Identifier, callback *ast.Identifier, container *ast.FunctionDefinition) *Query {
	return &Query{
		Kind:      Sort,
		Callback:  callback,
		Container: container,
		Sort:      &SortPayload{Array: array, Verify: verify, URL: url, SwitchFunc: switchFunc},
	}
}

// NewSqrt constructs a Sqrt query.
func NewSqrt(number ast.Expression, verify bool, url string, switchFunc *ast.Identifier, callback *ast.Identifier, container *ast.FunctionDefinition) *Query {
	return &Query{
		Kind:      Sqrt,
		Callback:  callback,
		Container: container,
		Sqrt:      &SqrtPayload{Number: number, Verify: verify, URL: url, SwitchFunc: switchFunc},
	}
}

// NewThreeSum constructs a ThreeSum query.
func NewThreeSum(array, sum ast.Expression, verify bool, url string, switchFunc *ast.Identifier, callback *ast.Identifier, container *ast.FunctionDefinition) *Query {
	return &Query{
		Kind:      ThreeSum,
		Callback:  callback,
		Container: container,
		ThreeSum:  &ThreeSumPayload{Array: array, Sum: sum, Verify: verify, URL: url, SwitchFunc: switchFunc},
	}
}

// NewKP constructs a KP query.
func NewKP(array, pathLength, maxWeight ast.Expression, verify bool, url string, switchFunc *ast.Identifier, callback *ast.Identifier, container *ast.FunctionDefinition) *Query {
	return &Query{
		Kind:      KP,
		Callback:  callback,
		Container: container,
		KP:        &KPPayload{Array: array, PathLength: pathLength, MaxWeight: maxWeight, Verify: verify, URL: url, SwitchFunc: switchFunc},
	}
}

// NewKDS constructs a KDS query.
func NewKDS(array, maxSize ast.Expression, verify bool, url string, switchFunc *ast.Identifier, callback *ast.Identifier, container *ast.FunctionDefinition) *Query {
	return &Query{
		Kind:      KDS,
		Callback:  callback,
		Container: container,
		KDS:       &KDSPayload{Array: array, MaxSize: maxSize, Verify: verify, URL: url, SwitchFunc: switchFunc},
	}
}

// exprText renders the identifier or literal an argument expression holds,
// the same way the original's ToString rendered an Expression by testing
// whether it was a Literal or an Identifier. Anything else (there is
// nothing else a recognized Query ever stores here) renders as "".
func exprText(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Name
	case *ast.Literal:
		return e.Value
	default:
		return ""
	}
}

func identName(id *ast.Identifier) string {
	if id == nil {
		return ""
	}
	return id.Name
}

func funcName(fn *ast.FunctionDefinition) string {
	if fn == nil {
		return ""
	}
	return fn.Name
}

// String renders q's diagnostic form, the Go counterpart of the original's
// OracleQuery::ToString family: a base block of common fields followed by
// whichever kind-specific fields that kind's class hierarchy added (URL,
// Switch, Expression, Verify, and the kind's own extra arguments), each
// line indented by indentWidth spaces. It exists only for the debug dump
// §6's Config.IndentWidth field was added for — it plays no part in
// recognition, synthesis, or rewriting.
func (q *Query) String(indentWidth int) string {
	indent := strings.Repeat(" ", indentWidth)
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(indent)
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	}

	line("Type", q.Kind.Name())
	line("Callback", identName(q.Callback))
	line("Function", funcName(q.Container))
	line("Environment", q.EnvName)
	line("Variable", q.VarName)

	if q.Kind == Data {
		b.WriteString(indent)
		b.WriteString("URLs: ")
		for _, u := range q.Data.URLs {
			b.WriteString(u)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		return b.String()
	}

	line("URL", q.URL())
	line("Switch", identName(q.SwitchFunc()))

	switch q.Kind {
	case Min:
		line("Expression", exprText(q.Min.Array))
	case APSP:
		line("Expression", exprText(q.APSP.Array))
	case Sort:
		line("Expression", exprText(q.Sort.Array))
		line("Verify", fmt.Sprintf("%t", q.Sort.Verify))
	case Sqrt:
		line("Expression", exprText(q.Sqrt.Number))
		line("Verify", fmt.Sprintf("%t", q.Sqrt.Verify))
	case ThreeSum:
		line("Expression", exprText(q.ThreeSum.Array))
		line("Verify", fmt.Sprintf("%t", q.ThreeSum.Verify))
		line("Sum", exprText(q.ThreeSum.Sum))
	case KP:
		line("Expression", exprText(q.KP.Array))
		line("Verify", fmt.Sprintf("%t", q.KP.Verify))
		line("Path Length", exprText(q.KP.PathLength))
		line("Maximum Weight", exprText(q.KP.MaxWeight))
	case KDS:
		line("Expression", exprText(q.KDS.Array))
		line("Verify", fmt.Sprintf("%t", q.KDS.Verify))
		line("Maximum Size", exprText(q.KDS.MaxSize))
	}

	return b.String()
}
