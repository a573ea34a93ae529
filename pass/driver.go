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
	"github.com/sirupsen/logrus"

	"github.com/nlykkei/oraclize-solidity-compiler/ast"
	"github.com/nlykkei/oraclize-solidity-compiler/query"
)

// Driver sequences Recognition, Environment synthesis, the Container
// rewriter, and Callback synthesis across a set of contracts (component
// G, §4.G). Its configuration (gas limit/price, ignore list, debug
// flags) is fixed at construction and never mutated afterwards.
type Driver struct {
	cfg Config
}

// NewDriver constructs a Driver with the given configuration.
func NewDriver(cfg Config) *Driver {
	return &Driver{cfg: cfg}
}

// Run processes every contract in order: skip it if it's on the ignore
// list, otherwise recognize its queries and, if any were found, run
// Environment → Rewriter → Callback in that order. The Queries list is
// local to each contract and is never carried to the next one.
func (d *Driver) Run(contracts []*ast.ContractDefinition) error {
	for _, contract := range contracts {
		if err := d.runContract(contract); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) runContract(contract *ast.ContractDefinition) error {
	log := d.cfg.logger().WithField("contract", contract.Name)

	if d.cfg.ignoreList()[contract.Name] {
		log.WithField("event", "contract_skip").Debug("oraclize: skipping support contract")
		return nil
	}

	queries, err := Recognize(contract, d.cfg)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return nil
	}

	SynthesizeEnvironment(contract, queries, d.cfg)
	for _, q := range queries {
		RewriteContainer(q, d.cfg)
	}
	log.WithFields(map[string]interface{}{
		"event":   "stage_done",
		"stage":   "rewrite",
		"queries": len(queries),
	}).Debug("oraclize: rewrote containers")
	SynthesizeCallback(contract, queries, d.cfg)

	if d.cfg.ContractDebug {
		dumpQueries(log, queries, d.cfg.indentWidth())
	}

	return nil
}

// dumpQueries logs each recognized query's diagnostic form, the Go
// counterpart of the original's `#if defined(COMPILER_DEBUG)` block that
// printed every OracleQuery::ToString() after the transform passes ran.
func dumpQueries(log *logrus.Entry, queries []*query.Query, indentWidth int) {
	for _, q := range queries {
		log.WithField("event", "query_dump").Debug("oraclize: " + q.Kind.Name() + " query\n" + q.String(indentWidth))
	}
}

// Run is a convenience for the common case of a one-shot pass with no
// reused Driver.
func Run(contracts []*ast.ContractDefinition, cfg Config) error {
	return NewDriver(cfg).Run(contracts)
}
