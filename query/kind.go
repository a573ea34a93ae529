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

// Package query models one recognized oracleQuery invocation as a closed
// tagged variant (OracleKind) plus a per-kind payload (Query).
package query

// Kind is the closed set of recognized oracleQuery variants.
type Kind int

const (
	Data Kind = iota
	Sort
	Sqrt
	Min
	ThreeSum
	KP
	APSP
	KDS
)

// kindInfo holds the two facts every Kind carries: its canonical lowercase
// name and its default service URL. Data has no default URL — callers
// always supply explicit URLs for it.
type kindInfo struct {
	name       string
	defaultURL string
}

var kindInfos = map[Kind]kindInfo{
	Data:     {name: "data"},
	Sort:     {name: "sort", defaultURL: "https://oraclize-solidity.herokuapp.com/sort/"},
	Sqrt:     {name: "sqrt", defaultURL: "https://oraclize-solidity.herokuapp.com/sqrt/"},
	Min:      {name: "min", defaultURL: "https://oraclize-solidity.herokuapp.com/min/"},
	ThreeSum: {name: "3sum", defaultURL: "https://oraclize-solidity.herokuapp.com/3sum/"},
	KP:       {name: "kp", defaultURL: "https://oraclize-solidity.herokuapp.com/kp/"},
	APSP:     {name: "apsp", defaultURL: "https://oraclize-solidity.herokuapp.com/apsp/"},
	KDS:      {name: "kds", defaultURL: "https://oraclize-solidity.herokuapp.com/kds/"},
}

// nameToKind and kindToName are the two read-only round-trip mappings
// §4.B requires. They are derived from kindInfos rather than hand
// duplicated, so the two directions can never drift apart.
var (
	nameToKind = func() map[string]Kind {
		m := make(map[string]Kind, len(kindInfos))
		for k, info := range kindInfos {
			m[info.name] = k
		}
		return m
	}()
	kindToName = func() map[Kind]string {
		m := make(map[Kind]string, len(kindInfos))
		for k, info := range kindInfos {
			m[k] = info.name
		}
		return m
	}()
)

// Name returns the canonical lowercase name for k, e.g. "3sum" for
// ThreeSum.
func (k Kind) Name() string { return kindToName[k] }

// String implements fmt.Stringer so Kind values read naturally in error
// messages and log fields.
func (k Kind) String() string { return k.Name() }

// DefaultURL returns the kind's default service URL, or "" for Data,
// which has none.
func (k Kind) DefaultURL() string { return kindInfos[k].defaultURL }

// KindByName resolves a lowercased kind name to its Kind, as Recognition
// does for the first argument of oracleQuery. ok is false for unknown
// names — callers must treat that as "not a recognized call", not an
// error.
func KindByName(name string) (k Kind, ok bool) {
	k, ok = nameToKind[name]
	return k, ok
}

// SupportsShortcut reports whether k allows the switch-function shortcut
// described in §3 ("Shortcut (switch-func) applies only to KP and KDS").
func (k Kind) SupportsShortcut() bool {
	return k == KP || k == KDS
}

// SupportsVerification reports whether k can carry a verification block
// at all. Data never can; every other kind reports true, although Sort
// accepts the verify flag without ever emitting a body and Min/APSP take
// no verify argument, so no block is emitted for any of those three.
func (k Kind) SupportsVerification() bool {
	return k != Data
}
