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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrRecognition is raised for a malformed oracleQuery invocation
	// once its kind has already been identified: missing argument, wrong
	// argument shape, or too many arguments (§7). It is fatal and aborts
	// processing of the enclosing contract; it is never raised for calls
	// that merely don't look like oracleQuery (§7, "silently ignored").
	ErrRecognition = errors.NewKind("oraclize: malformed %s query: %s")

	// ErrNotImplemented is reserved for kinds the core may enumerate but
	// not yet serve.
	ErrNotImplemented = errors.NewKind("oraclize: %s not implemented")

	// ErrUnknownKind signals an internal invariant breach: a Kind value
	// that recognizeCall's per-kind switch does not recognize. This can
	// only happen if a new Kind is added to package query without a
	// matching case in that switch.
	ErrUnknownKind = errors.NewKind("oraclize: unknown query kind: %v")
)
