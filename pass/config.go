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

import "github.com/sirupsen/logrus"

// defaultIgnoreList is the fixed set of support-contract names the Driver
// never processes (§4.C).
var defaultIgnoreList = map[string]bool{
	"OraclizeI":                 true,
	"OraclizeAddrResolverI":     true,
	"usingOraclize":             true,
	"strings":                   true,
	"OraclizeSolidity":          true,
}

// Config is the pass's immutable configuration, read once at driver
// construction (§4.G, §6).
type Config struct {
	// GasLimit, appended to the synthesized oraclize_query call when
	// nonzero (§4.E step 4).
	GasLimit uint
	// GasPrice, inserted via oraclize_setCustomGasPrice when nonzero
	// (§4.E step 3).
	GasPrice uint

	// ThreeSumUintX, KPUintX, KDSUintX are the compile-time uint widths
	// used in the ThreeSum/KP/KDS verification env struct fields (§4.D).
	ThreeSumUintX uint
	KPUintX       uint
	KDSUintX      uint

	// ContractDebug controls whether OraclizeEvent debug emissions are
	// synthesized in the container rewriter and callback (§4.E step 4,
	// §4.F).
	ContractDebug bool

	// IndentWidth is the indent width passed to query.Query.String() when
	// ContractDebug dumps each recognized query after a contract finishes
	// processing (§6); it never affects the AST produced.
	IndentWidth int

	// IgnoreList names contracts the driver skips entirely (§4.C).
	IgnoreList map[string]bool

	// Logger receives structured diagnostic events. A nil Logger is
	// replaced by a discard logger, mirroring how auth.NewAuditLog
	// always wraps a caller-supplied *logrus.Logger rather than
	// special-casing "no logger".
	Logger *logrus.Logger
}

// DefaultConfig returns the configuration §6 specifies as defaults: zero
// gas limit/price (suppressing their insertion), the documented uint
// widths, debug emissions off, and the fixed ignore list.
func DefaultConfig() Config {
	return Config{
		ThreeSumUintX: 16,
		KPUintX:       16,
		KDSUintX:      8,
		IndentWidth:   4,
		IgnoreList:    copyIgnoreList(defaultIgnoreList),
		Logger:        discardLogger(),
	}
}

func copyIgnoreList(src map[string]bool) map[string]bool {
	dst := make(map[string]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = discardWriter{}
	return l
}

// discardWriter is an io.Writer that drops everything written to it, used
// as the default Logger's output so a caller who never supplies a Logger
// never has diagnostics land on stderr unexpectedly.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// logger returns cfg.Logger, or a discard logger if cfg.Logger is nil.
func (cfg Config) logger() *logrus.Logger {
	if cfg.Logger == nil {
		return discardLogger()
	}
	return cfg.Logger
}

// ignoreList returns cfg.IgnoreList, or the fixed default list if
// cfg.IgnoreList is nil.
func (cfg Config) ignoreList() map[string]bool {
	if cfg.IgnoreList == nil {
		return defaultIgnoreList
	}
	return cfg.IgnoreList
}

// threeSumUintX, kpUintX, kdsUintX apply the §6 defaults when the
// corresponding Config field is left at its zero value.
func (cfg Config) threeSumUintX() uint {
	if cfg.ThreeSumUintX == 0 {
		return 16
	}
	return cfg.ThreeSumUintX
}

func (cfg Config) kpUintX() uint {
	if cfg.KPUintX == 0 {
		return 16
	}
	return cfg.KPUintX
}

func (cfg Config) kdsUintX() uint {
	if cfg.KDSUintX == 0 {
		return 8
	}
	return cfg.KDSUintX
}

// indentWidth applies the §6 default (the original's INDENT constant) when
// IndentWidth is left at its zero value.
func (cfg Config) indentWidth() int {
	if cfg.IndentWidth == 0 {
		return 4
	}
	return cfg.IndentWidth
}
