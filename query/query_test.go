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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlykkei/oraclize-solidity-compiler/ast"
)

func TestKindByNameRoundTrip(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name string
		kind Kind
	}{
		{"data", Data},
		{"sort", Sort},
		{"sqrt", Sqrt},
		{"min", Min},
		{"3sum", ThreeSum},
		{"kp", KP},
		{"apsp", APSP},
		{"kds", KDS},
	}

	for _, tt := range tests {
		k, ok := KindByName(tt.name)
		require.True(ok, "name %q should resolve", tt.name)
		require.Equal(tt.kind, k)
		require.Equal(tt.name, tt.kind.Name())
	}

	_, ok := KindByName("foo")
	require.False(ok)
}

func TestDefaultURLs(t *testing.T) {
	require := require.New(t)

	require.Empty(Data.DefaultURL())
	require.Equal("https://oraclize-solidity.herokuapp.com/sort/", Sort.DefaultURL())
	require.Equal("https://oraclize-solidity.herokuapp.com/kds/", KDS.DefaultURL())
}

func TestShortcutAndVerificationSupport(t *testing.T) {
	require := require.New(t)

	require.True(KP.SupportsShortcut())
	require.True(KDS.SupportsShortcut())
	for _, k := range []Kind{Data, Sort, Sqrt, Min, ThreeSum, APSP} {
		require.False(k.SupportsShortcut(), "%s should not support shortcut", k)
	}

	require.False(Data.SupportsVerification())
	for _, k := range []Kind{Sort, Sqrt, Min, ThreeSum, KP, APSP, KDS} {
		require.True(k.SupportsVerification(), "%s should support verification", k)
	}
}

func TestNewDataRequiresAtLeastOneURL(t *testing.T) {
	require := require.New(t)

	cb := ast.NewIdentifier("cb")
	q := NewData([]string{"https://x/y"}, cb, nil)
	require.Equal(1, q.QuerySize())

	q3 := NewData([]string{"a", "b", "c"}, cb, nil)
	require.Equal(3, q3.QuerySize())

	require.Panics(func() {
		NewData(nil, cb, nil)
	})
}

func TestQuerySizeAndVerifyAccessors(t *testing.T) {
	require := require.New(t)

	arr := ast.NewIdentifier("arr")
	cb := ast.NewIdentifier("cb")

	sqrtQ := NewSqrt(ast.NewIdentifier("n"), true, "", nil, cb, nil)
	require.Equal(1, sqrtQ.QuerySize())
	require.True(sqrtQ.Verify())

	sortQ := NewSort(arr, false, "", nil, cb, nil)
	require.False(sortQ.Verify())

	kpQ := NewKP(arr, ast.NewIntLiteral(5), ast.NewIntLiteral(100), true, "", ast.NewIdentifier("switchFn"), cb, nil)
	require.True(kpQ.Verify())
	require.Equal("switchFn", kpQ.SwitchFunc().Name)

	require.Nil(sortQ.SwitchFunc())
}

func TestEffectiveURLPrefersOverride(t *testing.T) {
	require := require.New(t)

	arr := ast.NewIdentifier("arr")
	cb := ast.NewIdentifier("cb")

	withOverride := NewMin(arr, "https://custom/", nil, cb, nil)
	require.Equal("https://custom/", withOverride.EffectiveURL())

	withoutOverride := NewMin(arr, "", nil, cb, nil)
	require.Equal(Min.DefaultURL(), withoutOverride.EffectiveURL())
}

func TestStringIndentsEveryLineAndCoversKindSpecificFields(t *testing.T) {
	require := require.New(t)

	container := ast.NewFunctionDefinition("f", ast.NewParameterList(), ast.VisibilityPublic, ast.MutabilityNonPayable, ast.NewBlock())
	cb := ast.NewIdentifier("cb")

	q := NewData([]string{"https://a", "https://b"}, cb, container)
	q.EnvName = "OEnv0"
	q.VarName = "_oEnv0"

	out := q.String(2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, l := range lines {
		require.True(strings.HasPrefix(l, "  "), "line %q should be indented", l)
	}
	require.Contains(out, "Type: data")
	require.Contains(out, "Callback: cb")
	require.Contains(out, "Function: f")
	require.Contains(out, "Environment: OEnv0")
	require.Contains(out, "Variable: _oEnv0")
	require.Contains(out, "URLs: https://a https://b")

	kp := NewKP(ast.NewIdentifier("arr"), ast.NewIntLiteral(5), ast.NewIntLiteral(100), true, "", ast.NewIdentifier("switchFn"), cb, container)
	kpOut := kp.String(4)
	require.Contains(kpOut, "Expression: arr")
	require.Contains(kpOut, "Verify: true")
	require.Contains(kpOut, "Path Length: 5")
	require.Contains(kpOut, "Maximum Weight: 100")
	require.Contains(kpOut, "Switch: switchFn")
}
