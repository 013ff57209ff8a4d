// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, "L", cfg.leftPrefix)
	assert.Equal(t, "R", cfg.rightPrefix)

	cfg = newBuilderConfig(WithPartitionPrefix("", "Q"))
	assert.Equal(t, "L", cfg.leftPrefix)
	assert.Equal(t, "Q", cfg.rightPrefix)
}

func TestBuilderConfig_LastOptionWins(t *testing.T) {
	cfg := newBuilderConfig(WithSymbolIDs(), WithExcelColumnIDs())
	assert.Equal(t, "AB", cfg.idFn(27))

	a := newBuilderConfig(WithRand(rand.New(rand.NewSource(1))), WithSeed(9))
	b := newBuilderConfig(WithSeed(9))
	assert.Equal(t, b.rng.Int63(), a.rng.Int63())
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
}

func TestIDFns(t *testing.T) {
	tests := []struct {
		name  string
		fn    IDFn
		in    int
		want  string
		panic bool
	}{
		{"default", DefaultIDFn, 123, "123", false},
		{"symbol min", SymbolIDFn, 0, "A", false},
		{"symbol max", SymbolIDFn, 25, "Z", false},
		{"symbol high", SymbolIDFn, 26, "", true},
		{"symbol neg", SymbolIDFn, -1, "", true},
		{"excel A", ExcelColumnIDFn, 0, "A", false},
		{"excel AA", ExcelColumnIDFn, 26, "AA", false},
		{"excel ZZ", ExcelColumnIDFn, 701, "ZZ", false},
		{"excel AAA", ExcelColumnIDFn, 702, "AAA", false},
		{"excel neg", ExcelColumnIDFn, -1, "", true},
		{"symbnumb", SymbolNumberIDFn("v"), 12, "v12", false},
		{"symbnumb neg", SymbolNumberIDFn("v"), -3, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.panic {
				assert.Panics(t, func() { tc.fn(tc.in) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.in))
		})
	}
}

func TestDecodePrufer(t *testing.T) {
	got := decodePrufer([]int{3, 3, 3, 4}, 6)
	require.Len(t, got, 5)
	assert.Equal(t, [][2]int{{0, 3}, {1, 3}, {2, 3}, {3, 4}, {4, 5}}, got)

	// A path 0-1-2-3: sequence [1,2].
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, decodePrufer([]int{1, 2}, 4))
}
