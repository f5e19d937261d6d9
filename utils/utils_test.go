package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringInSlice(t *testing.T) {
	list := []string{"chrom", "pos", "ref"}
	assert.True(t, StringInSlice("pos", list))
	assert.False(t, StringInSlice("alt", list))
	assert.False(t, StringInSlice("pos", nil))
}

func TestParseModuleScoreOverrides(t *testing.T) {
	t.Run("multiple pairs", func(t *testing.T) {
		overrides, err := ParseModuleScoreOverrides("PVS1=10 BA1=-6")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"PVS1": 10, "BA1": -6}, overrides)
	})

	t.Run("codes are upper-cased", func(t *testing.T) {
		overrides, err := ParseModuleScoreOverrides("pm1=3")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"PM1": 3}, overrides)
	})

	t.Run("empty input yields empty mapping", func(t *testing.T) {
		overrides, err := ParseModuleScoreOverrides("  ")
		require.NoError(t, err)
		assert.Empty(t, overrides)
	})

	t.Run("missing separator is rejected", func(t *testing.T) {
		_, err := ParseModuleScoreOverrides("PVS1")
		assert.Error(t, err)
	})

	t.Run("non-integer score is rejected", func(t *testing.T) {
		_, err := ParseModuleScoreOverrides("PVS1=high")
		assert.Error(t, err)
	})
}
