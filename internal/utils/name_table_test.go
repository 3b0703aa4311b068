package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettlegym/zenithgen/internal/errors"
)

func TestNameTable_Put(t *testing.T) {
	table := NewNameTable[int]("component", NotEmpty("component name"), IsSwiftTypeName("component name"))

	require.NoError(t, table.Put("Badge", 1))
	require.NoError(t, table.Put("Badge", 2))

	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"lower camel", "badge"},
		{"dash", "Bad-Name"},
		{"path", "../Badge"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := table.Put(tt.key, 3)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ValidationErrorCode))
			assert.Contains(t, err.Error(), "component table rejected")
		})
	}

	v, ok := table.Lookup("Badge")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, table.Len())
}

func TestNameTable_PutIfAbsent(t *testing.T) {
	table := NewNameTable[string]("component")

	added, err := table.PutIfAbsent("Text", "seeded")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = table.PutIfAbsent("Text", "discovered")
	require.NoError(t, err)
	assert.False(t, added)

	value, ok := table.Lookup("Text")
	assert.True(t, ok)
	assert.Equal(t, "seeded", value)
}

func TestNameTable_SnapshotIsACopy(t *testing.T) {
	table := NewNameTable[int]("component")
	require.NoError(t, table.Put("Chip", 1))

	snap := table.Snapshot()
	snap["Other"] = 2

	_, ok := table.Lookup("Other")
	assert.False(t, ok)
	assert.Equal(t, 1, table.Len())
}

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain(NotEmpty("target")).Add(IsOneOf("target", "generate", "build"))

	assert.NoError(t, chain.Validate("generate"))
	assert.Error(t, chain.Validate(""))
	assert.Error(t, chain.Validate("deploy"))
	assert.Error(t, Positive("cache_size")(0))
}
