package uid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflake_GenerateIsUniqueAndPositive(t *testing.T) {
	t.Parallel()

	gen, err := NewSnowflake()
	require.NoError(t, err)

	seen := make(map[int64]struct{}, 1000)
	for range 1000 {
		id := gen.Generate()
		assert.Positive(t, id)

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
}

func TestUUID_GenerateIsValidAndUnique(t *testing.T) {
	t.Parallel()

	gen := NewUUID()

	first := gen.Generate()
	second := gen.Generate()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
