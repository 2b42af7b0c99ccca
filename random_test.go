package bbs

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomScalarInRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		s, err := randomScalar()
		require.NoError(t, err)
		assert.False(t, s.IsZero())

		var back fr.Element
		back.Set(&s)
		assert.True(t, back.Equal(&s))
	}
}

func TestCalculateRandomScalarsAreDistinct(t *testing.T) {
	scalars, err := calculateRandomScalars(10)
	require.NoError(t, err)
	require.Len(t, scalars, 10)

	seen := make(map[fr.Element]bool)
	for _, s := range scalars {
		assert.False(t, seen[s], "rejection sampling produced a duplicate scalar")
		seen[s] = true
	}
}

func TestCalculateRandomScalarsZeroCount(t *testing.T) {
	scalars, err := calculateRandomScalars(0)
	require.NoError(t, err)
	assert.Empty(t, scalars)
}
