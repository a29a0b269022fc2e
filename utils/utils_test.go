package utils

import (
	"bytes"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowers(t *testing.T) {
	m := big.NewInt(101)
	p := Powers(big.NewInt(2), big.NewInt(3), m, 6)
	want := []int64{2, 6, 18, 54, 61, 82}
	for i, w := range want {
		assert.Equal(t, w, p[i].Int64(), "power %d", i)
	}
	assert.Empty(t, Powers(big.NewInt(1), big.NewInt(3), m, 0))
}

func TestRandomScalarsReproducible(t *testing.T) {
	m := big.NewInt(1_000_003)
	a, err := RandomScalars(rand.New(rand.NewSource(7)), m, 32)
	require.NoError(t, err)
	b, err := RandomScalars(rand.New(rand.NewSource(7)), m, 32)
	require.NoError(t, err)
	for i := range a {
		assert.Equal(t, 0, a[i].Cmp(&b[i]))
		assert.Equal(t, -1, a[i].Cmp(m))
		assert.GreaterOrEqual(t, a[i].Sign(), 0)
	}
}

func TestRandomScalarsShortSource(t *testing.T) {
	_, err := RandomScalars(bytes.NewReader(make([]byte, 5)), big.NewInt(1_000_003), 4)
	require.Error(t, err)
}

func TestSamplerContinuesStream(t *testing.T) {
	m := big.NewInt(1_000_003)
	whole, err := RandomScalars(rand.New(rand.NewSource(3)), m, 10)
	require.NoError(t, err)

	s := NewSampler(rand.New(rand.NewSource(3)), m)
	parts := make([]big.Int, 10)
	require.NoError(t, s.Read(parts[:3]))
	require.NoError(t, s.Read(parts[3:4]))
	require.NoError(t, s.Read(parts[4:]))
	for i := range whole {
		assert.Equal(t, 0, whole[i].Cmp(&parts[i]), "scalar %d", i)
	}
}
