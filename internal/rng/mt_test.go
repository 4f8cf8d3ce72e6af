package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Valores obtenidos de random.Random(seed) en CPython 3.

func TestMT_Float64_MatchesReferenceSequence(t *testing.T) {
	g := NewMT(42)
	assert.Equal(t, 0.6394267984578837, g.Float64())
	assert.Equal(t, 0.025010755222666936, g.Float64())
	assert.Equal(t, 0.27502931836911926, g.Float64())
}

func TestMT_Uint32_MatchesGetrandbits(t *testing.T) {
	g := NewMT(42)
	assert.Equal(t, uint32(2746317213), g.Uint32())
	assert.Equal(t, uint32(478163327), g.Uint32())
	assert.Equal(t, uint32(107420369), g.Uint32())
}

func TestMT_Uniform(t *testing.T) {
	g := NewMT(42)
	assert.InDelta(t, 0.008365607907473024, g.Uniform(-0.03, 0.03), 1e-15)
	assert.InDelta(t, -0.028499354686639982, g.Uniform(-0.03, 0.03), 1e-15)
}

func TestMT_OtherSeed(t *testing.T) {
	assert.Equal(t, 0.47009071843107064, NewMT(2024).Float64())
}

func TestMT_SameSeedSameSequence(t *testing.T) {
	a, b := NewMT(DefaultSeed), NewMT(DefaultSeed)
	// más de 624 draws para cruzar al menos un twist
	for i := 0; i < 2000; i++ {
		require.Equal(t, a.Uint32(), b.Uint32(), "draw %d", i)
	}
}

func TestMT_UniformStaysInRange(t *testing.T) {
	g := NewMT(7)
	for i := 0; i < 10000; i++ {
		v := g.Uniform(-0.02, 0.02)
		require.GreaterOrEqual(t, v, -0.02)
		require.LessOrEqual(t, v, 0.02)
	}
}
