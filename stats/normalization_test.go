package stats_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsdist/tsdist/stats"
)

// randFloats returns n uniform values in [0, 1) from the given source.
func randFloats(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()
	}
	return out
}

// randInts returns n integer-valued floats in [0, 100), mirroring the kind
// of discrete series the windowed-query checks use.
func randInts(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(r.Intn(100))
	}
	return out
}

// TestZNorm_ZeroMeanUnitVariance verifies that a z-normalized sequence has
// mean ~0 and population standard deviation ~1.
func TestZNorm_ZeroMeanUnitVariance(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	x := randFloats(r, 500)

	z := stats.ZNorm(x)

	require.Len(t, z, len(x), "output length must match input length")
	assert.InDelta(t, 0.0, stats.Mean(z), 1e-9, "z-normalized mean should be ~0")
	assert.InDelta(t, 1.0, stats.StdDev(z), 1e-9, "z-normalized stddev should be ~1")
}

// TestZNorm_ConstantSequence verifies that zero variance propagates as NaN
// rather than being silently patched.
func TestZNorm_ConstantSequence(t *testing.T) {
	z := stats.ZNorm([]float64{3, 3, 3, 3})

	for i, v := range z {
		assert.True(t, math.IsNaN(v), "element %d of a constant sequence should be NaN", i)
	}
}

// TestZNorm_InputUnchanged verifies that normalization allocates a fresh
// slice and never mutates its argument.
func TestZNorm_InputUnchanged(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	want := []float64{1, 2, 3, 4}

	_ = stats.ZNorm(x)

	assert.Equal(t, want, x, "input sequence must not be mutated")
}

// TestMeanStdDev_Empty verifies the zero-value behavior of the helpers.
func TestMeanStdDev_Empty(t *testing.T) {
	assert.Equal(t, 0.0, stats.Mean(nil))
	assert.Equal(t, 0.0, stats.StdDev(nil))
}
