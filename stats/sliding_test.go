package stats_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/tsdist/tsdist/stats"
)

// TestSlidingDotProducts_MatchesNaive cross-checks the FFT convolution
// against the direct O(n·m) dot products.
func TestSlidingDotProducts_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	q := randFloats(rng, 16)
	series := randFloats(rng, 100)

	dots, err := stats.SlidingDotProducts(q, series)
	require.NoError(t, err)
	require.Len(t, dots, len(series)-len(q)+1)

	for i := range dots {
		want := floats.Dot(q, series[i:i+len(q)])
		assert.InDelta(t, want, dots[i], 1e-8, "window %d", i)
	}
}

// TestSlidingDotProducts_QueryEqualsSeries covers the degenerate single
// window.
func TestSlidingDotProducts_QueryEqualsSeries(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	dots, err := stats.SlidingDotProducts(x, x)
	require.NoError(t, err)
	require.Len(t, dots, 1)
	assert.InDelta(t, 30.0, dots[0], 1e-9)
}

// TestSlidingDotProducts_Errors verifies the input guards.
func TestSlidingDotProducts_Errors(t *testing.T) {
	_, err := stats.SlidingDotProducts(nil, []float64{1})
	assert.ErrorIs(t, err, stats.ErrEmptyInput)

	_, err = stats.SlidingDotProducts([]float64{1}, nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)

	_, err = stats.SlidingDotProducts([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrQueryTooLong)
}

// TestCorrelationProfile_MatchesDirectPearson verifies that every profile
// entry equals the direct correlation of the query against that window.
func TestCorrelationProfile_MatchesDirectPearson(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	q := randFloats(rng, 20)
	series := randFloats(rng, 150)

	profile, err := stats.CorrelationProfile(q, series)
	require.NoError(t, err)
	require.Len(t, profile, len(series)-len(q)+1)

	for i := range profile {
		want, err := stats.Pearson(q, series[i:i+len(q)])
		require.NoError(t, err)
		assert.InDelta(t, want, profile[i], 1e-6, "window %d", i)
	}
}

// TestCorrelationProfile_SelfMatch verifies that a window cut out of the
// series correlates at ~1 exactly at its own offset.
func TestCorrelationProfile_SelfMatch(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	series := randFloats(rng, 128)
	q := append([]float64(nil), series[17:33]...)

	profile, err := stats.CorrelationProfile(q, series)
	require.NoError(t, err)

	best := floats.MaxIdx(profile)
	assert.Equal(t, 17, best, "the query must match itself best")
	assert.InDelta(t, 1.0, profile[best], 1e-6)
}

// TestDistanceProfile_MatchesPearsonDist verifies the √(2·(1−r)) transform
// of the profile against the direct windowed distance.
func TestDistanceProfile_MatchesPearsonDist(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	q := randFloats(rng, 12)
	series := randFloats(rng, 80)

	dists, err := stats.DistanceProfile(q, series)
	require.NoError(t, err)
	require.Len(t, dists, len(series)-len(q)+1)

	for i := range dists {
		want, err := stats.PearsonDist(q, series[i:i+len(q)])
		require.NoError(t, err)
		assert.InDelta(t, want, dists[i], 1e-6, "window %d", i)
	}
}
