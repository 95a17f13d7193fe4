package stats

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// SlidingDotProducts computes Σ q·t[i:i+m] for every length-m window of t,
// where m = len(q), via FFT convolution against the reversed query.
// The result has length len(t)−len(q)+1 and the cost is
// O((n+m)·log(n+m)) regardless of window count.
func SlidingDotProducts(q, t []float64) ([]float64, error) {
	m := len(q)
	n := len(t)
	if m == 0 || n == 0 {
		return nil, ErrEmptyInput
	}
	if m > n {
		return nil, fmt.Errorf("%w: len(q)=%d, len(t)=%d", ErrQueryTooLong, m, n)
	}

	size := n + m - 1

	padded := make([]float64, size)
	copy(padded, t)

	reversed := make([]float64, size)
	for i, val := range q {
		reversed[m-1-i] = val
	}

	// mjibson/go-dsp handles all sizes efficiently, including non-power-of-2
	fa := fft.FFTReal(padded)
	fb := fft.FFTReal(reversed)

	product := make([]complex128, size)
	for i := range product {
		product[i] = fa[i] * fb[i]
	}

	conv := fft.IFFT(product)

	// conv[i+m-1] is the full-overlap term q·t[i:i+m]
	dots := make([]float64, n-m+1)
	for i := range dots {
		dots[i] = real(conv[i+m-1])
	}

	return dots, nil
}

// CorrelationProfile computes the pearson correlation of q against every
// length-m window of t. The cross terms come from FFT sliding dot products
// and the per-window means and deviations from prefix sums, so the whole
// profile costs O(n log n) instead of O(n·m).
//
// Windows of t with zero variance yield NaN/±Inf entries, matching the
// direct Pearson on those windows.
func CorrelationProfile(q, t []float64) ([]float64, error) {
	dots, err := SlidingDotProducts(q, t)
	if err != nil {
		return nil, err
	}

	m := len(q)
	fm := float64(m)
	muQ := Mean(q)
	sigmaQ := StdDev(q)

	st := prefixSums(t)
	st2 := prefixSumsSquared(t)

	profile := make([]float64, len(dots))
	for i, qt := range dots {
		muT := (st[i+m] - st[i]) / fm
		sigmaT := math.Sqrt((st2[i+m]-st2[i])/fm - muT*muT)
		profile[i] = (qt - fm*muQ*muT) / (fm * sigmaQ * sigmaT)
	}

	return profile, nil
}

// DistanceProfile computes √(2·(1−r)) over the correlation profile of q
// against every window of t.
func DistanceProfile(q, t []float64) ([]float64, error) {
	profile, err := CorrelationProfile(q, t)
	if err != nil {
		return nil, err
	}

	dists := make([]float64, len(profile))
	for i, r := range profile {
		dists[i] = math.Sqrt(2 * (1 - r))
	}

	return dists, nil
}
