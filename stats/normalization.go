package stats

import (
	"gonum.org/v1/gonum/stat"
)

// Basic statistical helpers used across the package using gonum for robustness.
// All variances here are population variances (divide by n, not n-1): the
// closed-form correlation identities below depend on that convention.

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the population standard deviation of a slice using gonum
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.PopStdDev(data, nil)
}

// ZNorm normalizes a sequence to zero mean and unit variance.
//
// A constant sequence has zero standard deviation; the division is not
// guarded, so the result propagates NaN/±Inf to the caller.
func ZNorm(x []float64) []float64 {
	mean := Mean(x)
	std := StdDev(x)

	normalized := make([]float64, len(x))
	for i, val := range x {
		normalized[i] = (val - mean) / std
	}

	return normalized
}
