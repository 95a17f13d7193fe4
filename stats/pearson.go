package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Pearson calculates the correlation between two equal-length sequences
// using the sum-of-products form:
//
//	r = (Σ x·y − m·μx·μy) / (m·σx·σy)
//
// with population standard deviations. When either sequence is constant the
// denominator is zero and the result is NaN/±Inf; that singularity is
// deliberately not caught.
func Pearson(x, y []float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptyInput
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}

	m := float64(len(x))
	muX := Mean(x)
	muY := Mean(y)
	sigmaX := StdDev(x)
	sigmaY := StdDev(y)
	xy := floats.Dot(x, y)

	return (xy - m*muX*muY) / (m * sigmaX * sigmaY), nil
}

// PearsonDist calculates the normalized euclidean distance based on the
// pearson correlation. References:
//  1. Rafiei, Davood, and Alberto Mendelzon. "Similarity-based queries for
//     time series data." ACM SIGMOD Record. Vol. 26. No. 2. ACM, 1997.
//  2. Mueen, Abdullah, Suman Nath, and Jie Liu. "Fast approximate
//     correlation for massive time-series data." Proceedings of the 2010
//     ACM SIGMOD International Conference on Management of data. ACM, 2010.
func PearsonDist(x, y []float64) (float64, error) {
	r, err := Pearson(x, y)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(2 * (1 - r)), nil
}
