package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// NormEuclideanDistance calculates the length-normalized euclidean distance
// (1/√n)·‖x−y‖₂ between two equal-length sequences.
func NormEuclideanDistance(x, y []float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptyInput
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}

	return floats.Distance(x, y, 2) / math.Sqrt(float64(len(x))), nil
}
