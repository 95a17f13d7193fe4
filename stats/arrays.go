package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MetricArrays holds the precomputed statistics for a pair of sequences
// x (length n) and y (length m):
//
//   - SX:  prefix sums of x, so SX[i] is the sum of the first i elements
//   - SX2: prefix sums of x²
//   - SY, SY2: the same for y
//   - M:   an (n+1)×(m+1) grid of diagonal-accumulated pointwise products,
//     so M[u+l][v+l] − M[u][v] recovers Σ x[u:u+l]·y[v:v+l]
//
// Construction is O(n·m) time and space; every windowed query afterwards is
// O(1). The arrays are read-only once built and a single MetricArrays value
// may be queried concurrently.
type MetricArrays struct {
	SX  []float64
	SX2 []float64
	SY  []float64
	SY2 []float64
	M   [][]float64

	n, m int
}

// CalculateMetricArrays builds the five statistic arrays for x and y.
//
// M is accumulated along diagonals: entry (u+1, v+1) extends the running
// product sum at (u, v) by one aligned pair, where the alignment offset
// |u−v| is fixed by the entry point of the diagonal. Since any window query
// (u, v, l) reads two corners on the same diagonal, all in-range queries
// are valid.
func CalculateMetricArrays(x, y []float64) *MetricArrays {
	n := len(x)
	m := len(y)

	M := make([][]float64, n+1)
	for i := range M {
		M[i] = make([]float64, m+1)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < m; v++ {
			t := u - v
			if t < 0 {
				t = -t
			}
			if u > v {
				M[u+1][v+1] = M[u][v] + x[v+t]*y[v]
			} else {
				M[u+1][v+1] = M[u][v] + x[u]*y[u+t]
			}
		}
	}

	return &MetricArrays{
		SX:  prefixSums(x),
		SX2: prefixSumsSquared(x),
		SY:  prefixSums(y),
		SY2: prefixSumsSquared(y),
		M:   M,
		n:   n,
		m:   m,
	}
}

// Dims returns the lengths of the sequences the arrays were built from.
func (a *MetricArrays) Dims() (n, m int) {
	return a.n, a.m
}

// Pearson calculates the correlation between the windows x[u:u+l] and
// y[v:v+l] from prefix-sum differences only. The result matches the direct
// Pearson on the raw subsequences up to floating-point error.
func (a *MetricArrays) Pearson(u, v, l int) (float64, error) {
	if err := a.checkWindow(u, v, l); err != nil {
		return 0, err
	}

	fl := float64(l)
	muX := (a.SX[u+l] - a.SX[u]) / fl
	muY := (a.SY[v+l] - a.SY[v]) / fl
	sigmaX := math.Sqrt((a.SX2[u+l]-a.SX2[u])/fl - muX*muX)
	sigmaY := math.Sqrt((a.SY2[v+l]-a.SY2[v])/fl - muY*muY)
	xy := a.M[u+l][v+l] - a.M[u][v]

	return (xy - fl*muX*muY) / (fl * sigmaX * sigmaY), nil
}

// PearsonDist calculates √(2·(1−r)) for the windowed correlation r, the
// windowed analog of PearsonDist.
func (a *MetricArrays) PearsonDist(u, v, l int) (float64, error) {
	r, err := a.Pearson(u, v, l)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(2 * (1 - r)), nil
}

func (a *MetricArrays) checkWindow(u, v, l int) error {
	if u < 0 || v < 0 || l < 1 || u+l > a.n || v+l > a.m {
		return fmt.Errorf("%w: u=%d, v=%d, l=%d against n=%d, m=%d",
			ErrWindowOutOfRange, u, v, l, a.n, a.m)
	}
	return nil
}

// prefixSums returns the cumulative sums of x with a leading zero, so index
// i holds the sum of the first i elements.
func prefixSums(x []float64) []float64 {
	s := make([]float64, len(x)+1)
	floats.CumSum(s[1:], x)
	return s
}

func prefixSumsSquared(x []float64) []float64 {
	sq := make([]float64, len(x))
	floats.MulTo(sq, x, x)

	s := make([]float64, len(x)+1)
	floats.CumSum(s[1:], sq)
	return s
}
