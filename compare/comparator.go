package compare

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/tsdist/tsdist/logging"
	"github.com/tsdist/tsdist/stats"
)

// Result holds the outcome of a series comparison
type Result struct {
	Distance       float64       `json:"distance"`
	Correlation    float64       `json:"correlation"`
	Similarity     float64       `json:"similarity"` // 0.0-1.0
	Method         Method        `json:"method"`
	Length         int           `json:"length"`
	IsMatch        bool          `json:"is_match"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// Match locates the best-matching window of a longer series
type Match struct {
	Offset      int     `json:"offset"`
	Length      int     `json:"length"`
	Correlation float64 `json:"correlation"`
	Distance    float64 `json:"distance"`
}

// SeriesComparator compares numeric time series using the configured
// distance method
type SeriesComparator struct {
	config *Config
	logger logging.Logger
}

// NewSeriesComparator creates a new series comparator
func NewSeriesComparator(cfg *Config) *SeriesComparator {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &SeriesComparator{
		config: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "series_comparator",
		}),
	}
}

// Compare compares two equal-length series and returns the distance,
// correlation and a similarity score in [0, 1]
func (sc *SeriesComparator) Compare(x, y []float64) (*Result, error) {
	startTime := time.Now()

	logger := sc.logger.WithFields(logging.Fields{
		"function": "Compare",
		"method":   sc.config.Method,
		"length":   len(x),
	})
	logger.Debug("Starting series comparison")

	correlation, err := stats.Pearson(x, y)
	if err != nil {
		logger.Error(err, "Failed to compare series")
		return nil, err
	}

	method := sc.config.Method
	var distance float64

	switch {
	case method == MethodEuclidean:
		distance, err = stats.NormEuclideanDistance(stats.ZNorm(x), stats.ZNorm(y))
	case method == MethodPearson:
		distance = math.Sqrt(2 * (1 - correlation))
	case !isFinite(correlation):
		// Constant input makes the correlation undefined; fall back to the
		// raw euclidean distance.
		logger.Warn("Correlation undefined, falling back to euclidean distance")
		method = MethodEuclidean
		distance, err = stats.NormEuclideanDistance(x, y)
	default:
		method = MethodPearson
		distance = math.Sqrt(2 * (1 - correlation))
	}
	if err != nil {
		logger.Error(err, "Failed to compute distance")
		return nil, err
	}

	result := &Result{
		Distance:       distance,
		Correlation:    correlation,
		Similarity:     sc.similarity(correlation, distance),
		Method:         method,
		Length:         len(x),
		ProcessingTime: time.Since(startTime),
	}
	result.IsMatch = result.Similarity >= sc.config.SimilarityThreshold

	logger.Debug("Series comparison completed", logging.Fields{
		"distance":    result.Distance,
		"correlation": result.Correlation,
		"similarity":  result.Similarity,
		"is_match":    result.IsMatch,
	})

	return result, nil
}

// CompareWindows compares the windows x[u:u+l] and y[v:v+l] through
// precomputed statistic arrays, without touching the raw sequences
func (sc *SeriesComparator) CompareWindows(arrays *stats.MetricArrays, u, v, l int) (*Result, error) {
	startTime := time.Now()

	correlation, err := arrays.Pearson(u, v, l)
	if err != nil {
		sc.logger.Error(err, "Failed windowed comparison", logging.Fields{
			"u": u, "v": v, "l": l,
		})
		return nil, err
	}

	distance := math.Sqrt(2 * (1 - correlation))

	result := &Result{
		Distance:       distance,
		Correlation:    correlation,
		Similarity:     sc.similarity(correlation, distance),
		Method:         MethodPearson,
		Length:         l,
		ProcessingTime: time.Since(startTime),
	}
	result.IsMatch = result.Similarity >= sc.config.SimilarityThreshold

	return result, nil
}

// BestMatch finds the window of series with the highest correlation against
// the query
func (sc *SeriesComparator) BestMatch(query, series []float64) (*Match, error) {
	logger := sc.logger.WithFields(logging.Fields{
		"function":      "BestMatch",
		"query_length":  len(query),
		"series_length": len(series),
	})
	logger.Debug("Scanning for best matching window")

	profile, err := stats.CorrelationProfile(query, series)
	if err != nil {
		logger.Error(err, "Failed to compute correlation profile")
		return nil, err
	}

	offset := floats.MaxIdx(profile)
	correlation := profile[offset]

	logger.Debug("Best match found", logging.Fields{
		"offset":      offset,
		"correlation": correlation,
	})

	return &Match{
		Offset:      offset,
		Length:      len(query),
		Correlation: correlation,
		Distance:    math.Sqrt(2 * (1 - correlation)),
	}, nil
}

// similarity maps a comparison onto [0, 1]
func (sc *SeriesComparator) similarity(correlation, distance float64) float64 {
	if isFinite(correlation) {
		return clampUnit((1 + correlation) / 2)
	}
	return clampUnit(1 / (1 + distance))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
