package compare

// Method selects the distance computation used by SeriesComparator.
type Method string

const (
	// MethodEuclidean compares z-normalized series with the
	// length-normalized euclidean distance.
	MethodEuclidean Method = "euclidean"

	// MethodPearson uses the correlation distance √(2·(1−r)).
	MethodPearson Method = "pearson"

	// MethodAuto prefers the correlation distance and falls back to the
	// euclidean distance when the correlation is undefined (constant input).
	MethodAuto Method = "auto"
)

// Config configures series comparison (simplified for users)
type Config struct {
	Method Method `json:"method"`

	// SimilarityThreshold is the minimum similarity (0.0-1.0) for a
	// comparison to count as a match.
	SimilarityThreshold float64 `json:"similarity_threshold"`
}

// DefaultConfig returns a default comparison config
func DefaultConfig() *Config {
	return &Config{
		Method:              MethodAuto,
		SimilarityThreshold: 0.7,
	}
}
