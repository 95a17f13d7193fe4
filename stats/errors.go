package stats

import "errors"

var (
	// ErrEmptyInput is returned when a sequence argument has no elements.
	ErrEmptyInput = errors.New("stats: empty input sequence")

	// ErrLengthMismatch is returned when two sequences that must have equal
	// length do not.
	ErrLengthMismatch = errors.New("stats: sequence length mismatch")

	// ErrWindowOutOfRange is returned when a windowed query does not fit
	// inside the sequences the statistic arrays were built from.
	ErrWindowOutOfRange = errors.New("stats: window out of range")

	// ErrQueryTooLong is returned when a query sequence is longer than the
	// series it is matched against.
	ErrQueryTooLong = errors.New("stats: query longer than series")
)
