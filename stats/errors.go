package stats

import "errors"

// Errors reported by the statistics functions. The messages mirror the
// spreadsheet originals; callers match with errors.Is since some sites wrap
// them with extra context.
var (
	// ErrEmptyInput reports a required sequence with zero elements.
	ErrEmptyInput = errors.New("one or more data points must exist")

	// ErrLengthMismatch reports two positionally corresponding sequences
	// of different lengths.
	ErrLengthMismatch = errors.New("arguments must have the same number of data points")

	// ErrZeroVariance reports a division by a standard deviation or
	// variance of exactly zero.
	ErrZeroVariance = errors.New("standard deviation or variance of an argument cannot be zero")

	// ErrNotANumber reports a scalar argument that fails the numeric
	// capability check.
	ErrNotANumber = errors.New("value must be numeric")
)
