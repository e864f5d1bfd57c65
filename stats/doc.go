// Package stats provides spreadsheet-compatible statistics functions over
// float64 sequences.
//
// Every function is pure: it reads its arguments, returns a freshly computed
// float64, and holds no state, so concurrent use needs no coordination.
//
// # Descriptive Statistics
//
// Single-sequence measures:
//
//	mean, err := stats.Average(data)
//	ad, err := stats.AvgDev(data)     // mean absolute deviation
//	ds, err := stats.DevSq(data)      // sum of squared deviations
//	v, err := stats.Var(data)         // sample variance (n-1)
//	vp, err := stats.VarP(data)       // population variance (n)
//	sd, err := stats.StDev(data)      // sample standard deviation
//	sdp, err := stats.StDevP(data)    // population standard deviation
//
// # Paired-Sequence Statistics
//
// Two sequences related by positional correspondence (element i of the first
// pairs with element i of the second; lengths must match):
//
//	cv, err := stats.Covar(a, b)      // population covariance
//	r, err := stats.Correl(a, b)      // Pearson correlation, in [-1, 1]
//	r2, err := stats.RSq(y, x)        // coefficient of determination
//
// # Linear Regression
//
// Best-fit line y = a + bx through known observations:
//
//	b, err := stats.Slope(knownY, knownX)
//	a, err := stats.Intercept(knownY, knownX)
//	y, err := stats.Forecast(4, knownY, knownX)
//
// # Errors and Degenerate Inputs
//
// Precondition violations are reported through the package sentinels
// (ErrEmptyInput, ErrLengthMismatch, ErrZeroVariance, ErrNotANumber); match
// them with errors.Is. Degenerate denominators that the spreadsheet
// originals leave unguarded stay unguarded here: Slope over a constant x and
// the sample variance of a single point both divide by zero and produce an
// IEEE infinity or NaN instead of an error.
package stats
