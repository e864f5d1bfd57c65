package stats

import "math"

// Average returns the arithmetic mean of data.
func Average(data []float64) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	sum := 0.0
	for _, x := range data {
		sum += x
	}
	return sum / float64(n), nil
}

// AvgDev returns the average of the absolute deviations of data points from
// their mean.
func AvgDev(data []float64) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	mu, err := Average(data)
	if err != nil {
		return 0, err
	}

	tot := 0.0
	for _, x := range data {
		tot += math.Abs(x - mu)
	}
	return tot / float64(n), nil
}

// DevSq returns the sum of squares of deviations of data points from their
// sample mean. An empty sequence fails through Average.
func DevSq(data []float64) (float64, error) {
	mu, err := Average(data)
	if err != nil {
		return 0, err
	}

	tot := 0.0
	for _, x := range data {
		d := x - mu
		tot += d * d
	}
	return tot, nil
}

// Variance returns the variance of data: DevSq/(n-1) when isSample is true,
// DevSq/n when false. A single-point sample divides by zero and yields an
// IEEE infinity or NaN rather than an error.
func Variance(data []float64, isSample bool) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	ds, err := DevSq(data)
	if err != nil {
		return 0, err
	}

	if isSample {
		return ds / float64(n-1), nil
	}
	return ds / float64(n), nil
}

// Var returns the variance, assuming data represents a sample of the
// population.
func Var(data []float64) (float64, error) {
	return Variance(data, true)
}

// VarP returns the variance, assuming data represents the entire population.
func VarP(data []float64) (float64, error) {
	return Variance(data, false)
}

// StandardDeviation returns the standard deviation of data, sample or
// population per isSample. A variance driven negative by floating-point
// error produces NaN; callers should treat NaN as a domain failure.
func StandardDeviation(data []float64, isSample bool) (float64, error) {
	v, err := Variance(data, isSample)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// StDev returns the standard deviation, assuming data represents a sample of
// the population.
func StDev(data []float64) (float64, error) {
	return StandardDeviation(data, true)
}

// StDevP returns the standard deviation, assuming data represents the entire
// population.
func StDevP(data []float64) (float64, error) {
	return StandardDeviation(data, false)
}
