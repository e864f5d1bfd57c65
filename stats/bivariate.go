package stats

import "fmt"

// SumDev returns the sum of the products of paired deviations,
// Σ (x-μ1)(y-μ2), over the elements of array1 and array2. Emptiness is
// checked before the length comparison.
func SumDev(array1, array2 []float64) (float64, error) {
	n1, n2 := len(array1), len(array2)
	if n1 == 0 || n2 == 0 {
		return 0, ErrEmptyInput
	}
	if n1 != n2 {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n1, n2)
	}

	mu1, err := Average(array1)
	if err != nil {
		return 0, err
	}
	mu2, err := Average(array2)
	if err != nil {
		return 0, err
	}

	tot := 0.0
	for i := range array1 {
		tot += (array1[i] - mu1) * (array2[i] - mu2)
	}
	return tot, nil
}

// Covar returns the population covariance, the average of the products of
// deviations for each data point pair.
func Covar(array1, array2 []float64) (float64, error) {
	sd, err := SumDev(array1, array2)
	if err != nil {
		return 0, err
	}
	return sd / float64(len(array1)), nil
}

// Correl returns the correlation coefficient of array1 and array2. A zero
// population standard deviation on either side reports ErrZeroVariance
// before the division happens.
func Correl(array1, array2 []float64) (float64, error) {
	n1, n2 := len(array1), len(array2)
	if n1 == 0 || n2 == 0 {
		return 0, ErrEmptyInput
	}
	if n1 != n2 {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n1, n2)
	}

	sd1, err := StDevP(array1)
	if err != nil {
		return 0, err
	}
	sd2, err := StDevP(array2)
	if err != nil {
		return 0, err
	}
	if sd1 == 0 || sd2 == 0 {
		return 0, ErrZeroVariance
	}

	cv, err := Covar(array1, array2)
	if err != nil {
		return 0, err
	}
	return cv / (sd1 * sd2), nil
}

// Pearson returns the Pearson product moment correlation coefficient, r, a
// dimensionless index in [-1, 1] reflecting the extent of a linear
// relationship between two data sets. It is an alias for Correl.
func Pearson(array1, array2 []float64) (float64, error) {
	return Correl(array1, array2)
}

// RSq returns the square of the Pearson correlation coefficient through the
// data points in knownY and knownX.
func RSq(knownY, knownX []float64) (float64, error) {
	r, err := Correl(knownY, knownX)
	if err != nil {
		return 0, err
	}
	return r * r, nil
}
