package stats

import (
	"fmt"

	"github.com/spf13/cast"
)

// Slope returns the slope of the linear regression line through the data
// points in knownY and knownX: SumDev(knownX, knownY) / DevSq(knownX). The
// denominator is not guarded; when every x is identical the result is an
// IEEE infinity or NaN.
func Slope(knownY, knownX []float64) (float64, error) {
	sd, err := SumDev(knownX, knownY)
	if err != nil {
		return 0, err
	}
	ds, err := DevSq(knownX)
	if err != nil {
		return 0, err
	}
	return sd / ds, nil
}

// Intercept returns the point at which the best-fit regression line through
// knownY and knownX crosses the y-axis.
func Intercept(knownY, knownX []float64) (float64, error) {
	muy, err := Average(knownY)
	if err != nil {
		return 0, err
	}
	mux, err := Average(knownX)
	if err != nil {
		return 0, err
	}
	b, err := Slope(knownY, knownX)
	if err != nil {
		return 0, err
	}
	return muy - b*mux, nil
}

// Forecast predicts the y-value at x on the regression line through knownY
// and knownX. The population variance of knownX is checked before the line
// is fitted; a constant knownX reports ErrZeroVariance.
func Forecast(x float64, knownY, knownX []float64) (float64, error) {
	varx, err := VarP(knownX)
	if err != nil {
		return 0, err
	}
	if varx == 0 {
		return 0, fmt.Errorf("%w: variance of knownX", ErrZeroVariance)
	}

	b, err := Slope(knownY, knownX)
	if err != nil {
		return 0, err
	}
	a, err := Intercept(knownY, knownX)
	if err != nil {
		return 0, err
	}
	return a + b*x, nil
}

// ForecastValue is the dynamically typed boundary for Forecast: x may be any
// value that supports numeric conversion. A non-numeric x reports
// ErrNotANumber before anything else is evaluated.
func ForecastValue(x any, knownY, knownX []float64) (float64, error) {
	xv, err := cast.ToFloat64E(x)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, x)
	}
	return Forecast(xv, knownY, knownX)
}

// IsNumber reports whether x supports numeric conversion.
func IsNumber(x any) bool {
	_, err := cast.ToFloat64E(x)
	return err == nil
}
