package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumDev(t *testing.T) {
	t.Parallel()

	// Means are 2 and 4; paired deviation products are 2, 0, 2.
	got, err := SumDev([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)
}

func TestSumDev_Errors(t *testing.T) {
	t.Parallel()

	_, err := SumDev(nil, []float64{1, 2})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = SumDev([]float64{1, 2}, nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = SumDev([]float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCovar(t *testing.T) {
	t.Parallel()

	got, err := Covar([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3.0, got, 1e-12)

	_, err = Covar([]float64{}, []float64{1})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Covar([]float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCorrel_Symmetry(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 5, 8}
	b := []float64{0.5, 1.1, 2.9, 4.2, 7.7}

	ab, err := Correl(a, b)
	require.NoError(t, err)
	ba, err := Correl(b, a)
	require.NoError(t, err)
	assert.InDelta(t, ab, ba, 1e-12)
}

func TestCorrel_Self(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 5, 8}
	got, err := Correl(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestCorrel_PerfectNegative(t *testing.T) {
	t.Parallel()

	got, err := Correl([]float64{1, 2, 3}, []float64{3, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, got, 1e-12)
}

func TestCorrel_Errors(t *testing.T) {
	t.Parallel()

	_, err := Correl(nil, nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Correl([]float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrLengthMismatch)

	// A constant argument has zero population standard deviation.
	_, err = Correl([]float64{5, 5, 5}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrZeroVariance)

	_, err = Correl([]float64{1, 2, 3}, []float64{5, 5, 5})
	require.ErrorIs(t, err, ErrZeroVariance)
}

func TestPearson_AliasesCorrel(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 5, 8}
	b := []float64{2, 1, 4, 4, 9}

	want, err := Correl(a, b)
	require.NoError(t, err)
	got, err := Pearson(a, b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRSq(t *testing.T) {
	t.Parallel()

	y := []float64{2, 1, 4, 4, 9}
	x := []float64{1, 2, 3, 5, 8}

	r, err := Correl(y, x)
	require.NoError(t, err)
	r2, err := RSq(y, x)
	require.NoError(t, err)
	assert.InDelta(t, r*r, r2, 1e-12)

	_, err = RSq([]float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrLengthMismatch)
}
